package spinner

import (
	"fmt"
	"time"
)

// FormatLine renders one animation frame as "<glyph> <label> (<elapsed>ms)".
// Only the glyph is passed through style.
func FormatLine(glyph, label string, elapsed time.Duration, style StyleFunc) string {
	if style != nil {
		glyph = style(glyph)
	}

	return fmt.Sprintf("%s %s (%dms)", glyph, label, elapsed.Milliseconds())
}
