package spinner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "- Loading (0ms)", FormatLine("-", "Loading", 0, nil))
	assert.Equal(t, "| x (1234ms)", FormatLine("|", "x", 1234*time.Millisecond+999*time.Microsecond, nil))
	assert.Equal(t, "/  (5ms)", FormatLine("/", "", 5*time.Millisecond, nil))
}

func TestFormatLineStylesGlyphOnly(t *testing.T) {
	brackets := func(s string) string { return "[" + s + "]" }

	assert.Equal(t, "[-] label (3ms)", FormatLine("-", "label", 3*time.Millisecond, brackets))
}
