package spinner

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
)

// StyleFunc decorates a frame glyph, usually with SGR color codes.
type StyleFunc func(string) string

type colorizer func(aurora.Aurora, interface{}) aurora.Value

var styles = map[string]colorizer{
	"bold":            aurora.Aurora.Bold,
	"dim":             aurora.Aurora.Faint,
	"italic":          aurora.Aurora.Italic,
	"underline":       aurora.Aurora.Underline,
	"doubleunderline": aurora.Aurora.DoublyUnderline,
	"blink":           aurora.Aurora.Blink,
	"inverse":         aurora.Aurora.Inverse,
	"hidden":          aurora.Aurora.Hidden,
	"strikethrough":   aurora.Aurora.StrikeThrough,
	"framed":          aurora.Aurora.Framed,
	"overlined":       aurora.Aurora.Overlined,

	"black":   aurora.Aurora.Black,
	"red":     aurora.Aurora.Red,
	"green":   aurora.Aurora.Green,
	"yellow":  aurora.Aurora.Yellow,
	"blue":    aurora.Aurora.Blue,
	"magenta": aurora.Aurora.Magenta,
	"cyan":    aurora.Aurora.Cyan,
	"white":   aurora.Aurora.White,
	"gray":    aurora.Aurora.BrightBlack,
	"grey":    aurora.Aurora.BrightBlack,

	"blackBright":   aurora.Aurora.BrightBlack,
	"redBright":     aurora.Aurora.BrightRed,
	"greenBright":   aurora.Aurora.BrightGreen,
	"yellowBright":  aurora.Aurora.BrightYellow,
	"blueBright":    aurora.Aurora.BrightBlue,
	"magentaBright": aurora.Aurora.BrightMagenta,
	"cyanBright":    aurora.Aurora.BrightCyan,
	"whiteBright":   aurora.Aurora.BrightWhite,

	"bgBlack":   aurora.Aurora.BgBlack,
	"bgRed":     aurora.Aurora.BgRed,
	"bgGreen":   aurora.Aurora.BgGreen,
	"bgYellow":  aurora.Aurora.BgYellow,
	"bgBlue":    aurora.Aurora.BgBlue,
	"bgMagenta": aurora.Aurora.BgMagenta,
	"bgCyan":    aurora.Aurora.BgCyan,
	"bgWhite":   aurora.Aurora.BgWhite,
	"bgGray":    aurora.Aurora.BgBrightBlack,
	"bgGrey":    aurora.Aurora.BgBrightBlack,

	"bgBlackBright":   aurora.Aurora.BgBrightBlack,
	"bgRedBright":     aurora.Aurora.BgBrightRed,
	"bgGreenBright":   aurora.Aurora.BgBrightGreen,
	"bgYellowBright":  aurora.Aurora.BgBrightYellow,
	"bgBlueBright":    aurora.Aurora.BgBrightBlue,
	"bgMagentaBright": aurora.Aurora.BgBrightMagenta,
	"bgCyanBright":    aurora.Aurora.BgBrightCyan,
	"bgWhiteBright":   aurora.Aurora.BgBrightWhite,
}

// StyleNames lists every name ParseStyle accepts, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// ParseStyle combines the named styles, applied in order, into one StyleFunc.
// No names yields a nil StyleFunc.
func ParseStyle(au aurora.Aurora, names ...string) (StyleFunc, error) {
	if len(names) == 0 {
		return nil, nil
	}

	chain := make([]colorizer, 0, len(names))

	for _, name := range names {
		c, ok := styles[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, name)
		}

		chain = append(chain, c)
	}

	return func(s string) string {
		var v interface{} = s
		for _, c := range chain {
			v = c(au, v)
		}

		return fmt.Sprint(v)
	}, nil
}
