package spinner

// CharSets are the named frame sequences accepted by WithCharSet.
var CharSets = map[string][]string{
	"line":     {"-", "\\", "|", "/"},
	"dots":     {"⠋", "⠙", "⠹", "⠸"},
	"braille":  {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"circle":   {"◐", "◓", "◑", "◒"},
	"quarters": {"◴", "◷", "◶", "◵"},
}

const DefaultCharSet = "line"

// DefaultFrames returns a copy of the frames used when none are configured.
func DefaultFrames() []string {
	return append([]string(nil), CharSets[DefaultCharSet]...)
}
