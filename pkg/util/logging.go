package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger never writes to stdout: spinners own the lines there.
var Logger zerolog.Logger

func init() {
	Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
}

func RedirectLogger(w io.Writer) {
	Logger = Logger.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
}

// SetDebug switches between Debug and Info level output.
func SetDebug(debug bool) {
	if debug {
		Logger = Logger.Level(zerolog.DebugLevel)
	} else {
		Logger = Logger.Level(zerolog.InfoLevel)
	}
}
