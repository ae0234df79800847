package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/elseano/nspin/pkg/spinner"
	"github.com/logrusorgru/aurora"
)

var (
	ErrorInternal = errors.New("Internal nspin error")
	ErrorArg      = errors.New("Invalid spinner options provided")
)

// ExitCode maps the result of Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrorArg):
		return 128
	case errors.Is(err, ErrorInternal):
		return 129
	}

	return 3
}

func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	fmt.Fprintf(dest, "\n%s: %s\n\n", aurora.Red("Error"), err)

	if errors.Is(err, spinner.ErrInvalidConfig) {
		return fmt.Errorf("%w: %v", ErrorArg, err)
	}

	return fmt.Errorf("%w: %v", ErrorInternal, err)
}
