//go:build !windows

package term

import (
	"os"
	"testing"

	"github.com/kr/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveOnPseudoTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	out := NewANSITerminal(tty)
	assert.True(t, out.Interactive())
}

func TestNotInteractiveOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	out := NewANSITerminal(w)
	assert.False(t, out.Interactive())
	assert.Equal(t, 0, out.Width())
}
