package term

import (
	"fmt"
	"io"

	"github.com/elseano/nspin/pkg/util"
	"github.com/mattn/go-isatty"
)

const (
	csi       = "\x1b["
	eraseLine = csi + "2K"
)

// Output is the stream a spinner renders to.
type Output interface {
	io.Writer

	// Interactive reports whether cursor addressing is meaningful on this stream.
	// It is evaluated on every render.
	Interactive() bool

	// ClearLine erases the line the cursor is on.
	ClearLine() error
}

// CursorMover is implemented by outputs that can reposition the cursor.
// Outputs without it are rendered on the current line only.
type CursorMover interface {
	// MoveCursor moves relative to the current position. Negative dy moves up.
	MoveCursor(dx, dy int) error

	// CursorTo moves to the zero based column x of the current line.
	CursorTo(x int) error
}

// Sizer is implemented by outputs that know their width in columns.
type Sizer interface {
	Width() int
}

type fder interface {
	Fd() uintptr
}

// Terminal is an Output without cursor movement.
type Terminal struct {
	out         io.Writer
	fd          uintptr
	hasFd       bool
	interactive *bool
	width       int
}

type Option func(*Terminal)

// ForceInteractive overrides capability detection.
func ForceInteractive(interactive bool) Option {
	return func(t *Terminal) {
		t.interactive = &interactive
	}
}

// WithWidth fixes the reported width. Zero means unknown.
func WithWidth(width int) Option {
	return func(t *Terminal) {
		t.width = width
	}
}

func NewTerminal(out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{out: out, width: -1}

	if f, ok := out.(fder); ok {
		t.fd = f.Fd()
		t.hasFd = true
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *Terminal) Interactive() bool {
	if t.interactive != nil {
		return *t.interactive
	}

	if !t.hasFd {
		return false
	}

	return isatty.IsTerminal(t.fd) || isatty.IsCygwinTerminal(t.fd)
}

func (t *Terminal) ClearLine() error {
	_, err := io.WriteString(t.out, eraseLine)
	return err
}

func (t *Terminal) Width() int {
	if t.width >= 0 {
		return t.width
	}

	if !t.hasFd {
		return 0
	}

	return util.TerminalWidth(t.fd)
}

// ANSITerminal is a Terminal which moves the cursor using CSI sequences.
type ANSITerminal struct {
	*Terminal
}

func NewANSITerminal(out io.Writer, opts ...Option) *ANSITerminal {
	return &ANSITerminal{Terminal: NewTerminal(out, opts...)}
}

func (t *ANSITerminal) MoveCursor(dx, dy int) error {
	seq := ""

	switch {
	case dx > 0:
		seq += fmt.Sprintf(csi+"%dC", dx)
	case dx < 0:
		seq += fmt.Sprintf(csi+"%dD", -dx)
	}

	switch {
	case dy > 0:
		seq += fmt.Sprintf(csi+"%dB", dy)
	case dy < 0:
		seq += fmt.Sprintf(csi+"%dA", -dy)
	}

	if seq == "" {
		return nil
	}

	_, err := io.WriteString(t.out, seq)
	return err
}

func (t *ANSITerminal) CursorTo(x int) error {
	_, err := fmt.Fprintf(t.out, csi+"%dG", x+1)
	return err
}

// Detect wraps out in the richest Output it supports. CI runners are never
// treated as interactive, even when they allocate a TTY.
func Detect(out io.Writer, opts ...Option) Output {
	if ci := GetCI(); ci.IsCI() {
		util.Logger.Debug().Str("ci", string(ci)).Msg("CI detected, rendering append-only")
		return NewTerminal(out, append(opts, ForceInteractive(false))...)
	}

	return NewANSITerminal(out, opts...)
}
