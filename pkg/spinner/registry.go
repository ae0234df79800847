package spinner

import (
	"io"
	"sync"

	"github.com/elseano/nspin/pkg/term"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/exp/slices"
)

// Registry is the ordered set of running spinners sharing one output stream.
// Order is vertical order on screen: the most recently started spinner sits on
// the line directly above the cursor.
//
// The Registry also serializes every write spinners make, so a render can
// never interleave with another spinner's cursor movement.
//
// Offsets are derived from position, not from the row a spinner originally
// reserved. Output written by others, or the terminal scrolling, between a
// spinner's start and a later render shifts its real row.
type Registry struct {
	mu        sync.Mutex
	instances []*Spinner
}

func NewRegistry() *Registry {
	return &Registry{}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry is shared by every spinner not given its own Registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.instances)
}

// Offset is the number of running spinners started after s. The most recent
// spinner has offset 0; its line is one above the cursor.
func (r *Registry) Offset(s *Spinner) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.offset(s)
}

func (r *Registry) offset(s *Spinner) (int, bool) {
	i := slices.Index(r.instances, s)
	if i < 0 {
		return 0, false
	}

	return len(r.instances) - 1 - i, true
}

// reserve appends s and moves the cursor down a line, giving s the line above.
func (r *Registry) reserve(s *Spinner, out term.Output) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.instances, s) {
		return nil
	}

	if _, err := io.WriteString(out, "\n"); err != nil {
		return err
	}

	r.instances = append(r.instances, s)
	return nil
}

// render writes one frame for s. line receives the capability detected for
// this call and returns the text to show.
func (r *Registry) render(s *Spinner, out term.Output, line func(interactive bool) string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !out.Interactive() {
		_, err := io.WriteString(out, line(false)+"\n")
		return err
	}

	offset, ok := r.offset(s)
	if !ok {
		return nil
	}

	return writeAt(out, offset+1, fit(out, line(true)))
}

// finish writes the final text of s and removes it.
func (r *Registry) finish(s *Spinner, out term.Output, finalText string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.remove(s)

	if !out.Interactive() {
		_, err := io.WriteString(out, finalText+"\n")
		return err
	}

	offset, ok := r.offset(s)
	if !ok {
		return nil
	}

	if err := writeAt(out, offset+1, fit(out, finalText)); err != nil {
		return err
	}

	return clearCurrent(out)
}

// clear blanks the line of s without removing it, so the offsets of the
// spinners around it stay valid while the process shuts down.
func (r *Registry) clear(s *Spinner, out term.Output) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !out.Interactive() {
		return nil
	}

	offset, ok := r.offset(s)
	if !ok {
		return nil
	}

	return writeAt(out, offset+1, "")
}

func (r *Registry) remove(s *Spinner) {
	r.instances = slices.DeleteFunc(r.instances, func(other *Spinner) bool {
		return other == s
	})
}

// writeAt replaces the line up rows above the cursor with text, then returns
// the cursor to its row. Without cursor movement the current line is used.
func writeAt(out term.Output, up int, text string) error {
	mover, canMove := out.(term.CursorMover)

	if canMove {
		if err := mover.MoveCursor(0, -up); err != nil {
			return err
		}

		if err := mover.CursorTo(0); err != nil {
			return err
		}
	}

	if err := out.ClearLine(); err != nil {
		return err
	}

	if _, err := io.WriteString(out, text); err != nil {
		return err
	}

	if canMove {
		return mover.MoveCursor(0, up)
	}

	return nil
}

func clearCurrent(out term.Output) error {
	if err := out.ClearLine(); err != nil {
		return err
	}

	if mover, ok := out.(term.CursorMover); ok {
		return mover.CursorTo(0)
	}

	return nil
}

// fit truncates text so it never wraps onto the next line, which would push
// every spinner below it out of place.
func fit(out term.Output, text string) string {
	sizer, ok := out.(term.Sizer)
	if !ok {
		return text
	}

	width := sizer.Width()
	if width <= 1 {
		return text
	}

	return truncate.StringWithTail(text, uint(width-1), "…")
}
