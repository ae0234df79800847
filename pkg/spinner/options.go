package spinner

import (
	"fmt"
	"io"
	"time"

	"github.com/elseano/nspin/pkg/lifecycle"
	"github.com/elseano/nspin/pkg/term"
	"github.com/logrusorgru/aurora"
)

const DefaultInterval = 80 * time.Millisecond

type config struct {
	frames   []string
	interval time.Duration
	format   []string
	style    StyleFunc
	colors   aurora.Aurora
	out      term.Output
	registry *Registry
	guard    lifecycle.Notifier
	err      error
}

type Option func(*config)

// WithFrames sets the glyphs cycled through, in order.
func WithFrames(frames ...string) Option {
	return func(c *config) {
		c.frames = append([]string(nil), frames...)
	}
}

// WithCharSet uses one of the named CharSets.
func WithCharSet(name string) Option {
	return func(c *config) {
		frames, ok := CharSets[name]
		if !ok {
			c.err = fmt.Errorf("%w: unknown char set %q", ErrInvalidConfig, name)
			return
		}

		c.frames = append([]string(nil), frames...)
	}
}

func WithInterval(interval time.Duration) Option {
	return func(c *config) {
		c.interval = interval
	}
}

// WithFormat styles the glyph with the named styles, applied in order. See StyleNames.
func WithFormat(names ...string) Option {
	return func(c *config) {
		c.format = names
	}
}

// WithStyle styles the glyph with fn. It takes precedence over WithFormat.
func WithStyle(fn StyleFunc) Option {
	return func(c *config) {
		c.style = fn
	}
}

// WithColors sets the colorizer WithFormat styles are built from.
func WithColors(au aurora.Aurora) Option {
	return func(c *config) {
		c.colors = au
	}
}

func WithOutput(out term.Output) Option {
	return func(c *config) {
		c.out = out
	}
}

// WithWriter renders to w, detecting its capabilities.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.out = term.Detect(w)
	}
}

func WithRegistry(r *Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithGuard sets where exit cleanup is registered.
func WithGuard(g lifecycle.Notifier) Option {
	return func(c *config) {
		c.guard = g
	}
}

func (c *config) validate() error {
	if c.err != nil {
		return c.err
	}

	if len(c.frames) == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidConfig)
	}

	for i, f := range c.frames {
		if f == "" {
			return fmt.Errorf("%w: frame %d is empty", ErrInvalidConfig, i)
		}
	}

	if c.interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.interval)
	}

	return nil
}
