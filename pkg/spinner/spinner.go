// Package spinner renders animated progress indicators, each on its own
// terminal line, with several running at once.
//
//	s, err := spinner.New(spinner.WithFormat("cyan"))
//	// handle err
//	s.Start("Loading...")
//	// work
//	s.Stop("Done!")
//
// On an interactive terminal every running spinner redraws its reserved line in
// place. Elsewhere each frame is appended as a line of its own.
package spinner

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/elseano/nspin/pkg/lifecycle"
	"github.com/elseano/nspin/pkg/term"
	"github.com/elseano/nspin/pkg/util"
	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
)

var ErrInvalidConfig = errors.New("invalid spinner config")

type Spinner struct {
	frames   []string
	interval time.Duration
	style    StyleFunc
	out      term.Output
	registry *Registry
	guard    lifecycle.Notifier

	mu         sync.Mutex
	label      string
	frameIndex int
	startedAt  time.Time
	timer      *ticker
	exitSub    lifecycle.Subscription
	err        error
}

// New builds a stopped spinner. It fails with ErrInvalidConfig when the frames,
// interval or format are unusable.
func New(opts ...Option) (*Spinner, error) {
	c := &config{
		frames:   DefaultFrames(),
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.colors == nil {
		c.colors = aurora.NewAurora(termenv.EnvColorProfile() != termenv.Ascii)
	}

	style := c.style
	if style == nil {
		var err error
		if style, err = ParseStyle(c.colors, c.format...); err != nil {
			return nil, err
		}
	}

	if c.out == nil {
		c.out = term.Detect(os.Stdout)
	}

	if c.registry == nil {
		c.registry = DefaultRegistry()
	}

	if c.guard == nil {
		c.guard = lifecycle.Default()
	}

	return &Spinner{
		frames:   c.frames,
		interval: c.interval,
		style:    style,
		out:      c.out,
		registry: c.registry,
		guard:    c.guard,
	}, nil
}

// Start reserves a line below any running spinners and begins animating it
// with text as the label. Starting a running spinner only replaces its label.
func (s *Spinner) Start(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.label = text

	if s.timer != nil {
		util.Logger.Debug().Str("label", text).Msg("Spinner already running")
		return nil
	}

	s.frameIndex = 0
	s.startedAt = time.Now()
	s.err = nil

	if err := s.registry.reserve(s, s.out); err != nil {
		return err
	}

	s.timer = schedule(s.interval, s.tick)
	s.exitSub = s.guard.OnTerminate(s.cleanup)

	util.Logger.Debug().Str("label", text).Dur("interval", s.interval).Msg("Starting spinner")

	return nil
}

// UpdateText replaces the label shown from the next frame on.
func (s *Spinner) UpdateText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.label = text
}

// Stop halts the animation and writes finalText in place of the spinner.
// On an interactive terminal the line ends up holding exactly finalText,
// so an empty finalText leaves it blank. Elsewhere finalText is appended
// as a line. Stopping a stopped spinner repeats only that final write.
func (s *Spinner) Stop(finalText string) error {
	s.mu.Lock()
	timer, sub := s.timer, s.exitSub
	s.timer, s.exitSub = nil, 0
	s.mu.Unlock()

	timer.Cancel()

	err := s.registry.finish(s, s.out, finalText)

	if sub != 0 {
		s.guard.Cancel(sub)
	}

	util.Logger.Debug().Str("final", finalText).Dur("elapsed", s.Elapsed()).Msg("Stopped spinner")

	return err
}

// Active reports whether the spinner is animating.
func (s *Spinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer != nil
}

func (s *Spinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.label
}

// Elapsed is the time since the last Start, or zero if never started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.startedAt.IsZero() {
		return 0
	}

	return time.Since(s.startedAt)
}

// Err returns the first error writing an animation frame since Start.
func (s *Spinner) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *Spinner) tick() {
	s.mu.Lock()
	glyph := s.frames[s.frameIndex]
	s.frameIndex = (s.frameIndex + 1) % len(s.frames)
	label, startedAt := s.label, s.startedAt
	s.mu.Unlock()

	err := s.registry.render(s, s.out, func(interactive bool) string {
		style := s.style
		if !interactive {
			style = nil
		}

		return FormatLine(glyph, label, time.Since(startedAt), style)
	})

	if err != nil {
		util.Logger.Warn().Err(err).Msg("Failed to render spinner frame")

		s.mu.Lock()
		if s.err == nil {
			s.err = err
		}
		s.mu.Unlock()
	}
}

// cleanup runs on process termination: halt the animation and blank the line.
func (s *Spinner) cleanup() {
	s.mu.Lock()
	timer := s.timer
	s.timer, s.exitSub = nil, 0
	s.mu.Unlock()

	timer.Cancel()

	if err := s.registry.clear(s, s.out); err != nil {
		util.Logger.Debug().Err(err).Msg("Failed to clear spinner on exit")
	}
}
