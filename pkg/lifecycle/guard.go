// Package lifecycle runs cleanup callbacks when the process terminates.
//
// Callbacks are registered per owner and cancelled individually. The process
// wide Guard returned by Default is bound to goodbye, so it runs when the
// process exits through Exit or receives a signal after Notify.
package lifecycle

import (
	"context"
	"os"
	"sync"

	"github.com/elseano/nspin/pkg/util"
	"github.com/thecodeteam/goodbye"
)

// Subscription identifies one registered callback. The zero value is never issued.
type Subscription uint64

// Notifier is what a spinner needs from the process lifecycle.
type Notifier interface {
	OnTerminate(fn func()) Subscription
	Cancel(sub Subscription)
}

type hook struct {
	sub Subscription
	fn  func()
}

// Guard holds termination callbacks in registration order.
type Guard struct {
	mu    sync.Mutex
	last  Subscription
	hooks []hook
}

func NewGuard() *Guard {
	return &Guard{}
}

func (g *Guard) OnTerminate(fn func()) Subscription {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.last++
	g.hooks = append(g.hooks, hook{sub: g.last, fn: fn})

	return g.last
}

// Cancel removes sub. Unknown or already cancelled subscriptions are ignored.
func (g *Guard) Cancel(sub Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, h := range g.hooks {
		if h.sub == sub {
			g.hooks = append(g.hooks[:i], g.hooks[i+1:]...)
			return
		}
	}
}

// Len reports how many callbacks are registered.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.hooks)
}

// Run takes every registered callback and invokes it once. A panicking
// callback is logged and does not stop the others.
func (g *Guard) Run() {
	g.mu.Lock()
	hooks := g.hooks
	g.hooks = nil
	g.mu.Unlock()

	for _, h := range hooks {
		invoke(h)
	}
}

func invoke(h hook) {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Debug().Uint64("subscription", uint64(h.sub)).Msgf("Termination hook panicked: %v", r)
		}
	}()

	h.fn()
}

var (
	defaultGuard *Guard
	defaultOnce  sync.Once
)

// Default returns the process wide Guard, registering it with goodbye on first use.
func Default() *Guard {
	defaultOnce.Do(func() {
		defaultGuard = NewGuard()

		goodbye.Register(func(ctx context.Context, sig os.Signal) {
			util.Logger.Debug().Msgf("Terminating (signal %v), running cleanup", sig)
			defaultGuard.Run()
		})
	})

	return defaultGuard
}

// Notify traps termination signals so an interrupted process still runs the
// Default guard's callbacks.
func Notify(ctx context.Context) {
	Default()
	goodbye.Notify(ctx)
}

// Exit runs the Default guard's callbacks and exits with code.
func Exit(ctx context.Context, code int) {
	Default()
	goodbye.Exit(ctx, code)
}
