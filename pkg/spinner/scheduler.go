package spinner

import (
	"sync"
	"time"
)

// ticker calls tick every interval on its own goroutine until cancelled.
type ticker struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func schedule(interval time.Duration, tick func()) *ticker {
	t := &ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go t.run(interval, tick)

	return t
}

func (t *ticker) run(interval time.Duration, tick func()) {
	defer close(t.done)

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			// Both may be ready; stop wins.
			select {
			case <-t.stop:
				return
			default:
			}

			tick()
		}
	}
}

// Cancel disarms the ticker. Once it returns no tick is running and none will
// run. Safe on a nil ticker and when called repeatedly, but never from tick.
func (t *ticker) Cancel() {
	if t == nil {
		return
	}

	t.once.Do(func() {
		close(t.stop)
	})

	<-t.done
}
