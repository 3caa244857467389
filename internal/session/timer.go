package session

import (
	"sync"
	"time"
)

// oneShot is a cancellable one-shot timer. Unlike time.AfterFunc, a
// stopped oneShot never runs its callback afterwards: the firing goroutine
// and Stop race through a single select, so the loser is inert.
type oneShot struct {
	stop chan struct{}
	once sync.Once
}

func after(d time.Duration, fn func()) *oneShot {
	o := &oneShot{stop: make(chan struct{})}
	timer := time.NewTimer(d)
	go func() {
		defer timer.Stop()
		select {
		case <-timer.C:
			select {
			case <-o.stop:
			default:
				fn()
			}
		case <-o.stop:
		}
	}()
	return o
}

// Stop cancels the timer. Safe to call multiple times.
func (o *oneShot) Stop() {
	o.once.Do(func() {
		close(o.stop)
	})
}
