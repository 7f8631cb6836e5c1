// Package host runs the single logical thread that owns the player.
//
// Native player callbacks, user commands and timers are all posted onto
// one Loop and executed in order, so the code they call needs no locking.
package host

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned by Do when the loop has stopped.
var ErrClosed = errors.New("host: loop closed")

// Loop executes posted functions sequentially on the goroutine that
// calls Run.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// New creates a loop. Nothing runs until Run is called.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. It never blocks, so functions running on the loop may
// post follow-ups. Posts after the loop stopped are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.done:
		return
	default:
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Do runs fn on the loop and waits for it to return.
// It must not be called from the loop itself.
func (l *Loop) Do(fn func()) error {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrClosed
	}
}

// Run executes posted functions until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
			l.mu.Lock()
			batch := l.queue
			l.queue = nil
			l.mu.Unlock()
			for _, fn := range batch {
				if l.closed() {
					return nil
				}
				fn()
			}
		}
	}
}

func (l *Loop) closed() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Close stops the loop. Pending functions are dropped.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Timer is a pending AfterFunc call.
type Timer struct {
	t         *time.Timer
	cancelled bool
}

// Stop prevents the call from running. It must be called on the loop.
// Stopping a timer that already fired but has not run yet still
// prevents the call.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.cancelled = true
	t.t.Stop()
}

// AfterFunc runs fn on the loop after d. It must be called on the loop.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{}
	t.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.cancelled {
				return
			}
			fn()
		})
	})
	return t
}
