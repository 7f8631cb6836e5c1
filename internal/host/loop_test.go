package host

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T) (*Loop, context.CancelFunc, <-chan error) {
	t.Helper()
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	return l, cancel, errc
}

func TestLoop_RunsInOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, cancel, errc := runLoop(t)
		defer cancel()

		var got []int
		for i := range 5 {
			l.Post(func() { got = append(got, i) })
		}
		require.NoError(t, l.Do(func() {}))

		assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

		cancel()
		assert.True(t, errors.Is(<-errc, context.Canceled))
	})
}

func TestLoop_PostFromLoopNeverBlocks(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, cancel, _ := runLoop(t)
		defer cancel()

		const n = 1000
		count := 0
		require.NoError(t, l.Do(func() {
			for range n {
				l.Post(func() { count++ })
			}
		}))
		require.NoError(t, l.Do(func() {}))

		assert.Equal(t, n, count)
	})
}

func TestLoop_CloseDropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, cancel, errc := runLoop(t)
		defer cancel()

		ran := 0
		l.Post(func() {
			ran++
			l.Close()
		})
		l.Post(func() { ran++ })

		assert.NoError(t, <-errc)
		assert.Equal(t, 1, ran)
	})
}

func TestLoop_DoAfterClose(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, cancel, errc := runLoop(t)
		defer cancel()

		l.Close()
		assert.NoError(t, <-errc)

		err := l.Do(func() { t.Error("ran after close") })
		assert.True(t, errors.Is(err, ErrClosed))

		// Post after close must not block.
		l.Post(func() {})
		<-l.Done()
	})
}

func TestLoop_AfterFunc(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, cancel, _ := runLoop(t)
		defer cancel()

		fired := make(chan time.Time, 1)
		start := time.Now()
		require.NoError(t, l.Do(func() {
			l.AfterFunc(time.Minute, func() { fired <- time.Now() })
		}))

		at := <-fired
		assert.Equal(t, time.Minute, at.Sub(start))
	})
}

func TestLoop_AfterFuncStopped(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, cancel, _ := runLoop(t)
		defer cancel()

		ran := false
		var timer *Timer
		require.NoError(t, l.Do(func() {
			timer = l.AfterFunc(time.Second, func() { ran = true })
		}))
		require.NoError(t, l.Do(func() { timer.Stop() }))

		time.Sleep(2 * time.Second)
		synctest.Wait()
		require.NoError(t, l.Do(func() {}))
		assert.False(t, ran)
	})
}

func TestTimer_StopNil(_ *testing.T) {
	var timer *Timer
	timer.Stop()
}
