// Package clock provides the wrapping millisecond timebase, frame pacing and
// the periodic low-power wait.
package clock

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// Clock is a wrapping millisecond counter.
type Clock interface {
	Millis() uint16
}

// Counter is a Clock advanced from outside, one tick per millisecond. Reads
// and increments are atomic, so a single background feeder may run while the
// frame loop reads it.
type Counter struct {
	ms atomic.Uint32
}

// Millis returns the current count, wrapping at 16 bits.
func (c *Counter) Millis() uint16 {
	return uint16(c.ms.Load())
}

// Tick advances the count by one millisecond.
func (c *Counter) Tick() {
	c.ms.Add(1)
}

// Run ticks c once per millisecond until ctx is done.
func (c *Counter) Run(ctx context.Context) {
	t := time.NewTicker(time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Tick()
		}
	}
}

// Start runs c in a new goroutine. The returned function stops it and waits
// for the goroutine to exit.
func Start(ctx context.Context, c *Counter) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

// Elapsed returns the milliseconds since start, correct across one wrap.
func Elapsed(c Clock, start uint16) uint16 {
	return c.Millis() - start
}

// Pace busy-waits until budget milliseconds have passed since start. It
// returns at once if the budget is already spent.
func Pace(c Clock, start, budget uint16) {
	for Elapsed(c, start) < budget {
		runtime.Gosched()
	}
}
