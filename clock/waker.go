package clock

import "time"

// DefaultWakeInterval is the low-power wake period used when none is set.
const DefaultWakeInterval = 40 * time.Millisecond

// Waker is a low-power wait that always returns after Interval.
type Waker struct {
	Interval time.Duration
}

// EnterLowPower blocks until the next periodic wake.
func (w Waker) EnterLowPower() {
	d := w.Interval
	if d <= 0 {
		d = DefaultWakeInterval
	}
	time.Sleep(d)
}
