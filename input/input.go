// Package input samples the six game buttons.
package input

// Buttons is one snapshot of the button states. True means pressed.
type Buttons struct {
	Left, Right bool
	Up, Down    bool
	A, B        bool
}

// Any reports whether at least one button is pressed.
func (b Buttons) Any() bool {
	return b.Left || b.Right || b.Up || b.Down || b.A || b.B
}

// Poller returns a fresh snapshot on every call.
type Poller interface {
	Poll() Buttons
}

// PollerFunc adapts a function to the Poller interface.
type PollerFunc func() Buttons

// Poll calls f.
func (f PollerFunc) Poll() Buttons {
	return f()
}
