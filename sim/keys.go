package sim

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/flavioheleno/oledtris/input"
)

// ErrQuit is returned by Pump when the player asks to quit.
var ErrQuit = errors.New("sim: quit")

// DefaultHold is how long a key counts as held after its last event.
// Terminals report no key releases, only repeats.
const DefaultHold = 150 * time.Millisecond

type button int

const (
	left button = iota
	right
	up
	down
	buttonA
	buttonB
	buttonCount
)

type keybinding struct {
	k tcell.Key
	r rune
	b button
}

var keybindings = []keybinding{
	{k: tcell.KeyLeft, b: left},
	{r: 'h', b: left},
	{k: tcell.KeyRight, b: right},
	{r: 'l', b: right},
	{k: tcell.KeyUp, b: up},
	{r: 'k', b: up},
	{k: tcell.KeyDown, b: down},
	{r: 'j', b: down},
	{r: 'z', b: buttonA},
	{r: 'Z', b: buttonA},
	{r: 'x', b: buttonB},
	{r: 'X', b: buttonB},
	{r: ' ', b: buttonB},
}

// Keys turns key events into held buttons. It is an input.Poller.
type Keys struct {
	mu   sync.Mutex
	last [buttonCount]time.Time
	hold time.Duration
	now  func() time.Time
}

// NewKeys returns a Keys that keeps a button held for hold after each key
// event. Zero uses DefaultHold.
func NewKeys(hold time.Duration) *Keys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keys{hold: hold, now: time.Now}
}

// HandleKey records ev and reports whether it asks to quit.
func (k *Keys) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, bind := range keybindings {
		if (bind.k != 0 && bind.k == ev.Key()) || (bind.r != 0 && ev.Key() == tcell.KeyRune && bind.r == ev.Rune()) {
			k.last[bind.b] = k.now()
		}
	}
	return false
}

// Poll returns the buttons seen within the hold time.
func (k *Keys) Poll() input.Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	var held [buttonCount]bool
	for b, t := range k.last {
		held[b] = !t.IsZero() && now.Sub(t) < k.hold
	}
	return input.Buttons{
		Left:  held[left],
		Right: held[right],
		Up:    held[up],
		Down:  held[down],
		A:     held[buttonA],
		B:     held[buttonB],
	}
}
