package sim

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/oledtris/input"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func newTestKeys() (*Keys, *fakeTime) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	k := NewKeys(0)
	k.now = ft.now
	return k, ft
}

func TestKeysBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Buttons
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.Buttons{Left: true}},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.Buttons{Right: true}},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.Buttons{Up: true}},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.Buttons{Down: true}},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), input.Buttons{A: true}},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.Buttons{B: true}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Buttons{B: true}},
		{"vi h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), input.Buttons{Left: true}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), input.Buttons{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, _ := newTestKeys()
			assert.False(t, k.HandleKey(tt.ev))
			assert.Equal(t, tt.want, k.Poll())
		})
	}
}

func TestKeysHoldExpires(t *testing.T) {
	k, ft := newTestKeys()
	k.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))

	ft.t = ft.t.Add(DefaultHold - time.Millisecond)
	assert.True(t, k.Poll().Left)

	// A repeat keeps it held
	k.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	ft.t = ft.t.Add(DefaultHold - time.Millisecond)
	assert.True(t, k.Poll().Left)

	ft.t = ft.t.Add(time.Millisecond)
	assert.False(t, k.Poll().Left)
}

func TestKeysQuit(t *testing.T) {
	k, _ := newTestKeys()
	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, input.Buttons{}, k.Poll())
}

func TestPumpQuits(t *testing.T) {
	s := newScreen(t)
	k := NewKeys(time.Minute)

	s.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	err := Pump(context.Background(), s, k)
	assert.ErrorIs(t, err, ErrQuit)
	assert.True(t, k.Poll().A)
}

func TestPumpStopsOnCancel(t *testing.T) {
	s := newScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Pump(ctx, s, NewKeys(0)) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Pump did not return after cancel")
	}
}
