package sim

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Pump feeds screen events to k until the player quits, the screen is
// finalized or ctx is done. Quitting returns ErrQuit.
func Pump(ctx context.Context, s tcell.Screen, k *Keys) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if k.HandleKey(ev) {
				return ErrQuit
			}
		}
	}
}

// DrawHelp writes the key legend starting at cell (x, y).
func DrawHelp(s tcell.Screen, x, y int, style tcell.Style) {
	lines := []string{
		"arrows  move / rotate / drop",
		"z       hold",
		"x space hard drop",
		"q esc   quit",
	}
	for i, l := range lines {
		for j, r := range l {
			s.SetContent(x+j, y+i, r, nil, style)
		}
	}
	s.Show()
}
