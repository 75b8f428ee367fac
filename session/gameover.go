package session

import (
	"github.com/flavioheleno/oledtris/game"
	"github.com/flavioheleno/oledtris/input"
	"github.com/flavioheleno/oledtris/render"
	"github.com/flavioheleno/oledtris/storage"
)

// nameChars is the name entry alphabet, cycled with Up and Down.
const nameChars = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GameOver runs between the end of a game and the next one: the game-over
// screen, name entry for a new high score, then sleep until a button wakes
// the device. It is called by the game from inside Step.
func (s *Session) GameOver(g *game.Game) {
	if s.err != nil {
		return
	}
	s.err = s.gameOver(g)
}

func (s *Session) gameOver(g *game.Game) error {
	score := g.Score()
	s.log.Info("game over", "score", score, "lines", g.Lines(), "level", g.Level())

	if err := render.Text(s.disp, gameX, 0, "Game"); err != nil {
		return err
	}
	if err := render.Text(s.disp, overX, 0, "Over"); err != nil {
		return err
	}
	if err := s.disp.SwitchFrame(); err != nil {
		return err
	}
	s.waitRelease()

	if beats(score, s.highScore) {
		// NoRecord is reserved.
		score = min(score, storage.NoRecord-1)
		name, err := s.enterName()
		if err != nil {
			return err
		}
		if err := s.store.StoreHighScore(score); err != nil {
			s.log.Warn("store high score", "err", err)
		}
		if err := s.store.StoreName(name); err != nil {
			s.log.Warn("store name", "err", err)
		}
		s.highScore = score
		s.name = name
		s.log.Info("new high score", "score", score, "name", name.String())
	}
	if s.highScore != storage.NoRecord {
		if err := s.showHighScore(); err != nil {
			return err
		}
	}

	if err := s.sleep(); err != nil {
		return err
	}
	return s.setupScreen()
}

// beats reports whether score is a new high score. Any score beats an empty
// record.
func beats(score, high uint16) bool {
	return high == storage.NoRecord || score > high
}

// showHighScore draws the record and its holder's name. The name takes the
// name entry columns; its fifth character replaces the cursor marker.
func (s *Session) showHighScore() error {
	if err := render.Text(s.disp, hiLabelX, 0, "Hi"); err != nil {
		return err
	}
	if err := render.Uint(s.disp, hiX, 0, s.highScore); err != nil {
		return err
	}
	if err := render.Wrap(s.disp, nameX, 0, s.name.String()+"   "); err != nil {
		return err
	}
	return s.disp.SwitchFrame()
}

// waitRelease blocks until no button is pressed.
func (s *Session) waitRelease() {
	for s.ctx.Err() == nil && s.in.Poll().Any() {
		s.power.EnterLowPower()
	}
}

// enterName lets the player spell a name. Up and Down cycle the character
// under the cursor, Left and Right move the cursor, A or B confirm. Only
// presses count, holding a button does not repeat.
func (s *Session) enterName() (storage.Name, error) {
	var name storage.Name
	idx := [storage.NameLen]int{1}
	cursor := 0
	var prev input.Buttons
	for {
		for i, c := range idx {
			name[i] = nameChars[c]
		}
		if err := s.drawName(name, cursor); err != nil {
			return name, err
		}
		if s.ctx.Err() != nil {
			return name, nil
		}
		s.power.EnterLowPower()
		b := s.in.Poll()
		p := pressed(prev, b)
		prev = b
		switch {
		case p.A || p.B:
			return name, nil
		case p.Up:
			idx[cursor] = (idx[cursor] + 1) % len(nameChars)
		case p.Down:
			idx[cursor] = (idx[cursor] + len(nameChars) - 1) % len(nameChars)
		case p.Left && cursor > 0:
			cursor--
		case p.Right && cursor < storage.NameLen-1:
			cursor++
		}
	}
}

// drawName shows four characters of name around the cursor, one per page,
// with a marker beside the cursor.
func (s *Session) drawName(name storage.Name, cursor int) error {
	first := max(0, cursor-render.Pages+1)
	if err := render.Text(s.disp, nameX, 0, string(name[first:first+render.Pages])); err != nil {
		return err
	}
	marker := []byte("    ")
	marker[cursor-first] = '<'
	if err := render.Text(s.disp, cursorX, 0, string(marker)); err != nil {
		return err
	}
	return s.disp.SwitchFrame()
}

// sleep persists the seed and waits in low power until a button is pressed.
// The display is turned off after offAfter idle wakes.
func (s *Session) sleep() error {
	if err := s.store.StoreSeed(s.rng.Seed()); err != nil {
		s.log.Warn("store seed", "err", err)
	} else {
		s.log.Debug("seed persisted", "seed", s.rng.Seed())
	}
	s.waitRelease()

	s.log.Info("sleeping")
	idle := 0
	off := false
	for s.ctx.Err() == nil {
		s.power.EnterLowPower()
		if s.in.Poll().Any() {
			break
		}
		if off {
			continue
		}
		if idle++; idle >= int(s.offAfter) {
			if err := s.disp.Off(); err != nil {
				return err
			}
			off = true
			s.log.Info("display off")
		}
	}
	s.log.Info("woke up")
	s.buttons = input.Buttons{}
	return nil
}

// pressed returns the buttons that went down between prev and cur.
func pressed(prev, cur input.Buttons) input.Buttons {
	return input.Buttons{
		Left:  cur.Left && !prev.Left,
		Right: cur.Right && !prev.Right,
		Up:    cur.Up && !prev.Up,
		Down:  cur.Down && !prev.Down,
		A:     cur.A && !prev.A,
		B:     cur.B && !prev.B,
	}
}
