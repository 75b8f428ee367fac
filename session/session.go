// Package session runs the game in a paced frame loop and handles everything
// around a game: the screen setup, the game-over screen, high-score name
// entry and the low-power sleep between games.
package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/flavioheleno/oledtris/clock"
	"github.com/flavioheleno/oledtris/game"
	"github.com/flavioheleno/oledtris/input"
	"github.com/flavioheleno/oledtris/lfsr"
	"github.com/flavioheleno/oledtris/render"
	"github.com/flavioheleno/oledtris/storage"
)

// Display is the panel the session draws on.
type Display interface {
	render.Transport
	Clear() error
	On() error
	Off() error
	// SwitchFrame shows the frame just drawn when double buffering.
	SwitchFrame() error
}

// Power is the low-power wait. EnterLowPower returns on the next periodic
// wake.
type Power interface {
	EnterLowPower()
}

// Screen layout, in display columns. Scores use Uint, so a fifth digit
// lands on page 0 of the column group below them; the layout keeps those
// spots free.
const (
	scoreLabelX    = 120
	scoreX         = 112
	levelLabelX    = 104
	levelLabelPage = 1
	levelX         = 104
	levelPage      = 3
	fpsX           = 104
	fpsPage        = 1
	gameX          = 64
	overX          = 56
	hiLabelX       = 40
	hiX            = 32
	nameX          = 16
	cursorX        = 8
)

// Opts is the configuration for a Session.
type Opts struct {
	FrameBudget uint16       // Milliseconds per frame (default: 25)
	OffAfter    uint8        // Idle wakes before the display is turned off while sleeping (default: 255)
	Logger      *slog.Logger // Optional, discards when nil
}

// Session owns the game and its collaborators.
type Session struct {
	disp  Display
	in    input.Poller
	clk   clock.Clock
	store storage.Store
	power Power
	log   *slog.Logger

	budget   uint16
	offAfter uint8

	rng       *lfsr.LFSR
	game      *game.Game
	buttons   input.Buttons
	highScore uint16
	name      storage.Name

	ctx context.Context
	err error

	fps fpsMeter
}

// New loads the seed, the high score and its holder's name from store and
// prepares a game. Storage failures are logged and defaults used.
//
// opts can be nil to use defaults.
func New(d Display, in input.Poller, clk clock.Clock, store storage.Store, pw Power, opts *Opts) *Session {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.FrameBudget == 0 {
		o.FrameBudget = 25
	}
	if o.OffAfter == 0 {
		o.OffAfter = 255
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		disp:     d,
		in:       in,
		clk:      clk,
		store:    store,
		power:    pw,
		log:      o.Logger,
		budget:   o.FrameBudget,
		offAfter: o.OffAfter,
		ctx:      context.Background(),
	}

	seed, err := store.LoadSeed()
	if err != nil {
		s.log.Warn("load seed", "err", err)
	}
	s.highScore, err = store.LoadHighScore()
	if err != nil {
		s.log.Warn("load high score", "err", err)
		s.highScore = storage.NoRecord
	}
	s.name, err = store.LoadName()
	if err != nil {
		s.log.Warn("load name", "err", err)
		s.name = storage.BlankName
	}
	s.rng = lfsr.New(seed)
	s.game = game.New(s.rng, s)
	return s
}

// Game returns the running game.
func (s *Session) Game() *game.Game { return s.game }

// HighScore returns the best stored score, storage.NoRecord if none.
func (s *Session) HighScore() uint16 { return s.highScore }

// HighScoreName returns the name stored with the high score.
func (s *Session) HighScoreName() storage.Name { return s.name }

// Run sets up the screen and runs frames until ctx is done. Display errors
// end the loop and are returned. A cancelled ctx returns nil.
func (s *Session) Run(ctx context.Context) error {
	s.ctx = ctx
	s.log.Info("session started", "seed", s.rng.Seed(), "high_score", s.highScore)
	if err := s.setupScreen(); err != nil {
		return err
	}
	s.buttons = s.in.Poll()
	for ctx.Err() == nil {
		if err := s.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// Frame runs one game step with the last sampled buttons. Unless a hard drop
// is in progress it then draws the frame, samples the buttons for the next
// one and busy-waits out the rest of the frame budget.
func (s *Session) Frame() error {
	start := s.clk.Millis()
	f := s.game.Step(s.buttons)
	if err := s.err; err != nil {
		s.err = nil
		return err
	}
	if !f.Render {
		return nil
	}
	if err := s.draw(); err != nil {
		return err
	}
	s.buttons = s.in.Poll()
	clock.Pace(s.clk, start, s.budget)
	return nil
}

func (s *Session) draw() error {
	if DoubleBuffer {
		// Each RAM half needs its own copy of the labels.
		if err := s.labels(); err != nil {
			return err
		}
	}
	if err := render.Frame(s.disp, s.game); err != nil {
		return err
	}
	if err := render.Text(s.disp, levelX, levelPage, string(rune('0'+s.game.Level()))); err != nil {
		return err
	}
	if err := render.Uint(s.disp, scoreX, 0, s.game.Score()); err != nil {
		return err
	}
	if ShowFPS {
		if fps, ok := s.fps.frame(s.clk.Millis()); ok {
			if err := render.Text(s.disp, fpsX, fpsPage, fps); err != nil {
				return err
			}
		}
	}
	return s.disp.SwitchFrame()
}

// setupScreen clears the panel, turns it on and draws the static labels.
func (s *Session) setupScreen() error {
	if err := s.disp.Clear(); err != nil {
		return err
	}
	if err := s.disp.On(); err != nil {
		return err
	}
	return s.labels()
}

func (s *Session) labels() error {
	if err := render.Text(s.disp, scoreLabelX, 0, "Scor"); err != nil {
		return err
	}
	if ShowFPS {
		return nil
	}
	return render.Text(s.disp, levelLabelX, levelLabelPage, "Lv")
}
