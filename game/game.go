// Package game holds the session state aggregate and runs the per-frame
// timing and control state machine.
package game

import (
	"github.com/flavioheleno/oledtris/input"
	"github.com/flavioheleno/oledtris/lfsr"
	"github.com/flavioheleno/oledtris/piece"
	"github.com/flavioheleno/oledtris/well"
)

// GameOverHandler is called from inside Step when a freshly spawned piece
// has no room. The game state still holds the final score when it runs and
// is reset right after it returns.
type GameOverHandler interface {
	GameOver(g *Game)
}

// GameOverFunc adapts a function to GameOverHandler.
type GameOverFunc func(g *Game)

// GameOver calls f.
func (f GameOverFunc) GameOver(g *Game) {
	f(g)
}

// Frame reports what happened during one Step.
type Frame struct {
	// Render is false while a hard drop is in progress; the caller then
	// skips drawing, input sampling and frame pacing.
	Render bool
	// Locked is set when the active piece was locked this frame.
	Locked bool
	// Cleared is the number of depth-lines removed this frame.
	Cleared int
	// GameOver is set when the game ended and was reset this frame.
	GameOver bool
}

// Game is the whole mutable state of a play session.
type Game struct {
	well   well.Well
	active piece.Placement
	next   piece.Shape
	held   piece.Shape
	rng    *lfsr.LFSR

	score uint16
	lines uint16
	level uint8

	dropDelay uint8
	lockDelay uint8
	dropScore uint16

	shiftLeft  uint8
	shiftRight uint8
	rotateHeld bool
	dropHeld   bool
	mayHold    bool
	hardDrop   bool

	onGameOver GameOverHandler
}

// New returns a game with an empty well whose piece sequence is driven by
// rng. The first active piece is spawned immediately.
func New(rng *lfsr.LFSR, onGameOver GameOverHandler) *Game {
	g := &Game{rng: rng, onGameOver: onGameOver}
	g.Reset()
	return g
}

// Reset clears the well and the session counters and spawns a new piece.
// The random generator keeps its state.
func (g *Game) Reset() {
	g.well.Reset()
	g.score = 0
	g.lines = 0
	g.level = 0
	g.dropScore = 0
	g.held = piece.None
	g.next = piece.I
	g.mayHold = true
	g.hardDrop = false
	g.lockDelay = LockDelay
	g.dropDelay = dropDelay(0) + EntryDelay
	g.Spawn()
}

// Spawn makes the preview piece active at the spawn position and draws a new
// preview. A draw of 7 or a repeat of the spawned shape is redrawn once from
// the seven shapes, and that second draw may repeat the shape.
func (g *Game) Spawn() {
	g.active = piece.Placement{
		Shape:  g.next,
		Depth:  SpawnDepth,
		Column: SpawnColumn,
	}
	next := piece.Shape(g.rng.Next() % 8)
	if next == 7 || next == g.active.Shape {
		next = piece.Shape(g.rng.Next() % 7)
	}
	g.next = next
}

// Step advances the game by one frame using the button snapshot b.
func (g *Game) Step(b input.Buttons) Frame {
	var f Frame

	g.shift(b.Left, &g.shiftLeft, well.ShiftLeft, -1)
	g.shift(b.Right, &g.shiftRight, well.ShiftRight, 1)

	if b.Up && !g.rotateHeld {
		g.rotateHeld = true
		prev := g.active.Rotation
		g.active.Rotation = prev.Next()
		if g.well.Probe(g.active, well.Rotate) {
			g.active.Rotation = prev
		}
		g.rng.Next()
	}
	if !b.Up {
		g.rotateHeld = false
	}

	if b.B && !g.dropHeld {
		g.dropHeld = true
		g.hardDrop = true
		g.rng.Next()
	}
	if !b.B {
		g.dropHeld = false
	}

	if b.A && g.mayHold {
		g.hold()
	}

	if b.Down {
		if g.dropDelay > SoftDropDelay {
			g.dropDelay = SoftDropDelay
			g.dropScore += SoftDropScore
		}
		g.rng.Next()
	}

	if g.well.Probe(g.active, well.Drop) {
		expired := g.lockDelay == 0
		g.lockDelay--
		if expired || g.hardDrop || g.dropDelay == SoftDropDelay {
			f.Locked = true
			f.GameOver = g.lock()
		}
	} else {
		g.lockDelay = LockDelay
	}

	expired := g.dropDelay == 0
	g.dropDelay--
	if expired || g.hardDrop {
		g.dropDelay = dropDelay(g.level)
		if !g.well.Probe(g.active, well.Drop) {
			g.active.Depth--
			if g.hardDrop {
				g.dropScore += HardDropScore
			}
		}
	}

	if n := g.well.ClearLines(); n > 0 {
		f.Cleared = n
		g.lines += uint16(n)
		g.score += LineScore(n, g.level)
		g.level = uint8(min(g.lines/LinesPerLevel, MaxLevel))
	}

	f.Render = !g.hardDrop
	return f
}

// shift handles one direction with delayed auto-repeat. The piece moves on
// the first held frame and again on every frame once the counter reaches
// ShiftDelay.
func (g *Game) shift(held bool, counter *uint8, mode well.Mode, dir int) {
	if !held {
		*counter = 0
		return
	}
	if (*counter == 0 || *counter >= ShiftDelay) && !g.well.Probe(g.active, mode) {
		g.active.Column += dir
	}
	if *counter < ShiftDelay {
		*counter++
	}
	g.rng.Next()
}

func (g *Game) hold() {
	g.mayHold = false
	if g.held == piece.None {
		g.held = g.active.Shape
		g.Spawn()
	} else {
		g.held, g.active.Shape = g.active.Shape, g.held
		g.active.Depth = SpawnDepth
		g.active.Column = SpawnColumn
		g.active.Rotation = 0
	}
	g.dropScore = 0
	g.rng.Next()
}

// lock writes the active piece into the well and spawns the next one. It
// reports whether the spawn ended the game.
func (g *Game) lock() bool {
	g.lockDelay = LockDelay
	g.dropDelay = dropDelay(g.level) + EntryDelay
	g.mayHold = true
	g.hardDrop = false
	g.score += g.dropScore / DropScoreDivisor
	g.dropScore = 0
	g.well.Probe(g.active, well.Lock)
	g.Spawn()
	if !g.well.Probe(g.active, well.Check) {
		return false
	}
	if g.onGameOver != nil {
		g.onGameOver.GameOver(g)
	}
	g.Reset()
	return true
}
