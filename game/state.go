package game

import "github.com/flavioheleno/oledtris/piece"

// Score returns the current score.
func (g *Game) Score() uint16 { return g.score }

// Lines returns the number of depth-lines cleared this session.
func (g *Game) Lines() uint16 { return g.lines }

// Level returns the current level, 0..MaxLevel.
func (g *Game) Level() uint8 { return g.level }

// Active returns the active piece.
func (g *Game) Active() piece.Placement { return g.active }

// Next returns the preview shape.
func (g *Game) Next() piece.Shape { return g.next }

// Held returns the held shape, or piece.None.
func (g *Game) Held() piece.Shape { return g.held }

// Line returns one depth-line of the well.
func (g *Game) Line(depth int) uint16 { return g.well.Line(depth) }
