// Package well models the playing field as 30 depth-lines of 10-bit column
// sets, together with the collision, lock and line-clear algorithms.
//
// Depth-line 0 is the near end where pieces come to rest first.
package well

import "github.com/flavioheleno/oledtris/piece"

const (
	// Depth is the number of depth-lines.
	Depth = 30
	// Width is the number of columns per depth-line.
	Width = 10
	// Full is the value of a completely occupied depth-line.
	Full = 1<<Width - 1
)

// Mode selects how Probe treats the active piece's cells.
type Mode uint8

const (
	// Rotate tests the piece in place, including both column bounds. It is
	// used after a rotation and for the spawn test.
	Rotate Mode = iota
	// Drop tests the piece one depth-line nearer.
	Drop
	// ShiftLeft tests the piece one column to the left.
	ShiftLeft
	// ShiftRight tests the piece one column to the right.
	ShiftRight
	// Lock writes the piece's cells into the well.
	Lock

	// Check is the in-place test.
	Check = Rotate
)

var modeNames = [...]string{"Rotate", "Drop", "ShiftLeft", "ShiftRight", "Lock"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(?)"
}

// Well is the grid of depth-lines.
type Well struct {
	lines [Depth]uint16
}

// Reset empties every depth-line.
func (w *Well) Reset() {
	w.lines = [Depth]uint16{}
}

// Line returns the column set of depth-line i, or 0 outside the well.
func (w *Well) Line(i int) uint16 {
	if i < 0 || i >= Depth {
		return 0
	}
	return w.lines[i]
}

// SetLine overwrites depth-line i. Values are masked to the well width.
func (w *Well) SetLine(i int, v uint16) {
	if i < 0 || i >= Depth {
		return
	}
	w.lines[i] = v & Full
}

// occupied reports whether the cell is set. Columns outside the well and
// depths beyond the far end read as empty; the mode-specific bound checks in
// Probe handle walls.
func (w *Well) occupied(depth, col int) bool {
	if col < 0 || col >= Width || depth >= Depth {
		return false
	}
	return w.lines[depth]&(1<<col) != 0
}

// Probe applies mode to every occupied cell of p's current rotation.
//
// For the test modes it reports whether any adjusted cell collides: a cell
// below depth 0, on a set well bit, or past the wall for the mode. Cells past
// the far end are open. Lock ORs
// the cells into the well at their unadjusted position and always returns
// false; it must only follow a Drop probe that reported a collision.
func (w *Well) Probe(p piece.Placement, mode Mode) bool {
	b := p.Bitmap()
	for i := 0; i < 16; i++ {
		if b&(1<<i) == 0 {
			continue
		}
		depth := p.Depth + i/4
		col := p.Column + i%4
		switch mode {
		case Drop:
			depth--
		case ShiftLeft:
			col--
		case ShiftRight:
			col++
		case Lock:
			if depth >= 0 && depth < Depth && col >= 0 && col < Width {
				w.lines[depth] |= 1 << col
			}
			continue
		}
		if depth < 0 {
			return true
		}
		if w.occupied(depth, col) {
			return true
		}
		if (mode == Rotate || mode == ShiftLeft) && col < 0 {
			return true
		}
		if (mode == Rotate || mode == ShiftRight) && col >= Width {
			return true
		}
	}
	return false
}

// ClearLines removes every full depth-line, moving the lines beyond it one
// step nearer and zero-filling the far end. It returns the number removed.
func (w *Well) ClearLines() int {
	n := 0
	for i := 0; i < Depth; {
		if w.lines[i] < Full {
			i++
			continue
		}
		copy(w.lines[i:], w.lines[i+1:])
		w.lines[Depth-1] = 0
		n++
	}
	return n
}
