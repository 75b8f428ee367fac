// Package piece is the static catalog of the seven tetromino shapes.
//
// Each shape has four precomputed rotation states stored as a 4×4 Bitmap.
// Rotation states are data, not geometry: rotating a piece only selects the
// next entry of the table.
package piece

import "fmt"

// Shape is one of the seven tetromino shapes.
type Shape uint8

// The shapes in generator order. A random draw of n selects Shape(n).
const (
	I Shape = iota
	J
	L
	O
	S
	Z
	T

	// Count is the number of real shapes.
	Count = 7

	// None marks an empty hold slot.
	None Shape = 0xFF
)

var shapeNames = [Count]string{"I", "J", "L", "O", "S", "Z", "T"}

func (s Shape) String() string {
	if s < Count {
		return shapeNames[s]
	}
	if s == None {
		return "None"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Valid reports whether s is one of the seven real shapes.
func (s Shape) Valid() bool {
	return s < Count
}

// Rotation is a rotation index in 0..3.
type Rotation uint8

// Rotations is the number of rotation states per shape.
const Rotations = 4

// Next returns the following rotation state, wrapping after 3.
func (r Rotation) Next() Rotation {
	return (r + 1) & (Rotations - 1)
}

// Bitmap is a 4×4 cell matrix. Bit i covers depth row i/4 and column i%4.
type Bitmap uint16

// Has reports whether the cell at (row, col) of the bounding box is set.
func (b Bitmap) Has(row, col int) bool {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return false
	}
	return b&(1<<(row*4+col)) != 0
}

// Row returns the 4-bit window of one depth row, column 0 in bit 0.
func (b Bitmap) Row(row int) uint8 {
	if row < 0 || row > 3 {
		return 0
	}
	return uint8(b>>(row*4)) & 0x0F
}

// Cells calls fn for every occupied cell of the bitmap.
func (b Bitmap) Cells(fn func(row, col int)) {
	for i := 0; i < 16; i++ {
		if b&(1<<i) != 0 {
			fn(i/4, i%4)
		}
	}
}

var catalog = [Count][Rotations]Bitmap{
	I: {0x000F, 0x2222, 0x000F, 0x2222},
	J: {0x0017, 0x0223, 0x0074, 0x0622},
	L: {0x0047, 0x0322, 0x0071, 0x0226},
	O: {0x0066, 0x0066, 0x0066, 0x0066},
	S: {0x0063, 0x0264, 0x0063, 0x0264},
	Z: {0x0036, 0x0462, 0x0036, 0x0462},
	T: {0x0027, 0x0232, 0x0072, 0x0262},
}

// Lookup returns the bitmap of shape s in rotation r. Invalid shapes have an
// empty bitmap.
func Lookup(s Shape, r Rotation) Bitmap {
	if !s.Valid() {
		return 0
	}
	return catalog[s][r&(Rotations-1)]
}

// Placement is a shape positioned in the well.
//
// Column may go negative while the piece hugs the left wall with an empty
// leading bitmap column.
type Placement struct {
	Shape    Shape
	Rotation Rotation
	Depth    int
	Column   int
}

// Bitmap returns the bitmap of the placement's current rotation.
func (p Placement) Bitmap() Bitmap {
	return Lookup(p.Shape, p.Rotation)
}

func (p Placement) String() string {
	return fmt.Sprintf("%s/%d@(%d,%d)", p.Shape, p.Rotation, p.Depth, p.Column)
}
