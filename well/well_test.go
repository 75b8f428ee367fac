package well

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/oledtris/piece"
)

func fill(w *Well, lines map[int]uint16) {
	for i, v := range lines {
		w.SetLine(i, v)
	}
}

func TestProbeDrop(t *testing.T) {
	var w Well
	o := piece.Placement{Shape: piece.O, Depth: 0, Column: 3}
	assert.True(t, w.Probe(o, Drop), "piece at depth 0 must collide with the near end")

	o.Depth = 1
	assert.False(t, w.Probe(o, Drop))

	w.SetLine(0, 1<<4) // O occupies columns 4 and 5
	assert.True(t, w.Probe(o, Drop))

	w.SetLine(0, 1<<3)
	assert.False(t, w.Probe(o, Drop))
}

func TestProbeWalls(t *testing.T) {
	var w Well
	// I horizontal covers columns 0..3 of its box.
	i := piece.Placement{Shape: piece.I, Depth: 5, Column: 0}
	assert.True(t, w.Probe(i, ShiftLeft))
	assert.False(t, w.Probe(i, ShiftRight))
	assert.False(t, w.Probe(i, Rotate))

	i.Column = 6
	assert.True(t, w.Probe(i, ShiftRight))
	assert.False(t, w.Probe(i, ShiftLeft))

	i.Column = 7
	assert.True(t, w.Probe(i, Rotate))
	assert.True(t, w.Probe(i, Check))
	// Drop never looks at column bounds.
	assert.False(t, w.Probe(i, Drop))
}

func TestProbeNegativeColumn(t *testing.T) {
	var w Well
	// Vertical I only uses box column 1, so column -1 is a legal position.
	v := piece.Placement{Shape: piece.I, Rotation: 1, Depth: 5, Column: -1}
	assert.False(t, w.Probe(v, Rotate))
	assert.True(t, w.Probe(v, ShiftLeft))
	assert.False(t, w.Probe(v, Drop))
}

func TestProbeFarEndIsOpen(t *testing.T) {
	var w Well
	// Vertical I covers depths 27..30.
	v := piece.Placement{Shape: piece.I, Rotation: 1, Depth: Depth - 3, Column: 3}
	assert.False(t, w.Probe(v, Rotate))
	assert.False(t, w.Probe(v, ShiftLeft))
	assert.False(t, w.Probe(v, ShiftRight))
	assert.False(t, w.Probe(v, Drop))

	w.SetLine(Depth-1, 1<<4)
	assert.True(t, w.Probe(v, Rotate), "in-range cells still collide")
}

func TestLock(t *testing.T) {
	var w Well
	p := piece.Placement{Shape: piece.T, Depth: 0, Column: 2}
	require.True(t, w.Probe(p, Drop))
	assert.False(t, w.Probe(p, Lock))
	// T rotation 0 is 0x27: row 0 columns 0..2, row 1 column 1.
	assert.Equal(t, uint16(0x7<<2), w.Line(0))
	assert.Equal(t, uint16(0x1<<3), w.Line(1))
	for i := 2; i < Depth; i++ {
		assert.Zero(t, w.Line(i))
	}
	assert.True(t, w.Probe(p, Check), "locked cells now collide")
}

func TestLockIgnoresOutOfRange(t *testing.T) {
	var w Well
	p := piece.Placement{Shape: piece.I, Rotation: 1, Depth: Depth - 2, Column: 3}
	w.Probe(p, Lock)
	assert.Equal(t, uint16(1<<4), w.Line(Depth-2))
	assert.Equal(t, uint16(1<<4), w.Line(Depth-1))
}

func TestClearSingleLine(t *testing.T) {
	var w Well
	fill(&w, map[int]uint16{0: 0x001, 1: Full, 2: 0x002, 3: 0x004, Depth - 1: 0x200})

	require.Equal(t, 1, w.ClearLines())
	assert.Equal(t, uint16(0x001), w.Line(0))
	assert.Equal(t, uint16(0x002), w.Line(1))
	assert.Equal(t, uint16(0x004), w.Line(2))
	assert.Equal(t, uint16(0x200), w.Line(Depth-2))
	assert.Zero(t, w.Line(Depth-1), "far end must be zero-filled")
}

func TestClearAdjacentLines(t *testing.T) {
	var w Well
	fill(&w, map[int]uint16{0: Full, 1: Full, 2: 0x0F0, 3: Full, 4: Full, 5: Full, 6: 0x3})

	assert.Equal(t, 5, w.ClearLines())
	assert.Equal(t, uint16(0x0F0), w.Line(0))
	assert.Equal(t, uint16(0x3), w.Line(1))
	for i := 2; i < Depth; i++ {
		assert.Zerof(t, w.Line(i), "line %d", i)
	}
	assert.Zero(t, w.ClearLines())
}

func TestClearEntireWell(t *testing.T) {
	var w Well
	for i := 0; i < Depth; i++ {
		w.SetLine(i, Full)
	}
	assert.Equal(t, Depth, w.ClearLines())
	for i := 0; i < Depth; i++ {
		assert.Zero(t, w.Line(i))
	}
}

func TestLinesStayInRange(t *testing.T) {
	var w Well
	w.SetLine(3, 0xFFFF)
	assert.Equal(t, uint16(Full), w.Line(3))
	w.SetLine(-1, 1)
	w.SetLine(Depth, 1)
	assert.Zero(t, w.Line(-1))
	assert.Zero(t, w.Line(Depth))
}

func TestRotateRevertProperty(t *testing.T) {
	// Fill the well everywhere except the piece's current cells: any target
	// rotation that uses another cell collides.
	for s := piece.Shape(0); s < piece.Count; s++ {
		for r := piece.Rotation(0); r < piece.Rotations; r++ {
			var w Well
			for i := 0; i < Depth; i++ {
				w.SetLine(i, Full)
			}
			p := piece.Placement{Shape: s, Rotation: r, Depth: 10, Column: 3}
			p.Bitmap().Cells(func(row, col int) {
				line := w.Line(p.Depth + row)
				w.SetLine(p.Depth+row, line&^(1<<(p.Column+col)))
			})
			require.False(t, w.Probe(p, Rotate), "%v must fit its own cells", p)

			target := p
			target.Rotation = r.Next()
			want := target.Bitmap() != p.Bitmap()
			assert.Equalf(t, want, w.Probe(target, Rotate), "%v -> %d", p, target.Rotation)
		}
	}
}
