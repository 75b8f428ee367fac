package sim

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/oledtris/render"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(ViewW+2, ViewH+2)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func write(t *testing.T, p *Panel, column, page uint8, data ...byte) {
	t.Helper()
	require.NoError(t, p.BeginData(column, page))
	for _, b := range data {
		require.NoError(t, p.WriteByte(b))
	}
	require.NoError(t, p.EndTransfer())
}

func TestPanelPageWrites(t *testing.T) {
	p := NewPanel(newScreen(t), nil)
	require.NoError(t, p.On())

	write(t, p, 5, 1, 0x01, 0x80)

	assert.True(t, p.Pixel(5, 8))
	assert.False(t, p.Pixel(5, 9))
	assert.True(t, p.Pixel(6, 15))
	assert.False(t, p.Pixel(7, 15))
}

func TestPanelColumnWraps(t *testing.T) {
	p := NewPanel(newScreen(t), nil)
	require.NoError(t, p.On())

	write(t, p, PanelW-1, 0, 0x01, 0x01)

	assert.True(t, p.Pixel(PanelW-1, 0))
	assert.True(t, p.Pixel(0, 0))
}

func TestPanelBraille(t *testing.T) {
	s := newScreen(t)
	p := NewPanel(s, &PanelOpts{X: 1, Y: 1})
	require.NoError(t, p.On())

	// Far edge, top row: top-left dot of the first cell
	write(t, p, PanelW-1, 0, 0x01)
	// Near edge, rows 2 and 3: right column, bottom dot of the last row
	write(t, p, 0, 0, 0x0C)
	require.NoError(t, p.SwitchFrame())

	assert.Equal(t, '⠁', cellAt(s, 1, 1))
	assert.Equal(t, rune(0x2800|0x40|0x80), cellAt(s, 2, ViewH))
	assert.Equal(t, '⠀', cellAt(s, 2, 2))
}

func TestPanelOffBlanks(t *testing.T) {
	s := newScreen(t)
	p := NewPanel(s, nil)
	require.NoError(t, p.On())
	write(t, p, PanelW-1, 0, 0xFF)
	require.NoError(t, p.SwitchFrame())
	assert.NotEqual(t, '⠀', cellAt(s, 0, 0))

	require.NoError(t, p.Off())
	assert.Equal(t, '⠀', cellAt(s, 0, 0))
	assert.False(t, p.Pixel(PanelW-1, 0))

	// RAM survives power off
	require.NoError(t, p.On())
	assert.True(t, p.Pixel(PanelW-1, 0))
}

func TestPanelClear(t *testing.T) {
	p := NewPanel(newScreen(t), nil)
	require.NoError(t, p.On())
	write(t, p, 0, 0, 0xFF)
	require.NoError(t, p.Clear())
	assert.False(t, p.Pixel(0, 0))
}

func TestPanelDoubleBuffer(t *testing.T) {
	p := NewPanel(newScreen(t), &PanelOpts{DoubleBuffer: true})
	require.NoError(t, p.On())

	// Drawn into the hidden half
	write(t, p, 3, 0, 0xFF)
	assert.False(t, p.Pixel(3, 0))

	require.NoError(t, p.SwitchFrame())
	assert.True(t, p.Pixel(3, 0))

	// Now the first half is hidden
	write(t, p, 4, 0, 0xFF)
	assert.False(t, p.Pixel(4, 0))
	require.NoError(t, p.SwitchFrame())
	assert.True(t, p.Pixel(4, 0))
	assert.False(t, p.Pixel(3, 0))
}

func TestPanelTextReadsUpright(t *testing.T) {
	p := NewPanel(newScreen(t), nil)
	require.NoError(t, p.On())
	require.NoError(t, render.Text(p, 120, 0, "I"))

	// The top serif of the I is on view row 0 across view columns 2..4,
	// which is panel column 127, rows 2..4. The stem below it is one pixel.
	for y := 2; y <= 4; y++ {
		assert.True(t, p.Pixel(127, y), "row %d", y)
	}
	assert.False(t, p.Pixel(127, 1))
	assert.False(t, p.Pixel(127, 5))
	assert.True(t, p.Pixel(126, 3))
	assert.False(t, p.Pixel(126, 2))
}
