// Package render turns game state into SSD1306 page bytes without a frame
// buffer.
//
// The well is drawn lying on its side: display column x shows depth-line x,
// and the 32 rows of the four pages show the ten well columns as 3-pixel
// cells between two border pixels. Each column word is emitted three times
// per page, with the middle copy thinned by a mask so blocks look separated.
package render

import (
	"github.com/flavioheleno/oledtris/piece"
	"github.com/flavioheleno/oledtris/well"
)

const (
	// Pages is the number of 8-pixel output strips.
	Pages = 4
	// PanelStart is the column index of the side panel's leading edge.
	PanelStart = well.Depth
	// Columns is the number of logical columns per page, well plus panel.
	Columns = well.Depth + 4
	// PageBytes is the number of data bytes sent per page.
	PageBytes = 1 + well.Depth*3 + 2 + 2*3

	heldOffset    = 0
	previewOffset = 6
	border        = uint32(1) | 1<<31
	panelDivider  = uint32(1) << 15
	solid         = ^uint32(0)
)

// masks thins the middle copy of every column, one entry per page.
var masks = [Pages]byte{0xDB, 0xB6, 0x6D, 0xDB}

// Transport is the display data channel. BeginData places the write cursor,
// WriteByte appends one page byte and EndTransfer flushes the transfer.
type Transport interface {
	BeginData(column, page uint8) error
	WriteByte(b byte) error
	EndTransfer() error
}

// Scene is the read-only view of the game the compositor draws from.
type Scene interface {
	Line(depth int) uint16
	Active() piece.Placement
	Next() piece.Shape
	Held() piece.Shape
}

// cells expands a 4-bit bitmap row into 3-pixel runs, starting at well
// column col.
func cells(bits uint8, col int) uint32 {
	var row uint32
	for j := 0; j < 4; j++ {
		if bits&(1<<j) == 0 {
			continue
		}
		if shift := 1 + 3*(col+j); shift >= 0 && shift <= 28 {
			row |= 7 << shift
		}
	}
	return row
}

// Column builds the 32-bit pixel word of logical column x. Box edges of the
// side panel are solid.
func Column(s Scene, x int) uint32 {
	switch {
	case x < 0 || x >= Columns:
		return 0
	case x < PanelStart:
		row := border
		line := s.Line(x)
		for i := 0; i < well.Width; i++ {
			if line&(1<<i) != 0 {
				row |= 7 << (1 + 3*i)
			}
		}
		a := s.Active()
		if x >= a.Depth && x < a.Depth+4 {
			row |= cells(a.Bitmap().Row(x-a.Depth), a.Column)
		}
		return row
	case x == PanelStart || x == Columns-1:
		return solid
	default:
		row := border | panelDivider
		r := x - PanelStart - 1
		row |= cells(piece.Lookup(s.Next(), 0).Row(r), previewOffset)
		if h := s.Held(); h.Valid() {
			row |= cells(piece.Lookup(h, 0).Row(r), heldOffset)
		}
		return row
	}
}

// Frame sends all four pages for s. Each page starts at display column 0
// with the solid near-end line.
func Frame(t Transport, s Scene) error {
	var words [Columns]uint32
	for x := range words {
		words[x] = Column(s, x)
	}
	w := writer{t: t}
	for p := 0; p < Pages; p++ {
		w.begin(0, uint8(p))
		w.put(0xFF)
		for x, word := range words {
			b := byte(word >> (8 * p))
			if x == PanelStart || x == Columns-1 {
				w.put(b)
				continue
			}
			w.put(b)
			w.put(b & masks[p])
			w.put(b)
		}
		w.end()
	}
	return w.err
}

// writer keeps the first transport error so the page loops stay flat.
type writer struct {
	t   Transport
	err error
}

func (w *writer) begin(column, page uint8) {
	if w.err == nil {
		w.err = w.t.BeginData(column, page)
	}
}

func (w *writer) put(b byte) {
	if w.err == nil {
		w.err = w.t.WriteByte(b)
	}
}

func (w *writer) end() {
	if w.err == nil {
		w.err = w.t.EndTransfer()
	}
}
