// Package sim emulates the 128x32 SSD1306 panel and the six buttons in a
// terminal, so the game can run on a host.
package sim

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/flavioheleno/oledtris/ssd1306"
	"github.com/flavioheleno/oledtris/ssd1306/image1bit"
)

const (
	// PanelW and PanelH are the visible panel size in pixels.
	PanelW = 128
	PanelH = 32

	// Each terminal cell shows a 2x4 block of pixels as a braille pattern.
	cellW = 2
	cellH = 4

	// ViewW and ViewH are the terminal cells covered by the panel. The view
	// is turned a quarter counterclockwise, so the well stands upright and
	// the clockwise text reads normally.
	ViewW = PanelH / cellW
	ViewH = PanelW / cellH
)

// braille dot bits by position in the cell, [x][y].
var brailleDots = [cellW][cellH]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// PanelOpts is the configuration for a Panel.
type PanelOpts struct {
	X, Y         int         // Top-left terminal cell of the view
	Style        tcell.Style // Style of the view cells
	DoubleBuffer bool        // Same as ssd1306.Opts.DoubleBuffer
}

// Panel emulates the controller RAM behind a tcell screen. It accepts the
// same page writes as the SSD1306 driver and redraws the screen whenever a
// frame is switched or the power state changes.
type Panel struct {
	mu     sync.Mutex
	screen tcell.Screen
	opts   PanelOpts
	ram    *image1bit.VerticalLSB

	column, page int
	active       bool

	pageOffset int
	startLine  int
	on         bool
}

// NewPanel returns a powered-off panel drawing on s. opts can be nil.
func NewPanel(s tcell.Screen, opts *PanelOpts) *Panel {
	p := &Panel{
		screen: s,
		ram:    image1bit.NewVerticalLSB(image.Rect(0, 0, PanelW, ssd1306.RAMPages*8)),
	}
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.DoubleBuffer {
		p.pageOffset = 4
	}
	return p
}

// BeginData places the write cursor.
func (p *Panel) BeginData(column, page uint8) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.column = int(column) % PanelW
	p.page = (int(page) + p.pageOffset) % ssd1306.RAMPages
	p.active = true
	return nil
}

// WriteByte stores one page byte and advances the column, wrapping within
// the page.
func (p *Panel) WriteByte(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}
	p.ram.SetPage(p.column, p.page, b)
	p.column = (p.column + 1) % PanelW
	return nil
}

// EndTransfer closes the data transfer.
func (p *Panel) EndTransfer() error {
	p.mu.Lock()
	p.active = false
	p.mu.Unlock()
	return nil
}

// Clear zeroes the whole RAM.
func (p *Panel) Clear() error {
	p.mu.Lock()
	clear(p.ram.Pix)
	p.mu.Unlock()
	p.Show()
	return nil
}

// On powers the panel on.
func (p *Panel) On() error {
	p.mu.Lock()
	p.on = true
	p.mu.Unlock()
	p.Show()
	return nil
}

// Off blanks the panel. RAM contents are kept.
func (p *Panel) Off() error {
	p.mu.Lock()
	p.on = false
	p.mu.Unlock()
	p.Show()
	return nil
}

// SwitchFrame flips the displayed RAM half when double buffering, then
// redraws the screen.
func (p *Panel) SwitchFrame() error {
	p.mu.Lock()
	if p.opts.DoubleBuffer {
		p.startLine ^= PanelH
		p.pageOffset ^= 4
	}
	p.mu.Unlock()
	p.Show()
	return nil
}

// Pixel reports whether the visible pixel at (x, y) is lit.
func (p *Panel) Pixel(x, y int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixel(x, y)
}

func (p *Panel) pixel(x, y int) bool {
	if !p.on {
		return false
	}
	return bool(p.ram.BitAt(x, (p.startLine+y)%p.ram.Rect.Dy()))
}

// Show draws the visible frame on the screen.
func (p *Panel) Show() {
	p.mu.Lock()
	for cy := 0; cy < ViewH; cy++ {
		for cx := 0; cx < ViewW; cx++ {
			r := rune(0x2800)
			for dx := 0; dx < cellW; dx++ {
				for dy := 0; dy < cellH; dy++ {
					// View column is the panel row, view row counts panel
					// columns from the far edge.
					if p.pixel(PanelW-1-(cy*cellH+dy), cx*cellW+dx) {
						r |= brailleDots[dx][dy]
					}
				}
			}
			p.screen.SetContent(p.opts.X+cx, p.opts.Y+cy, r, nil, p.opts.Style)
		}
	}
	p.mu.Unlock()
	p.screen.Show()
}
