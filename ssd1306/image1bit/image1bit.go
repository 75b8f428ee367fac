package image1bit

import (
	"image"
	"image/color"
)

// Bit is a monochrome color, lit or dark.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Anything brighter than mid-gray is
// lit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image stored in 8-row pages. Each byte holds one
// column of a page, bit 0 on top.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (one page column per byte)
	Stride int             // Bytes per page
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Pages returns the number of 8-row pages.
func (p *VerticalLSB) Pages() int {
	return p.Rect.Dy() / 8
}

// Page returns the byte at column x of page, counted from the top of Rect.
func (p *VerticalLSB) Page(x, page int) byte {
	if i, ok := p.pageOffset(x, page); ok {
		return p.Pix[i]
	}
	return 0
}

// SetPage stores a whole page byte at column x.
func (p *VerticalLSB) SetPage(x, page int, b byte) {
	if i, ok := p.pageOffset(x, page); ok {
		p.Pix[i] = b
	}
}

func (p *VerticalLSB) pageOffset(x, page int) (int, bool) {
	if x < p.Rect.Min.X || x >= p.Rect.Max.X || page < 0 || page >= p.Pages() {
		return 0, false
	}
	return page*p.Stride + x - p.Rect.Min.X, true
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	y -= p.Rect.Min.Y
	offset = (y/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(y%8)
	return
}
