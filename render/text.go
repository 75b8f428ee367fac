package render

import (
	"errors"
	"strconv"
)

// GlyphWidth is the number of display columns one rotated character covers.
const GlyphWidth = 8

// font6x8 holds ASCII 0x20..0x7E as five pixel columns, bit 0 at the top. A
// blank sixth column separates characters.
var font6x8 = [...][5]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x00, 0x00, 0x2F, 0x00, 0x00}, // !
	{0x00, 0x07, 0x00, 0x07, 0x00}, // "
	{0x14, 0x7F, 0x14, 0x7F, 0x14}, // #
	{0x24, 0x2A, 0x7F, 0x2A, 0x12}, // $
	{0x62, 0x64, 0x08, 0x13, 0x23}, // %
	{0x36, 0x49, 0x55, 0x22, 0x50}, // &
	{0x00, 0x05, 0x03, 0x00, 0x00}, // '
	{0x00, 0x1C, 0x22, 0x41, 0x00}, // (
	{0x00, 0x41, 0x22, 0x1C, 0x00}, // )
	{0x14, 0x08, 0x3E, 0x08, 0x14}, // *
	{0x08, 0x08, 0x3E, 0x08, 0x08}, // +
	{0x00, 0x00, 0xA0, 0x60, 0x00}, // ,
	{0x08, 0x08, 0x08, 0x08, 0x08}, // -
	{0x00, 0x60, 0x60, 0x00, 0x00}, // .
	{0x20, 0x10, 0x08, 0x04, 0x02}, // /
	{0x3E, 0x51, 0x49, 0x45, 0x3E}, // 0
	{0x00, 0x42, 0x7F, 0x40, 0x00}, // 1
	{0x42, 0x61, 0x51, 0x49, 0x46}, // 2
	{0x21, 0x41, 0x45, 0x4B, 0x31}, // 3
	{0x18, 0x14, 0x12, 0x7F, 0x10}, // 4
	{0x27, 0x45, 0x45, 0x45, 0x39}, // 5
	{0x3C, 0x4A, 0x49, 0x49, 0x30}, // 6
	{0x01, 0x71, 0x09, 0x05, 0x03}, // 7
	{0x36, 0x49, 0x49, 0x49, 0x36}, // 8
	{0x06, 0x49, 0x49, 0x29, 0x1E}, // 9
	{0x00, 0x36, 0x36, 0x00, 0x00}, // :
	{0x00, 0x56, 0x36, 0x00, 0x00}, // ;
	{0x08, 0x14, 0x22, 0x41, 0x00}, // <
	{0x14, 0x14, 0x14, 0x14, 0x14}, // =
	{0x00, 0x41, 0x22, 0x14, 0x08}, // >
	{0x02, 0x01, 0x51, 0x09, 0x06}, // ?
	{0x32, 0x49, 0x59, 0x51, 0x3E}, // @
	{0x7C, 0x12, 0x11, 0x12, 0x7C}, // A
	{0x7F, 0x49, 0x49, 0x49, 0x36}, // B
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // C
	{0x7F, 0x41, 0x41, 0x22, 0x1C}, // D
	{0x7F, 0x49, 0x49, 0x49, 0x41}, // E
	{0x7F, 0x09, 0x09, 0x09, 0x01}, // F
	{0x3E, 0x41, 0x49, 0x49, 0x7A}, // G
	{0x7F, 0x08, 0x08, 0x08, 0x7F}, // H
	{0x00, 0x41, 0x7F, 0x41, 0x00}, // I
	{0x20, 0x40, 0x41, 0x3F, 0x01}, // J
	{0x7F, 0x08, 0x14, 0x22, 0x41}, // K
	{0x7F, 0x40, 0x40, 0x40, 0x40}, // L
	{0x7F, 0x02, 0x0C, 0x02, 0x7F}, // M
	{0x7F, 0x04, 0x08, 0x10, 0x7F}, // N
	{0x3E, 0x41, 0x41, 0x41, 0x3E}, // O
	{0x7F, 0x09, 0x09, 0x09, 0x06}, // P
	{0x3E, 0x41, 0x51, 0x21, 0x5E}, // Q
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // R
	{0x46, 0x49, 0x49, 0x49, 0x31}, // S
	{0x01, 0x01, 0x7F, 0x01, 0x01}, // T
	{0x3F, 0x40, 0x40, 0x40, 0x3F}, // U
	{0x1F, 0x20, 0x40, 0x20, 0x1F}, // V
	{0x3F, 0x40, 0x38, 0x40, 0x3F}, // W
	{0x63, 0x14, 0x08, 0x14, 0x63}, // X
	{0x07, 0x08, 0x70, 0x08, 0x07}, // Y
	{0x61, 0x51, 0x49, 0x45, 0x43}, // Z
	{0x00, 0x7F, 0x41, 0x41, 0x00}, // [
	{0x02, 0x04, 0x08, 0x10, 0x20}, // backslash
	{0x00, 0x41, 0x41, 0x7F, 0x00}, // ]
	{0x04, 0x02, 0x01, 0x02, 0x04}, // ^
	{0x40, 0x40, 0x40, 0x40, 0x40}, // _
	{0x00, 0x01, 0x02, 0x04, 0x00}, // `
	{0x20, 0x54, 0x54, 0x54, 0x78}, // a
	{0x7F, 0x48, 0x44, 0x44, 0x38}, // b
	{0x38, 0x44, 0x44, 0x44, 0x20}, // c
	{0x38, 0x44, 0x44, 0x48, 0x7F}, // d
	{0x38, 0x54, 0x54, 0x54, 0x18}, // e
	{0x08, 0x7E, 0x09, 0x01, 0x02}, // f
	{0x18, 0xA4, 0xA4, 0xA4, 0x7C}, // g
	{0x7F, 0x08, 0x04, 0x04, 0x78}, // h
	{0x00, 0x44, 0x7D, 0x40, 0x00}, // i
	{0x40, 0x80, 0x84, 0x7D, 0x00}, // j
	{0x7F, 0x10, 0x28, 0x44, 0x00}, // k
	{0x00, 0x41, 0x7F, 0x40, 0x00}, // l
	{0x7C, 0x04, 0x18, 0x04, 0x78}, // m
	{0x7C, 0x08, 0x04, 0x04, 0x78}, // n
	{0x38, 0x44, 0x44, 0x44, 0x38}, // o
	{0xFC, 0x24, 0x24, 0x24, 0x18}, // p
	{0x18, 0x24, 0x24, 0x18, 0xFC}, // q
	{0x7C, 0x08, 0x04, 0x04, 0x08}, // r
	{0x48, 0x54, 0x54, 0x54, 0x20}, // s
	{0x04, 0x3F, 0x44, 0x40, 0x20}, // t
	{0x3C, 0x40, 0x40, 0x20, 0x7C}, // u
	{0x1C, 0x20, 0x40, 0x20, 0x1C}, // v
	{0x3C, 0x40, 0x30, 0x40, 0x3C}, // w
	{0x44, 0x28, 0x10, 0x28, 0x44}, // x
	{0x1C, 0xA0, 0xA0, 0xA0, 0x7C}, // y
	{0x44, 0x64, 0x54, 0x4C, 0x44}, // z
	{0x08, 0x36, 0x41, 0x41, 0x00}, // {
	{0x00, 0x00, 0x7F, 0x00, 0x00}, // |
	{0x00, 0x41, 0x41, 0x36, 0x08}, // }
	{0x08, 0x04, 0x08, 0x10, 0x08}, // ~
}

// Glyph returns the eight column bytes of c rotated clockwise so it reads
// along the pages. Characters outside the font render as blanks.
func Glyph(c byte) [GlyphWidth]byte {
	var out [GlyphWidth]byte
	if c < 0x20 || int(c-0x20) >= len(font6x8) {
		return out
	}
	g := font6x8[c-0x20]
	// Source row 7-x becomes output column x; source column y+1 becomes bit y.
	for x := 0; x < GlyphWidth; x++ {
		var b byte
		for y, col := range g {
			if col&(1<<(7-x)) != 0 {
				b |= 1 << (y + 1)
			}
		}
		out[x] = b
	}
	return out
}

// ErrPageRange is returned for text that does not fit on the panel.
var ErrPageRange = errors.New("render: text runs past the last page")

// Text draws s at display column x, one character per page starting at page.
// Nothing is drawn unless the whole string fits within the four pages.
func Text(t Transport, x, page uint8, s string) error {
	if int(page)+len(s) > Pages {
		return ErrPageRange
	}
	w := writer{t: t}
	for i := 0; i < len(s); i++ {
		g := Glyph(s[i])
		w.begin(x, page+uint8(i))
		for _, b := range g {
			w.put(b)
		}
		w.end()
	}
	return w.err
}

// Wrap draws s like Text, but continues on page 0 of the next column group,
// GlyphWidth columns lower, once the last page is used.
func Wrap(t Transport, x, page uint8, s string) error {
	if page >= Pages && len(s) > 0 {
		return ErrPageRange
	}
	if rest := len(s) - (Pages - int(page)); rest > 0 {
		groups := (rest + Pages - 1) / Pages
		if groups*GlyphWidth > int(x) {
			return ErrPageRange
		}
	}
	for len(s) > 0 {
		n := min(len(s), Pages-int(page))
		if err := Text(t, x, page, s[:n]); err != nil {
			return err
		}
		s = s[n:]
		x -= GlyphWidth
		page = 0
	}
	return nil
}

// Uint draws v in decimal with Wrap. Five digit values spill one digit into
// the next column group.
func Uint(t Transport, x, page uint8, v uint16) error {
	return Wrap(t, x, page, strconv.FormatUint(uint64(v), 10))
}

// Clear zeroes width columns on every page.
func Clear(t Transport, pages, width uint8) error {
	w := writer{t: t}
	for p := uint8(0); p < pages; p++ {
		w.begin(0, p)
		for i := uint8(0); i < width; i++ {
			w.put(0)
		}
		w.end()
	}
	return w.err
}
