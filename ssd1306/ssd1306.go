// Package ssd1306 drives a SSD1306 monochrome OLED over I²C using page
// addressing and streamed transfers, without a local frame buffer.
package ssd1306

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

const (
	// DefaultAddr is the usual 7-bit address of SSD1306 modules.
	DefaultAddr = 0x3C
	// RAMPages is the number of 8-row pages in the controller RAM.
	RAMPages = 8

	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 32, must be 32 or 64)

	Addr uint16 // I²C address (default: 0x3C)

	Rotated bool // 180° rotation

	// DoubleBuffer renders into the hidden half of the 64-row RAM and flips
	// the start line on SwitchFrame. Only valid with H == 32.
	DoubleBuffer bool
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	c    conn.Conn
	rect image.Rectangle

	// Pending transfer, control byte first
	buf    []byte
	active bool

	// Double buffering
	doubleBuffer bool
	pageOffset   uint8 // added to every page address
	startLine    uint8 // currently displayed start line

	halted bool
}

// NewI2C creates a new SSD1306 device on the I²C bus, runs the controller
// initialization, clears the whole RAM and turns the panel on.
//
// opts can be nil to use defaults (128x32 at 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	o := *opts
	if o.W == 0 {
		o.W = 128
	}
	if o.H == 0 {
		o.H = 32
	}
	if o.Addr == 0 {
		o.Addr = DefaultAddr
	}
	if o.W < 0 || o.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if o.H != 32 && o.H != 64 {
		return nil, errors.New("ssd1306: height must be 32 or 64")
	}
	if o.DoubleBuffer && o.H != 32 {
		return nil, errors.New("ssd1306: double buffering needs a 32 row panel")
	}
	return newDev(&i2c.Dev{Bus: b, Addr: o.Addr}, &o)
}

func newDev(c conn.Conn, opts *Opts) (*Dev, error) {
	d := &Dev{
		c:            c,
		rect:         image.Rect(0, 0, opts.W, opts.H),
		buf:          make([]byte, 0, 1+opts.W),
		doubleBuffer: opts.DoubleBuffer,
	}
	if d.doubleBuffer {
		d.pageOffset = 4
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	comPins := byte(0x12)
	if opts.H == 32 {
		comPins = 0x02
	}
	// Segment remap and COM scan direction
	remap, scan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		remap, scan = 0xA0, 0xC0
	}
	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,       // Start line 0
		0x8D, 0x14, // Charge pump on
		0x20, 0x02, // Page addressing mode
		remap,
		scan,
		0xDA, comPins, // COM pin configuration
		0x81, 0x8F, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume from RAM
		0xA6, // Normal display mode
	}
	if err := d.sendCommands(cmds...); err != nil {
		return err
	}
	if err := d.clearPages(RAMPages); err != nil {
		return err
	}
	return d.sendCommands(0xAF)
}

// clearPages zeroes the first n RAM pages across the full width.
func (d *Dev) clearPages(n uint8) error {
	zeros := make([]byte, 1+d.rect.Dx())
	zeros[0] = ctrlData
	for p := uint8(0); p < n; p++ {
		if err := d.setCursor(0, p); err != nil {
			return err
		}
		if err := d.tx(zeros); err != nil {
			return err
		}
	}
	return nil
}

// setCursor places the RAM write pointer, page is absolute.
func (d *Dev) setCursor(column, page uint8) error {
	return d.sendCommands(0xB0|page&0x07, 0x10|column>>4, column&0x0F)
}

func (d *Dev) sendCommands(cmds ...byte) error {
	return d.tx(append([]byte{ctrlCommand}, cmds...))
}

func (d *Dev) tx(w []byte) error {
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

// command sends cmds as one command transfer.
func (d *Dev) command(cmds ...byte) error {
	if err := d.BeginCommand(); err != nil {
		return err
	}
	for _, c := range cmds {
		if err := d.SendCommand(c); err != nil {
			return err
		}
	}
	return d.EndTransfer()
}

// ready reports whether a new transfer may be opened.
func (d *Dev) ready() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if d.active {
		return errors.New("ssd1306: transfer already in progress")
	}
	return nil
}

// BeginCommand opens a command transfer. Bytes are added with SendCommand and
// sent by EndTransfer.
func (d *Dev) BeginCommand() error {
	if err := d.ready(); err != nil {
		return err
	}
	d.buf = append(d.buf[:0], ctrlCommand)
	d.active = true
	return nil
}

// SendCommand appends one byte to the open command transfer.
func (d *Dev) SendCommand(b byte) error {
	return d.WriteByte(b)
}

// BeginData places the cursor at column and page, then opens a data
// transfer. In double buffering mode page is relative to the hidden frame.
func (d *Dev) BeginData(column, page uint8) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.setCursor(column, page+d.pageOffset); err != nil {
		return err
	}
	d.buf = append(d.buf[:0], ctrlData)
	d.active = true
	return nil
}

// WriteByte appends one byte to the open transfer.
func (d *Dev) WriteByte(b byte) error {
	if !d.active {
		return errors.New("ssd1306: no transfer in progress")
	}
	d.buf = append(d.buf, b)
	return nil
}

// EndTransfer sends the open transfer.
func (d *Dev) EndTransfer() error {
	if !d.active {
		return errors.New("ssd1306: no transfer in progress")
	}
	d.active = false
	return d.tx(d.buf)
}

// Clear zeroes the visible frame, or both frames in double buffering mode.
func (d *Dev) Clear() error {
	if err := d.ready(); err != nil {
		return err
	}
	n := uint8(d.rect.Dy() / 8)
	if d.doubleBuffer {
		n = RAMPages
	}
	return d.clearPages(n)
}

// SwitchFrame shows the frame just rendered and directs further writes to
// the other one. It does nothing unless double buffering is enabled.
func (d *Dev) SwitchFrame() error {
	if err := d.ready(); err != nil {
		return err
	}
	if !d.doubleBuffer {
		return nil
	}
	next := d.startLine ^ 0x20
	if err := d.command(0x40 | next); err != nil {
		return err
	}
	d.startLine = next
	d.pageOffset ^= 4
	return nil
}

// On turns the panel on.
func (d *Dev) On() error {
	return d.command(0xAF)
}

// Off turns the panel off. RAM contents are kept.
func (d *Dev) Off() error {
	return d.command(0xAE)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	return d.command(0x81, contrast)
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	mode := byte(0xA6)
	if invert {
		mode = 0xA7
	}
	return d.command(mode)
}

// Bounds returns the visible area of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	d.active = false
	return d.sendCommands(0xAE)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
