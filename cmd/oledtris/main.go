// Command oledtris runs the game on a 128x32 SSD1306 panel with six buttons
// and an I²C EEPROM for the high score.
//
// Hardware Setup:
//
//	Part       Raspberry Pi
//	SSD1306    I2C1 SDA/SCL, address 0x3C
//	24C02      I2C1 SDA/SCL, address 0x50
//	Buttons    GPIO pins to GND (internal pull-ups are enabled)
//
// Build with -tags showfps to show the frame rate, or -tags doublebuffer to
// render into the hidden half of the display RAM.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/oledtris/clock"
	"github.com/flavioheleno/oledtris/input"
	"github.com/flavioheleno/oledtris/session"
	"github.com/flavioheleno/oledtris/ssd1306"
	"github.com/flavioheleno/oledtris/storage"
)

var (
	i2cBus     = flag.String("i2c", "", "I²C bus name (empty for default)")
	i2cHz      = flag.Int("hz", 400000, "I²C frequency in Hz")
	oledAddr   = flag.Uint("oled", ssd1306.DefaultAddr, "SSD1306 address")
	eepromAddr = flag.Uint("eeprom", 0x50, "EEPROM address")
	rotated    = flag.Bool("rotated", false, "Rotate the display 180°")
	contrast   = flag.Uint("contrast", 0x8F, "Display contrast (0-255)")
	leftPin    = flag.String("left", "GPIO5", "Left button pin")
	rightPin   = flag.String("right", "GPIO6", "Right button pin")
	upPin      = flag.String("up", "GPIO13", "Up (rotate) button pin")
	downPin    = flag.String("down", "GPIO19", "Down (soft drop) button pin")
	aPin       = flag.String("a", "GPIO20", "A (hold) button pin")
	bPin       = flag.String("b", "GPIO21", "B (hard drop) button pin")
	verbose    = flag.Bool("v", false, "Log debug messages")
)

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %s not found", name)
	}
	return p, nil
}

func buttons() (*input.GPIO, error) {
	var pins input.Pins
	for _, b := range []struct {
		dst  *gpio.PinIn
		name string
	}{
		{&pins.Left, *leftPin},
		{&pins.Right, *rightPin},
		{&pins.Up, *upPin},
		{&pins.Down, *downPin},
		{&pins.A, *aPin},
		{&pins.B, *bPin},
	} {
		p, err := pin(b.name)
		if err != nil {
			return nil, err
		}
		*b.dst = p
	}
	return input.NewGPIO(pins)
}

func run(logger *slog.Logger) error {
	// Initialize periph.io
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initialize periph.io: %w", err)
	}

	// Open I²C bus
	b, err := i2creg.Open(*i2cBus)
	if err != nil {
		return fmt.Errorf("open I²C bus: %w", err)
	}
	defer b.Close()
	if err := b.SetSpeed(physic.Frequency(*i2cHz) * physic.Hertz); err != nil {
		logger.Warn("cannot set bus speed", "err", err)
	}

	dev, err := ssd1306.NewI2C(b, &ssd1306.Opts{
		Addr:         uint16(*oledAddr),
		Rotated:      *rotated,
		DoubleBuffer: session.DoubleBuffer,
	})
	if err != nil {
		return fmt.Errorf("initialize display: %w", err)
	}
	defer func() {
		if err := dev.Halt(); err != nil {
			logger.Warn("halt display", "err", err)
		}
	}()
	if err := dev.SetContrast(byte(*contrast)); err != nil {
		return fmt.Errorf("set contrast: %w", err)
	}
	logger.Info("display ready", "dev", dev.String())

	in, err := buttons()
	if err != nil {
		return fmt.Errorf("set up buttons: %w", err)
	}

	store, err := storage.NewEEPROM(b, &storage.EEPROMOpts{Addr: uint16(*eepromAddr)})
	if err != nil {
		return fmt.Errorf("set up EEPROM: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The clock outlives ctx so a frame in progress can finish pacing.
	var ms clock.Counter
	stopClock := clock.Start(context.Background(), &ms)
	defer stopClock()

	s := session.New(dev, in, &ms, store, clock.Waker{}, &session.Opts{Logger: logger})
	return s.Run(ctx)
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("oledtris stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("bye")
}
