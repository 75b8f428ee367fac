package input

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Pins names the GPIO input for each button. Buttons short the pin to ground
// when pressed; the internal pull-up holds it high otherwise.
type Pins struct {
	Left, Right gpio.PinIn
	Up, Down    gpio.PinIn
	A, B        gpio.PinIn
}

func (p *Pins) list() []gpio.PinIn {
	return []gpio.PinIn{p.Left, p.Right, p.Up, p.Down, p.A, p.B}
}

// GPIO reads buttons wired directly to input pins.
type GPIO struct {
	pins Pins
}

// NewGPIO configures every pin as a pulled-up input.
func NewGPIO(pins Pins) (*GPIO, error) {
	for _, p := range pins.list() {
		if p == nil {
			return nil, errors.New("input: all six button pins are required")
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("input: configure %s: %w", p, err)
		}
	}
	return &GPIO{pins: pins}, nil
}

// Poll samples all six pins.
func (g *GPIO) Poll() Buttons {
	return Buttons{
		Left:  pressed(g.pins.Left),
		Right: pressed(g.pins.Right),
		Up:    pressed(g.pins.Up),
		Down:  pressed(g.pins.Down),
		A:     pressed(g.pins.A),
		B:     pressed(g.pins.B),
	}
}

func pressed(p gpio.PinIn) bool {
	return p.Read() == gpio.Low
}
