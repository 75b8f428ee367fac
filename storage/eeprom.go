package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
)

// EEPROM cell offsets.
const (
	seedOffset      = 0x00
	highScoreOffset = 0x02
	nameOffset      = 0x08
)

// EEPROMOpts is the configuration for a 24Cxx style I²C EEPROM.
type EEPROMOpts struct {
	Addr       uint16        // I²C address (default: 0x50)
	WriteCycle time.Duration // Internal write time after each write (default: 5ms)
}

// EEPROM is a Store on a small I²C EEPROM with single-byte addressing.
type EEPROM struct {
	d     *i2c.Dev
	cycle time.Duration
	sleep func(time.Duration)
}

// NewEEPROM returns an EEPROM store on bus b.
//
// opts can be nil to use defaults.
func NewEEPROM(b i2c.Bus, opts *EEPROMOpts) (*EEPROM, error) {
	o := EEPROMOpts{Addr: 0x50, WriteCycle: 5 * time.Millisecond}
	if opts != nil {
		if opts.Addr != 0 {
			o.Addr = opts.Addr
		}
		if opts.WriteCycle != 0 {
			o.WriteCycle = opts.WriteCycle
		}
	}
	if o.Addr > 0x7F {
		return nil, errors.New("storage: EEPROM address must be 7 bits")
	}
	if o.WriteCycle < 0 {
		return nil, errors.New("storage: negative write cycle")
	}
	return &EEPROM{
		d:     &i2c.Dev{Bus: b, Addr: o.Addr},
		cycle: o.WriteCycle,
		sleep: time.Sleep,
	}, nil
}

func (e *EEPROM) read(off byte, n int) ([]byte, error) {
	r := make([]byte, n)
	if err := e.d.Tx([]byte{off}, r); err != nil {
		return nil, fmt.Errorf("storage: read 0x%02X: %w", off, err)
	}
	return r, nil
}

func (e *EEPROM) write(off byte, data []byte) error {
	if err := e.d.Tx(append([]byte{off}, data...), nil); err != nil {
		return fmt.Errorf("storage: write 0x%02X: %w", off, err)
	}
	e.sleep(e.cycle)
	return nil
}

func (e *EEPROM) readUint16(off byte) (uint16, error) {
	b, err := e.read(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (e *EEPROM) writeUint16(off byte, v uint16) error {
	return e.write(off, binary.LittleEndian.AppendUint16(nil, v))
}

// LoadSeed reads the stored random seed.
func (e *EEPROM) LoadSeed() (uint16, error) { return e.readUint16(seedOffset) }

// StoreSeed writes the random seed.
func (e *EEPROM) StoreSeed(seed uint16) error { return e.writeUint16(seedOffset, seed) }

// LoadHighScore reads the high score, NoRecord on a blank device.
func (e *EEPROM) LoadHighScore() (uint16, error) { return e.readUint16(highScoreOffset) }

// StoreHighScore writes the high score.
func (e *EEPROM) StoreHighScore(score uint16) error {
	return e.writeUint16(highScoreOffset, score)
}

// LoadName reads the high-score holder's name.
func (e *EEPROM) LoadName() (Name, error) {
	var n Name
	b, err := e.read(nameOffset, NameLen)
	if err != nil {
		return n, err
	}
	copy(n[:], b)
	return n, nil
}

// StoreName writes the high-score holder's name.
func (e *EEPROM) StoreName(name Name) error {
	return e.write(nameOffset, name[:])
}

func (e *EEPROM) String() string {
	return fmt.Sprintf("storage.EEPROM{%s}", e.d)
}
