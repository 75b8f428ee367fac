package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func newTestEEPROM(t *testing.T, ops ...i2ctest.IO) (*EEPROM, *i2ctest.Playback, *[]time.Duration) {
	t.Helper()
	bus := &i2ctest.Playback{Ops: ops}
	e, err := NewEEPROM(bus, nil)
	require.NoError(t, err)
	var waits []time.Duration
	e.sleep = func(d time.Duration) { waits = append(waits, d) }
	return e, bus, &waits
}

func TestEEPROMOpts(t *testing.T) {
	tests := []struct {
		name    string
		opts    *EEPROMOpts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"alternate address", &EEPROMOpts{Addr: 0x57}, false},
		{"10-bit address", &EEPROMOpts{Addr: 0x150}, true},
		{"negative write cycle", &EEPROMOpts{WriteCycle: -time.Millisecond}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEEPROM(&i2ctest.Record{}, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEEPROMLoad(t *testing.T) {
	e, bus, _ := newTestEEPROM(t,
		i2ctest.IO{Addr: 0x50, W: []byte{0x00}, R: []byte{0x34, 0x12}},
		i2ctest.IO{Addr: 0x50, W: []byte{0x02}, R: []byte{0xE8, 0x03}},
		i2ctest.IO{Addr: 0x50, W: []byte{0x08}, R: []byte("ALICE")},
	)

	seed, err := e.LoadSeed()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), seed)

	score, err := e.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, uint16(1000), score)

	name, err := e.LoadName()
	require.NoError(t, err)
	assert.Equal(t, "ALICE", name.String())

	require.NoError(t, bus.Close())
}

func TestEEPROMBlank(t *testing.T) {
	blank := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	e, bus, _ := newTestEEPROM(t,
		i2ctest.IO{Addr: 0x50, W: []byte{0x02}, R: blank[:2]},
		i2ctest.IO{Addr: 0x50, W: []byte{0x08}, R: blank},
	)

	score, err := e.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, uint16(NoRecord), score)

	name, err := e.LoadName()
	require.NoError(t, err)
	assert.Equal(t, BlankName, name)
	assert.Equal(t, "     ", name.String())

	require.NoError(t, bus.Close())
}

func TestEEPROMStore(t *testing.T) {
	e, bus, waits := newTestEEPROM(t,
		i2ctest.IO{Addr: 0x50, W: []byte{0x00, 0xCD, 0xAB}},
		i2ctest.IO{Addr: 0x50, W: []byte{0x02, 0x2C, 0x01}},
		i2ctest.IO{Addr: 0x50, W: []byte{0x08, 'B', 'O', 'B', ' ', ' '}},
	)

	require.NoError(t, e.StoreSeed(0xABCD))
	require.NoError(t, e.StoreHighScore(300))
	require.NoError(t, e.StoreName(Name{'B', 'O', 'B', ' ', ' '}))
	require.NoError(t, bus.Close())

	// Each write waits out the internal write cycle
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond}, *waits)
}

func TestNameString(t *testing.T) {
	tests := []struct {
		name Name
		want string
	}{
		{Name{'A', 'B', 'C', 'D', 'E'}, "ABCDE"},
		{Name{'A', ' ', 'Z', 0x00, 0xFF}, "A Z  "},
		{BlankName, "     "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.name.String())
	}
}
