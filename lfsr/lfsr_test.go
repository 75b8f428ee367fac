package lfsr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	tests := []struct {
		in, want uint16
	}{
		{0x0001, 0xB400},
		{0x0002, 0x0001},
		{0xB400, 0x5A00},
		{0xFFFF, 0x7FFF ^ TapMask},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Step(tt.in), "Step(0x%04X)", tt.in)
	}
}

func TestNextCommits(t *testing.T) {
	l := New(1)
	v := l.Next()
	assert.Equal(t, uint16(0xB400), v)
	assert.Equal(t, v, l.Seed())
	assert.Equal(t, uint16(0x5A00), l.Next())
}

func TestZeroSeed(t *testing.T) {
	l := New(0)
	assert.Equal(t, uint16(1), l.Seed())
	l.Reseed(0)
	assert.Equal(t, uint16(1), l.Seed())
}

func TestReseedReproduces(t *testing.T) {
	a := New(0xACE1)
	first := make([]uint16, 32)
	for i := range first {
		first[i] = a.Next()
	}
	a.Reseed(0xACE1)
	for i := range first {
		require.Equal(t, first[i], a.Next(), "value %d", i)
	}
}

func TestPeriod(t *testing.T) {
	l := New(1)
	n := 0
	for {
		n++
		if l.Next() == 1 {
			break
		}
		require.Less(t, n, 1<<16, "register did not return to its seed")
	}
	assert.Equal(t, 65535, n)
}
