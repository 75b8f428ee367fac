// Package lfsr implements the 16-bit Galois linear-feedback shift register
// that drives piece selection.
//
// Every call to Next both returns and commits the new register value. There
// is no way to peek at the next value without advancing, so the sequence of
// values depends only on the seed and on how many times Next was called.
package lfsr

// TapMask is the feedback polynomial of the register. It yields the maximal
// period of 65535 for any non-zero seed.
const TapMask = 0xB400

// LFSR holds the register state.
type LFSR struct {
	seed uint16
}

// New returns a register loaded with seed. A zero seed is replaced by 1, an
// all-zero register never leaves zero.
func New(seed uint16) *LFSR {
	l := &LFSR{}
	l.Reseed(seed)
	return l
}

// Reseed loads a new register value.
func (l *LFSR) Reseed(seed uint16) {
	if seed == 0 {
		seed = 1
	}
	l.seed = seed
}

// Seed returns the current register value, to be persisted across power
// cycles.
func (l *LFSR) Seed() uint16 {
	return l.seed
}

// Next advances the register by one step and returns the new value.
func (l *LFSR) Next() uint16 {
	l.seed = Step(l.seed)
	return l.seed
}

// Step is the pure transition function of the register.
func Step(n uint16) uint16 {
	if n&1 != 0 {
		return (n >> 1) ^ TapMask
	}
	return n >> 1
}
