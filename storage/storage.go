// Package storage persists the random seed, the high score and the
// high-score holder's name between power cycles.
package storage

const (
	// NoRecord is the high score value of a store that never recorded one.
	// It is not a beatable score.
	NoRecord = 0xFFFF
	// NameLen is the number of characters in a stored name.
	NameLen = 5
)

// Name is a fixed-size player name. Unwritten storage reads as 0xFF bytes.
type Name [NameLen]byte

// BlankName is the name of an unwritten store.
var BlankName = Name{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// String renders n with non-printable bytes shown as spaces.
func (n Name) String() string {
	var b [NameLen]byte
	for i, c := range n {
		if c < 0x20 || c > 0x7E {
			c = ' '
		}
		b[i] = c
	}
	return string(b[:])
}

// Store is the persistent storage used by a session. It is only touched at
// startup, before sleeping, and after a qualifying game over.
type Store interface {
	LoadSeed() (uint16, error)
	StoreSeed(seed uint16) error
	LoadHighScore() (uint16, error)
	StoreHighScore(score uint16) error
	LoadName() (Name, error)
	StoreName(name Name) error
}
