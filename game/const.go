package game

import "github.com/flavioheleno/oledtris/well"

// Frame-count timing. One frame is one Step call.
const (
	// ShiftDelay is the number of held frames before a shift auto-repeats.
	ShiftDelay = 10
	// DropDelayBase is the gravity delay at level 0.
	DropDelayBase = 20
	// DropDelayStep is the gravity delay removed per level.
	DropDelayStep = 2
	// EntryDelay is added to the gravity delay after a spawn.
	EntryDelay = 10
	// LockDelay is how long a resting piece may stay unlocked.
	LockDelay = 15
	// SoftDropDelay replaces the gravity delay while soft drop is held.
	SoftDropDelay = 1
)

// Drop scoring. Accrued drop points are folded into the score at lock time,
// divided by DropScoreDivisor.
const (
	SoftDropScore    = 1
	HardDropScore    = 2
	DropScoreDivisor = 2
)

// Leveling.
const (
	LinesPerLevel = 10
	MaxLevel      = 9
)

// Spawn position.
const (
	SpawnDepth  = well.Depth - 3
	SpawnColumn = 3
)

// lineScores maps cleared lines to base points; four or more use the last entry.
var lineScores = [...]uint16{0, 10, 30, 50, 80}

// LineScore returns the points for clearing n lines at once at level.
func LineScore(n int, level uint8) uint16 {
	if n <= 0 {
		return 0
	}
	if n >= len(lineScores) {
		n = len(lineScores) - 1
	}
	return lineScores[n] * (uint16(level) + 1)
}

// dropDelay returns the gravity delay for level.
func dropDelay(level uint8) uint8 {
	if level > MaxLevel {
		level = MaxLevel
	}
	return DropDelayBase - DropDelayStep*level
}
