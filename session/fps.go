package session

import "strconv"

// fpsMeter counts rendered frames per second of clock time.
type fpsMeter struct {
	start  uint16
	frames int
	begun  bool
}

// frame counts one frame at now and returns the rate, padded to two
// characters and capped at 99, when a second has passed.
func (m *fpsMeter) frame(now uint16) (string, bool) {
	if !m.begun {
		m.start, m.begun = now, true
	}
	m.frames++
	if now-m.start < 1000 {
		return "", false
	}
	s := strconv.Itoa(min(m.frames, 99))
	m.start, m.frames = now, 0
	for len(s) < 2 {
		s += " "
	}
	return s, true
}
