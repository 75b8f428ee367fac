//go:build !doublebuffer

package session

// DoubleBuffer renders into the hidden half of the display RAM and flips
// after each frame. The display must be opened with double buffering too.
const DoubleBuffer = false
