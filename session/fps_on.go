//go:build showfps

package session

// ShowFPS draws the frame rate in place of the level label.
const ShowFPS = true
