// Package oledtris is a falling-block puzzle game for a 128x32 SSD1306 OLED
// driven over I²C, written for hardware too small to hold a frame buffer.
//
// Every frame is rebuilt page by page straight from the game state and
// streamed to the controller, so the game keeps no pixel memory at all.
//
// # Packages
//
// The game core has no I/O and no error returns:
//
//   - lfsr: 16-bit Galois LFSR used as the piece randomizer
//   - piece: the seven shapes and their four rotation bitmaps
//   - well: the 30x10 playing field, collision probes and line clearing
//   - game: the per-frame timing and control state machine, scoring and leveling
//   - render: the frame-buffer-less compositor and the clockwise 6x8 font
//
// Around it:
//
//   - session: the paced frame loop, game-over screen, name entry and sleep
//   - ssd1306: I²C driver with page addressing and streamed transfers
//   - ssd1306/image1bit: 1-bit image with the SSD1306 RAM layout
//   - input: button snapshots and GPIO buttons
//   - clock: millisecond counter, frame pacing and the low-power wait
//   - storage: seed and high score on an I²C EEPROM or in a JSON file
//   - sim: terminal emulation of the panel and buttons
//
// # Hardware Connection
//
//	Part       System Pin
//	GND        GND
//	VCC        3.3V
//	SDA        I²C SDA (SSD1306 at 0x3C, EEPROM at 0x50)
//	SCL        I²C SCL
//	Buttons    Six GPIO inputs, each shorted to GND when pressed
//
// # Playing
//
// The panel is mounted on its side: the well runs along the long edge and
// the text reads after turning the panel a quarter counterclockwise.
//
//	Left/Right  move
//	Up          rotate
//	Down        soft drop
//	A           hold
//	B           hard drop
//
// After a game over the player enters a name if the score beats the stored
// record. The device then sleeps until any button is pressed and turns the
// panel off after a while.
//
// # Build Tags
//
//	showfps       draw the frame rate in place of the level label
//	doublebuffer  render into the hidden half of the controller RAM and flip
//
// # Running
//
// On a board supported by periph.io:
//
//	go run ./cmd/oledtris -i2c 1
//
// In a terminal:
//
//	go run ./cmd/oledtris-sim
package oledtris
