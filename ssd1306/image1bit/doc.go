// Package image1bit provides a 1-bit image format laid out like SSD1306 RAM.
//
// The SSD1306 stores pixels in pages of 8 rows. Each byte holds one column of
// a page, least significant bit at the top.
//
// Memory layout example for a 3-column, 8-row image:
//
//	Column: 0     1     2
//	Byte:   0x01  0x80  0xFF
//	        (0x01 = only row 0 lit)
//	        (0x80 = only row 7 lit)
//	        (0xFF = whole column lit)
//
// This package provides:
//
// - Bit: A color type that is either on or off
// - BitModel: A color model converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation with the SSD1306 RAM layout
//
// Example usage:
//
//	// Create a 128x32 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Write a whole page byte the way the controller would
//	img.SetPage(10, 2, 0xFF)
package image1bit
