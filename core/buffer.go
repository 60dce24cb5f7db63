package core

import "github.com/amitu/bhumi/parameter"

// PixelBuffer is a fixed 320×240 RGBA frame store. One writer per
// frame (the rasterizer), any number of readers after the writer is
// done; the frame loop enforces that ordering.
//
// Out-of-bounds policy: Set and Get are total. Set outside the buffer
// is a no-op returning false, Get returns the zero color and false.
// They never touch adjacent memory and never panic.
type PixelBuffer struct {
	width  int
	height int
	pixels []RGBA
}

// NewPixelBuffer creates a buffer at the standard resolution, cleared
// to opaque black.
func NewPixelBuffer() *PixelBuffer {
	b := &PixelBuffer{
		width:  parameter.BufferWidth,
		height: parameter.BufferHeight,
		pixels: make([]RGBA, parameter.BufferWidth*parameter.BufferHeight),
	}
	b.Clear(RGBA{0, 0, 0, 255})
	return b
}

// Width returns the buffer width in pixels
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels
func (b *PixelBuffer) Height() int {
	return b.height
}

// Clear fills every pixel with the given color
func (b *PixelBuffer) Clear(c RGBA) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
}

// Set writes the pixel at (x, y) and reports whether it was in bounds
func (b *PixelBuffer) Set(x, y int, c RGBA) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.pixels[y*b.width+x] = c
	return true
}

// Get returns the pixel at (x, y) and whether it was in bounds
func (b *PixelBuffer) Get(x, y int) (RGBA, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGBA{}, false
	}
	return b.pixels[y*b.width+x], true
}

// DrawLine draws a line between two pixel coordinates using
// Bresenham's algorithm. Out-of-bounds segments are dropped pixel by
// pixel through Set's bounds check.
func (b *PixelBuffer) DrawLine(x0, y0, x1, y1 int, c RGBA) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
