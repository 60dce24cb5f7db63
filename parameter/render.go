package parameter

// Pixel buffer resolution, fixed 4:3
const (
	BufferWidth  = 320
	BufferHeight = 240
)
