package core

// RGBA stores explicit 8-bit color channels, decoupled from any
// presentation library's color type
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBABlack = RGBA{0, 0, 0, 255}
	RGBAWhite = RGBA{255, 255, 255, 255}
)

// Luma returns perceptual brightness in [0,1] (BT.601 weights)
func (c RGBA) Luma() float64 {
	return (float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114) / 255.0
}

// Scale multiplies each color channel by factor, clamped to [0,1].
// Alpha is preserved.
func (c RGBA) Scale(factor float64) RGBA {
	if factor <= 0 {
		return RGBA{0, 0, 0, c.A}
	}
	if factor >= 1 {
		return c
	}
	return RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
