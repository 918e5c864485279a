package raster

// Color is one RGBA pixel, 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Scale multiplies the RGB channels by intensity and leaves alpha
// untouched. Intensity is not clamped on input; the result saturates
// at the channel range.
func (c Color) Scale(intensity float64) Color {
	return Color{
		R: clamp255(float64(c.R) * intensity),
		G: clamp255(float64(c.G) * intensity),
		B: clamp255(float64(c.B) * intensity),
		A: c.A,
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
