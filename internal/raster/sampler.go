package raster

// SampleNearest fetches the texel under the continuous coordinates (x, y),
// already scaled to texel units by the caller. Coordinates are truncated
// to integer indices; there is no filtering, wrapping or clamping.
// Coordinates that land outside the texture are a caller bug and are not
// sanitized here, so upstream geometry errors stay visible.
func SampleNearest(tex *PixelBuffer, x, y float64) Color {
	return tex.At(int(x), int(y))
}
