package raster

import "math"

// PixelBuffer holds an RGBA raster as a flat byte slice for cache locality.
// Layout is row-major from the top-left corner, 4 bytes per pixel in RGBA
// order, so a pixel lives at offset (y*Width + x) * 4. The slice length is
// fixed at Width*Height*4 for the life of the buffer.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewPixelBuffer allocates a buffer filled with opaque black.
func NewPixelBuffer(w, h int) *PixelBuffer {
	pix := make([]uint8, w*h*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// Set writes c at (x, y). Coordinates must be inside the buffer; the
// rasterizers guarantee this through their iteration bounds.
func (b *PixelBuffer) Set(x, y int, c Color) {
	i := (y*b.Width + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// At reads the pixel at (x, y). Same bounds precondition as Set.
func (b *PixelBuffer) At(x, y int) Color {
	i := (y*b.Width + x) * 4
	return Color{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// DepthBuffer holds one depth value per pixel, indexed like PixelBuffer.
// A greater z means closer to the viewer.
type DepthBuffer struct {
	Width  int
	Height int
	Z      []float64
}

// NewDepthBuffer allocates a depth plane with every entry at -Inf:
// nothing drawn yet, any finite depth wins.
func NewDepthBuffer(w, h int) *DepthBuffer {
	z := make([]float64, w*h)
	for i := range z {
		z[i] = math.Inf(-1)
	}
	return &DepthBuffer{Width: w, Height: h, Z: z}
}

func (b *DepthBuffer) Set(x, y int, z float64) {
	b.Z[y*b.Width+x] = z
}

func (b *DepthBuffer) At(x, y int) float64 {
	return b.Z[y*b.Width+x]
}
