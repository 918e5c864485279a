package raster

import (
	"fmt"
	"image"

	"softrender/internal/mathutil"
)

// Surface receives a finished frame for presentation: the raw RGBA bytes
// in the layout documented on PixelBuffer, plus the frame dimensions.
// How the bytes reach a window, file or socket is the surface's business.
type Surface interface {
	Present(pix []uint8, width, height int) error
}

// Renderer owns one pixel buffer and one depth buffer of matching size
// and rasterizes pixels, lines and triangles into them. Draw calls are
// synchronous and must not run concurrently; callers serialize a frame,
// then present it.
type Renderer struct {
	width  int
	height int
	pixels *PixelBuffer
	depth  *DepthBuffer
}

// New allocates a renderer with an opaque-black pixel buffer and a -Inf
// depth buffer of the given size.
func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	return &Renderer{
		width:  width,
		height: height,
		pixels: NewPixelBuffer(width, height),
		depth:  NewDepthBuffer(width, height),
	}, nil
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// DrawPixel writes a single pixel, truncating p to integer coordinates.
// Pixels outside the buffer are dropped.
func (r *Renderer) DrawPixel(p mathutil.Vec2, c Color) {
	x, y := int(p[0]), int(p[1])
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.pixels.Set(x, y, c)
}

// DrawLine rasterizes the segment p0–p1 with Bresenham's algorithm.
// Endpoints are truncated to integer pixels.
func (r *Renderer) DrawLine(p0, p1 mathutil.Vec2, c Color) {
	drawLine(r.pixels, int(p0[0]), int(p0[1]), int(p1[0]), int(p1[1]), c)
}

// DrawTriangle rasterizes a filled, textured, depth-tested triangle.
// v0–v2 are screen-space vertices whose z resolves visibility (greater
// wins), t0–t2 are texture coordinates in [0,1] matched per vertex, and
// intensity scales the sampled RGB. The texture is borrowed for the call
// and never written.
func (r *Renderer) DrawTriangle(
	v0, v1, v2 mathutil.Vec3,
	t0, t1, t2 mathutil.Vec2,
	intensity float64,
	tex *PixelBuffer,
) {
	drawTriangle(r.pixels, r.depth, v0, v1, v2, t0, t1, t2, intensity, tex)
}

// PixelAt reads back one frame pixel.
func (r *Renderer) PixelAt(x, y int) Color {
	return r.pixels.At(x, y)
}

// DepthAt reads back one depth value.
func (r *Renderer) DepthAt(x, y int) float64 {
	return r.depth.At(x, y)
}

// Present hands the finished frame to a presentation surface.
func (r *Renderer) Present(s Surface) error {
	return s.Present(r.pixels.Pix, r.width, r.height)
}

// Image returns a copy of the frame as an NRGBA image for pipelines that
// post-process or encode through the stdlib image machinery.
func (r *Renderer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.pixels.Pix)
	return img
}
