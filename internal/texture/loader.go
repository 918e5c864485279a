package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"

	"softrender/internal/raster"
)

// Load decodes a PNG, JPEG or TGA file into a pixel buffer the sampler
// can read.
func Load(path string) (*raster.PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage copies any image into the flat RGBA layout of a PixelBuffer.
func FromImage(src image.Image) *raster.PixelBuffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := raster.NewPixelBuffer(w, h)

	if n, ok := src.(*image.NRGBA); ok {
		// Fast path: rows are already non-premultiplied RGBA. PixOffset
		// keeps sub-images with a non-zero origin honest.
		for y := 0; y < h; y++ {
			row := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.Pix[y*w*4:(y+1)*w*4], n.Pix[row:row+w*4])
		}
		return buf
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			buf.Set(x, y, raster.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return buf
}

// Checker builds a procedural two-tone checkerboard, used when no texture
// file is supplied.
func Checker(size, cell int, a, b raster.Color) *raster.PixelBuffer {
	buf := raster.NewPixelBuffer(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				buf.Set(x, y, a)
			} else {
				buf.Set(x, y, b)
			}
		}
	}
	return buf
}
