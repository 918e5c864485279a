package postprocess

import (
	"image"
	"testing"
)

func TestDownsampleSolidColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 120
		src.Pix[i+1] = 80
		src.Pix[i+2] = 40
		src.Pix[i+3] = 255
	}

	dst := Downsample(src, 32)

	if dst.Bounds().Dx() != 32 || dst.Bounds().Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", dst.Bounds())
	}

	// A constant image must stay constant through the premultiply,
	// scale and unpremultiply round trip (±1 for rounding).
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			i := dst.PixOffset(x, y)
			if absDiff(dst.Pix[i], 120) > 1 || absDiff(dst.Pix[i+1], 80) > 1 ||
				absDiff(dst.Pix[i+2], 40) > 1 || dst.Pix[i+3] != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want ~{120 80 40 255}", x, y, dst.Pix[i:i+4])
			}
		}
	}
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	if got := Downsample(src, 32); got != src {
		t.Error("image already at or below target size should pass through")
	}
}

func absDiff(a uint8, b int) int {
	d := int(a) - b
	if d < 0 {
		return -d
	}
	return d
}
