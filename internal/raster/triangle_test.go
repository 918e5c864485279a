package raster

import (
	"math"
	"testing"

	"softrender/internal/mathutil"
)

// solidTex builds a small uniform texture.
func solidTex(c Color) *PixelBuffer {
	tex := NewPixelBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tex.Set(x, y, c)
		}
	}
	return tex
}

var (
	white = Color{255, 255, 255, 255}
	red   = Color{255, 0, 0, 255}
	blue  = Color{0, 0, 255, 255}
	black = Color{0, 0, 0, 255}

	// Mid-texture coordinates keep the (1-v) flip well inside the texel grid.
	uvMid = mathutil.Vec2{0.5, 0.5}
)

func TestDrawTriangleCoverage(t *testing.T) {
	r := mustNew(t, 16, 16)
	v0 := mathutil.Vec3{1, 1, 0}
	v1 := mathutil.Vec3{12, 1, 0}
	v2 := mathutil.Vec3{1, 12, 0}

	r.DrawTriangle(v0, v1, v2, uvMid, uvMid, uvMid, 1.0, solidTex(white))

	// Compare against the analytic inside-test, skipping a thin band
	// around the edges where coverage is a matter of convention.
	a := mathutil.Vec2{v0[0], v0[1]}
	b := mathutil.Vec2{v1[0], v1[1]}
	c := mathutil.Vec2{v2[0], v2[1]}
	const band = 0.01

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			bc := Barycentric(a, b, c, mathutil.Vec2{float64(x), float64(y)})
			got := r.PixelAt(x, y)
			switch {
			case bc[0] > band && bc[1] > band && bc[2] > band:
				if got != white {
					t.Errorf("inside pixel (%d,%d) = %v, want white", x, y, got)
				}
			case bc[0] < -band || bc[1] < -band || bc[2] < -band:
				if got != black {
					t.Errorf("outside pixel (%d,%d) = %v, want untouched", x, y, got)
				}
			}
		}
	}
}

func TestDrawTriangleDepthMonotonic(t *testing.T) {
	r := mustNew(t, 16, 16)
	v0 := mathutil.Vec2{1, 1}
	v1 := mathutil.Vec2{12, 1}
	v2 := mathutil.Vec2{1, 12}

	at := func(z float64, p mathutil.Vec2) mathutil.Vec3 { return mathutil.Vec3{p[0], p[1], z} }

	r.DrawTriangle(at(0, v0), at(0, v1), at(0, v2), uvMid, uvMid, uvMid, 1.0, solidTex(red))
	r.DrawTriangle(at(1, v0), at(1, v1), at(1, v2), uvMid, uvMid, uvMid, 1.0, solidTex(blue))

	// The nearer (greater z) triangle must win at every covered pixel.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := r.PixelAt(x, y); got == red {
				t.Fatalf("pixel (%d,%d) kept the farther triangle", x, y)
			}
		}
	}
	if r.PixelAt(4, 4) != blue {
		t.Errorf("pixel (4,4) = %v, want blue", r.PixelAt(4, 4))
	}
	if got := r.DepthAt(4, 4); got != 1 {
		t.Errorf("depth (4,4) = %v, want 1", got)
	}
}

func TestDrawTriangleDepthTieKeepsFirst(t *testing.T) {
	r := mustNew(t, 16, 16)
	v0 := mathutil.Vec3{1, 1, 0.5}
	v1 := mathutil.Vec3{12, 1, 0.5}
	v2 := mathutil.Vec3{1, 12, 0.5}

	r.DrawTriangle(v0, v1, v2, uvMid, uvMid, uvMid, 1.0, solidTex(red))
	r.DrawTriangle(v0, v1, v2, uvMid, uvMid, uvMid, 1.0, solidTex(blue))

	// z <= existing skips: identical depth must not overwrite.
	if got := r.PixelAt(4, 4); got != red {
		t.Errorf("pixel (4,4) = %v, want first triangle's red", got)
	}
}

func TestDrawTriangleDegenerate(t *testing.T) {
	r := mustNew(t, 16, 16)
	v0 := mathutil.Vec3{0, 0, 5}
	v1 := mathutil.Vec3{2, 2, 5}
	v2 := mathutil.Vec3{4, 4, 5}

	r.DrawTriangle(v0, v1, v2, uvMid, uvMid, uvMid, 1.0, solidTex(white))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := r.PixelAt(x, y); got != black {
				t.Fatalf("degenerate triangle wrote pixel (%d,%d) = %v", x, y, got)
			}
			if z := r.DepthAt(x, y); !math.IsInf(z, -1) {
				t.Fatalf("degenerate triangle wrote depth (%d,%d) = %v", x, y, z)
			}
		}
	}
}

func TestDrawTrianglePartiallyOffscreen(t *testing.T) {
	r := mustNew(t, 8, 8)

	// Bounding box extends past every buffer edge; out-of-range pixels
	// are skipped one by one, the rest land.
	v0 := mathutil.Vec3{-5, -5, 0}
	v1 := mathutil.Vec3{12, -2, 0}
	v2 := mathutil.Vec3{-2, 12, 0}

	r.DrawTriangle(v0, v1, v2, uvMid, uvMid, uvMid, 1.0, solidTex(white))

	covered := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if r.PixelAt(x, y) == white {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Error("offscreen-spanning triangle drew nothing inside the buffer")
	}
}

func TestDrawTriangleVerticalFlip(t *testing.T) {
	// Two-row texture: row 0 red (top of the image), row 1 blue.
	tex := NewPixelBuffer(2, 2)
	tex.Set(0, 0, red)
	tex.Set(1, 0, red)
	tex.Set(0, 1, blue)
	tex.Set(1, 1, blue)

	tests := []struct {
		name string
		v    float64
		want Color
	}{
		{"high v samples top row", 0.75, red},
		{"low v samples bottom row", 0.25, blue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustNew(t, 16, 16)
			uv := mathutil.Vec2{0.5, tc.v}
			r.DrawTriangle(
				mathutil.Vec3{1, 1, 0}, mathutil.Vec3{12, 1, 0}, mathutil.Vec3{1, 12, 0},
				uv, uv, uv, 1.0, tex,
			)
			if got := r.PixelAt(4, 4); got != tc.want {
				t.Errorf("pixel (4,4) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDrawTriangleIntensity(t *testing.T) {
	r := mustNew(t, 16, 16)
	tex := solidTex(Color{R: 200, G: 100, B: 50, A: 200})

	r.DrawTriangle(
		mathutil.Vec3{1, 1, 0}, mathutil.Vec3{12, 1, 0}, mathutil.Vec3{1, 12, 0},
		uvMid, uvMid, uvMid, 0.5, tex,
	)

	want := Color{R: 100, G: 50, B: 25, A: 200}
	if got := r.PixelAt(4, 4); got != want {
		t.Errorf("pixel (4,4) = %v, want %v (RGB scaled, alpha untouched)", got, want)
	}
}

func BenchmarkDrawTriangle(b *testing.B) {
	r, err := New(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	tex := solidTex(white)
	t0 := mathutil.Vec2{0.1, 0.1}
	t1 := mathutil.Vec2{0.9, 0.1}
	t2 := mathutil.Vec2{0.1, 0.9}

	z := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Climbing z keeps the depth test passing every iteration.
		z++
		r.DrawTriangle(
			mathutil.Vec3{10, 10, z}, mathutil.Vec3{240, 30, z}, mathutil.Vec3{60, 240, z},
			t0, t1, t2, 1.0, tex,
		)
	}
}
