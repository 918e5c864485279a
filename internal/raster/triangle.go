package raster

import "softrender/internal/mathutil"

// drawTriangle rasterizes a filled, textured, depth-tested triangle.
//
// This is the HOT PATH — zero allocation in the inner loop. The bounding
// box is the truncated extrema of the vertices and is deliberately not
// clipped; pixels outside the buffer are skipped one at a time instead.
// Texture coordinates are blended linearly in screen space (not
// perspective-correct) and the v axis is flipped here, before sampling,
// because texture row 0 is the top of the image while v=0 is the bottom
// of the mapped surface.
func drawTriangle(
	pb *PixelBuffer, db *DepthBuffer,
	v0, v1, v2 mathutil.Vec3,
	t0, t1, t2 mathutil.Vec2,
	intensity float64,
	tex *PixelBuffer,
) {
	a := mathutil.Vec2{v0[0], v0[1]}
	b := mathutil.Vec2{v1[0], v1[1]}
	c := mathutil.Vec2{v2[0], v2[1]}

	minX := int(min3(v0[0], v1[0], v2[0]))
	maxX := int(max3(v0[0], v1[0], v2[0]))
	minY := int(min3(v0[1], v1[1], v2[1]))
	maxY := int(max3(v0[1], v1[1], v2[1]))

	tw := float64(tex.Width)
	th := float64(tex.Height)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= pb.Width || y < 0 || y >= pb.Height {
				continue
			}
			bc := Barycentric(a, b, c, mathutil.Vec2{float64(x), float64(y)})
			if bc[0] < 0 || bc[1] < 0 || bc[2] < 0 {
				continue
			}

			// Greater z wins; ties keep the earlier fragment.
			z := bc[0]*v0[2] + bc[1]*v1[2] + bc[2]*v2[2]
			if z <= db.At(x, y) {
				continue
			}

			u := bc[0]*t0[0] + bc[1]*t1[0] + bc[2]*t2[0]
			v := bc[0]*t0[1] + bc[1]*t1[1] + bc[2]*t2[1]
			texel := SampleNearest(tex, u*tw, (1-v)*th)

			pb.Set(x, y, texel.Scale(intensity))
			db.Set(x, y, z)
		}
	}
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
