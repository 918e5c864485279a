package raster

import (
	"math"

	"softrender/internal/mathutil"
)

// degenerateEps treats a doubled signed area below this magnitude as zero.
const degenerateEps = 1e-8

// Barycentric returns the weights (u, v, w) of p relative to the triangle
// (a, b, c), with u+v+w = 1 and p = u·a + v·b + w·c. A negative component
// means p lies outside the triangle. Collinear vertices yield the sentinel
// (-1, 1, 1) so every point downstream tests as outside and a degenerate
// triangle renders nothing.
func Barycentric(a, b, c, p mathutil.Vec2) mathutil.Vec3 {
	u := mathutil.Vec3{c[0] - a[0], b[0] - a[0], a[0] - p[0]}.
		Cross(mathutil.Vec3{c[1] - a[1], b[1] - a[1], a[1] - p[1]})
	if math.Abs(u[2]) < degenerateEps {
		return mathutil.Vec3{-1, 1, 1}
	}
	return mathutil.Vec3{1 - (u[0]+u[1])/u[2], u[1] / u[2], u[0] / u[2]}
}
