package scene

import "softrender/internal/mathutil"

// Light is a single directional light producing the flat per-face
// intensity the rasterizer consumes.
type Light struct {
	Dir     mathutil.Vec3 // unit vector from surface toward the light
	Ambient float64
	Direct  float64
}

// DefaultLight lights the scene from the viewer's upper right.
func DefaultLight() Light {
	return Light{
		Dir:     mathutil.Vec3{0.4, 0.5, 1}.Normalize(),
		Ambient: 0.15,
		Direct:  0.85,
	}
}

// Shade returns the flat-shading intensity for a face normal. With the
// default terms the result stays in [0, 1]; faces turned away from the
// light keep only the ambient term.
func (l Light) Shade(normal mathutil.Vec3) float64 {
	ndl := normal.Dot(l.Dir)
	if ndl < 0 {
		ndl = 0
	}
	return l.Ambient + ndl*l.Direct
}
