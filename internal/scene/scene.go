// Package scene builds the demo geometry and feeds it, already projected
// to screen space and lit, to the rasterizer. The renderer core never
// sees model space, cameras or lights.
package scene

import (
	"softrender/internal/mathutil"
	"softrender/internal/raster"
)

// Texture coordinates are inset from 0 and 1 so the sampler's no-clamp
// contract holds at face edges.
const (
	uvLo = 1e-4
	uvHi = 1 - 1e-4
)

// tilt is the fixed viewing pitch applied before the turntable rotation.
const tilt = -0.4

// Vertex pairs a model-space position with its texture coordinates.
type Vertex struct {
	Pos mathutil.Vec3
	UV  mathutil.Vec2
}

// Mesh is a triangle soup; each Tris entry indexes Verts.
type Mesh struct {
	Verts []Vertex
	Tris  [][3]int
}

// Cube returns a cube of side 2 around the origin, each face mapped to
// the whole texture, corners wound counter-clockwise seen from outside.
func Cube() *Mesh {
	m := &Mesh{}
	quads := [6][4]mathutil.Vec3{
		{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // +z
		{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // -z
		{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // +x
		{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // -x
		{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // +y
		{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // -y
	}
	uvs := [4]mathutil.Vec2{{uvLo, uvLo}, {uvHi, uvLo}, {uvHi, uvHi}, {uvLo, uvHi}}

	for _, q := range quads {
		base := len(m.Verts)
		for i, p := range q {
			m.Verts = append(m.Verts, Vertex{Pos: p, UV: uvs[i]})
		}
		m.Tris = append(m.Tris,
			[3]int{base, base + 1, base + 2},
			[3]int{base, base + 2, base + 3},
		)
	}
	return m
}

// Project maps already-rotated model-space vertices to screen space:
// centered, scaled to fit the buffer with a margin, y flipped for the
// top-left origin. Depth keeps the view-space z under the same scale, so
// a greater z stays closer to the viewer.
func Project(world []mathutil.Vec3, width, height int) []mathutil.Vec3 {
	minX, maxX := world[0][0], world[0][0]
	minY, maxY := world[0][1], world[0][1]
	for _, v := range world[1:] {
		if v[0] < minX {
			minX = v[0]
		}
		if v[0] > maxX {
			maxX = v[0]
		}
		if v[1] < minY {
			minY = v[1]
		}
		if v[1] > maxY {
			maxY = v[1]
		}
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	span := maxX - minX
	if maxY-minY > span {
		span = maxY - minY
	}
	if span < 0.001 {
		span = 0.001
	}

	size := width
	if height < size {
		size = height
	}
	margin := float64(size) / 8
	scale := (float64(size) - 2*margin) / span

	screen := make([]mathutil.Vec3, len(world))
	for i, v := range world {
		screen[i] = mathutil.Vec3{
			(v[0]-cx)*scale + float64(width)/2,
			float64(height)/2 - (v[1]-cy)*scale,
			v[2] * scale,
		}
	}
	return screen
}

// Draw rotates the mesh by angle around Y under the fixed viewing tilt,
// projects it, and rasterizes lit, textured triangles. Faces pointing
// away from the viewer are culled before shading.
func Draw(r *raster.Renderer, m *Mesh, tex *raster.PixelBuffer, angle float64) {
	light := DefaultLight()
	world, screen := transform(m, angle, r.Width(), r.Height())

	for _, tri := range m.Tris {
		w0, w1, w2 := world[tri[0]], world[tri[1]], world[tri[2]]
		n := w1.Sub(w0).Cross(w2.Sub(w0)).Normalize()
		if n[2] <= 0 {
			continue
		}
		r.DrawTriangle(
			screen[tri[0]], screen[tri[1]], screen[tri[2]],
			m.Verts[tri[0]].UV, m.Verts[tri[1]].UV, m.Verts[tri[2]].UV,
			light.Shade(n), tex,
		)
	}
}

// Wireframe draws the projected mesh edges with the line rasterizer.
func Wireframe(r *raster.Renderer, m *Mesh, angle float64, c raster.Color) {
	_, screen := transform(m, angle, r.Width(), r.Height())
	for _, tri := range m.Tris {
		p0 := mathutil.Vec2{screen[tri[0]][0], screen[tri[0]][1]}
		p1 := mathutil.Vec2{screen[tri[1]][0], screen[tri[1]][1]}
		p2 := mathutil.Vec2{screen[tri[2]][0], screen[tri[2]][1]}
		r.DrawLine(p0, p1, c)
		r.DrawLine(p1, p2, c)
		r.DrawLine(p2, p0, c)
	}
}

func transform(m *Mesh, angle float64, width, height int) (world, screen []mathutil.Vec3) {
	rot := mathutil.Mat3Mul(mathutil.RotX(tilt), mathutil.RotY(angle))
	world = make([]mathutil.Vec3, len(m.Verts))
	for i, v := range m.Verts {
		world[i] = rot.MulVec3(v.Pos)
	}
	return world, Project(world, width, height)
}
