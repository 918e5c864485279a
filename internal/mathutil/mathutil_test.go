package mathutil

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3) bool {
	return math.Abs(a[0]-b[0]) < 1e-9 &&
		math.Abs(a[1]-b[1]) < 1e-9 &&
		math.Abs(a[2]-b[2]) < 1e-9
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); !vecNear(got, Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); !vecNear(got, Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); !vecNear(got, Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v, want +z", got)
	}
	if got := (Vec3{3, 0, 4}).Normalize(); !vecNear(got, Vec3{0.6, 0, 0.8}) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Vec3{}).Normalize(); !vecNear(got, Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestRotY(t *testing.T) {
	// A quarter turn around Y carries +x to -z.
	got := RotY(math.Pi / 2).MulVec3(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{0, 0, -1}) {
		t.Errorf("RotY(π/2)·x = %v, want (0,0,-1)", got)
	}
}

func TestMat3Mul(t *testing.T) {
	// Two quarter turns compose into a half turn.
	half := Mat3Mul(RotY(math.Pi/2), RotY(math.Pi/2))
	got := half.MulVec3(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{-1, 0, 0}) {
		t.Errorf("half turn of +x = %v, want (-1,0,0)", got)
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Deg2Rad(180) = %v, want π", got)
	}
}
