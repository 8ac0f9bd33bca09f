package raster

import "testing"

func TestCross3(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := Cross3(x, y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Cross3(x,y) = %+v, want %+v", got, want)
	}
}

func TestNormalize3ZeroVector(t *testing.T) {
	got := Normalize3(Vec3{})
	if got != (Vec3{}) {
		t.Errorf("Normalize3(zero) = %+v, want zero vector unchanged", got)
	}
}

func TestNormalize3UnitLength(t *testing.T) {
	got := Normalize3(Vec3{3, 4, 0})
	want := Vec3{0.6, 0.8, 0}
	if !approxVec3(got, want, 1e-5) {
		t.Errorf("Normalize3({3,4,0}) = %+v, want %+v", got, want)
	}
}

func approxVec3(a, b Vec3, eps float32) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func approx(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
