package basics

import "testing"

func TestPointD(t *testing.T) {
	p := PointD{X: 3.14, Y: 2.71}
	if p.X != 3.14 || p.Y != 2.71 {
		t.Errorf("PointD failed: expected (3.14,2.71), got (%f,%f)", p.X, p.Y)
	}
}

func TestIsEqualEps(t *testing.T) {
	if !IsEqualEps(1.0, 1.0000001, 1e-6) {
		t.Error("values within epsilon should compare equal")
	}
	if IsEqualEps(1.0, 1.1, 1e-6) {
		t.Error("values outside epsilon should not compare equal")
	}
	if IsEqualEps(2.0, 1.0, 1e-6) != IsEqualEps(1.0, 2.0, 1e-6) {
		t.Error("IsEqualEps should be symmetric in its first two arguments")
	}
}
