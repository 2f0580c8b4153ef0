package physics

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %g, want 5", got)
	}
	if got := a.Len2(); got != 25 {
		t.Errorf("Len2() = %g, want 25", got)
	}
	if got := a.Add(Vec2{X: 1, Y: -1}); got != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(Vec2{X: 3, Y: 4}); got != (Vec2{}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Normalize(); math.Abs(got.Len()-1) > 1e-15 {
		t.Errorf("Normalize().Len() = %g", got.Len())
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize of zero = %v, want zero", got)
	}
}

func TestNewBodyRadius(t *testing.T) {
	b := NewBody(8, Vec2{X: 0.1})
	want := math.Cbrt(8) * RadiusScale
	if b.Radius != want {
		t.Errorf("Radius = %g, want %g", b.Radius, want)
	}
	if b.Pos != (Vec2{X: 0.1}) || b.Vel != (Vec2{}) {
		t.Errorf("unexpected initial state: pos=%v vel=%v", b.Pos, b.Vel)
	}

	// promień rośnie monotonicznie z masą
	prev := 0.0
	for _, m := range []float64{0.5, 1, 10, 100, 1e4} {
		r := NewBody(m, Vec2{}).Radius
		if r <= prev {
			t.Errorf("radius not monotonic: mass %g gives %g after %g", m, r, prev)
		}
		prev = r
	}
}
