package vmath

import (
	"math"
	"testing"
)

func TestFixedPointRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, -0.5, 3.14159, -273.15, 1000000}
	for _, v := range values {
		got := ToFloat(FromFloat(v))
		if math.Abs(got-v) > 1e-6 {
			t.Errorf("Round trip of %f gave %f", v, got)
		}
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{2, 3, 6},
		{-2, 3, -6},
		{0.5, 0.5, 0.25},
		{-0.25, -4, 1},
		{0, 123.456, 0},
	}
	for _, c := range cases {
		got := ToFloat(Mul(FromFloat(c.a), FromFloat(c.b)))
		if math.Abs(got-c.want) > 1e-6 {
			t.Errorf("Mul(%f, %f) = %f, want %f", c.a, c.b, got, c.want)
		}
	}
}

func TestVec3Compare(t *testing.T) {
	a := V3FromFloats(1, 2, 3)
	b := V3FromFloats(1, 2, 4)
	if a.Compare(b) != -1 {
		t.Errorf("Expected a < b")
	}
	if b.Compare(a) != 1 {
		t.Errorf("Expected b > a")
	}
	if a.Compare(a) != 0 {
		t.Errorf("Expected a == a")
	}

	// X dominates Y and Z
	c := V3FromFloats(0, 100, 100)
	if a.Compare(c) != 1 {
		t.Errorf("Expected X component to dominate comparison")
	}
}

func TestWrapAngle(t *testing.T) {
	twoPi := 2 * math.Pi
	cases := []float64{0, math.Pi, twoPi, -math.Pi, 3 * twoPi}
	for _, c := range cases {
		got := ToFloat(WrapAngle(FromFloat(c)))
		if got < 0 || got >= twoPi+1e-6 {
			t.Errorf("WrapAngle(%f) = %f, outside [0, 2pi)", c, got)
		}
	}
}
