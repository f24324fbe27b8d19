package vmath

import (
	"math"
)

// Vec3 is a 3D vector in Q32.32 fixed-point
// Integer components make Vec3 exactly comparable, so it can be used
// as part of a map key without float equality hazards
type Vec3 struct {
	X, Y, Z int64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

func V3Dot(a, b Vec3) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

func V3MagSq(v Vec3) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y) + Mul(v.Z, v.Z)
}

// V3FromFloats creates a Vec3 from float components
func V3FromFloats(x, y, z float64) Vec3 {
	return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)}
}

// V3ToFloats extracts float components for rendering math
func V3ToFloats(v Vec3) (x, y, z float64) {
	return ToFloat(v.X), ToFloat(v.Y), ToFloat(v.Z)
}

// IsZero returns true if all components are zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Compare imposes a total order over vectors, component by component
// Returns -1, 0, or 1
func (v Vec3) Compare(o Vec3) int {
	switch {
	case v.X != o.X:
		return sign64(v.X - o.X)
	case v.Y != o.Y:
		return sign64(v.Y - o.Y)
	case v.Z != o.Z:
		return sign64(v.Z - o.Z)
	}
	return 0
}

func sign64(d int64) int {
	if d < 0 {
		return -1
	}
	if d > 0 {
		return 1
	}
	return 0
}

// V3Mag returns vector magnitude
// Optimization: Calculates in float, one sqrt
func V3Mag(v Vec3) int64 {
	fx, fy, fz := float64(v.X), float64(v.Y), float64(v.Z)
	return int64(math.Sqrt(fx*fx + fy*fy + fz*fz))
}
