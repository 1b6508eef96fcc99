// Package math provides the small vector and matrix toolkit the demos need.
package math

import "math"

// Epsilon is the float32 machine epsilon. Lengths at or below it are treated
// as degenerate by Normalize.
const Epsilon = float32(1.1920929e-07)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector.
// A length at or below Epsilon is replaced by 1, so the zero vector
// normalizes to itself instead of NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l <= Epsilon {
		l = 1
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Lerp interpolates between v and other by t.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
	}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return t*(b-a) + a
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}
