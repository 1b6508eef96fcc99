package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeIdempotent(t *testing.T) {
	tests := []Vec3{
		{1, 0, 0},
		{0, -1, 0},
		{0.6, 0.8, 0},
		{float32(math.Cos(1.1)), float32(math.Sin(1.1)), 0},
		Vec3{1, 2, 3}.Normalize(),
	}

	for _, v := range tests {
		n := v.Normalize()
		if abs(n.X-v.X) > 1e-6 || abs(n.Y-v.Y) > 1e-6 || abs(n.Z-v.Z) > 1e-6 {
			t.Errorf("Normalize(%v) = %v, want unchanged", v, n)
		}
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"zero", Vec3{}},
		{"below epsilon", Vec3{Epsilon / 4, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if isNaN(n.X) || isNaN(n.Y) || isNaN(n.Z) {
				t.Fatalf("Normalize(%v) produced NaN: %v", tt.v, n)
			}
			if n != tt.v {
				t.Errorf("Normalize(%v) = %v, want input unchanged", tt.v, n)
			}
		})
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, -8}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}
	if got, want := a.Lerp(b, 0.5), (Vec3{1, 2, -4}); got != want {
		t.Errorf("Lerp(t=0.5) = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v, 0, 1) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}

func isNaN(f float32) bool {
	return f != f
}
