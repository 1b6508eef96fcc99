// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/gfx-examples/pkg/math"
)

// Default projection parameters shared by the demos.
const (
	DefaultFovY = 60.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// FixedCamera looks from Eye at Target and never moves.
type FixedCamera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FovY float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// NewFixedCamera creates a camera at eye looking at target with the default
// 60 degree perspective.
func NewFixedCamera(eye, target math.Vec3) FixedCamera {
	return FixedCamera{
		Eye:    eye,
		Target: target,
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FovY:   DefaultFovY,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c FixedCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a viewport of the
// given size. A degenerate size falls back to a square aspect.
func (c FixedCamera) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(c.FovY), aspect, c.Near, c.Far)
}
