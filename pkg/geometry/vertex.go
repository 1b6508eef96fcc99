// Package geometry builds the vertex and index data uploaded by the demos.
package geometry

import (
	"errors"
	"unsafe"

	"github.com/Faultbox/gfx-examples/pkg/math"
)

// ErrResolution is returned when a mesh resolution is too small to close.
var ErrResolution = errors.New("geometry: resolution too small")

// AdjacencyVertex is a triangle corner carrying the positions of the two
// other corners of its triangle. W identifies the corner (0, 1 or 2).
type AdjacencyVertex struct {
	X, Y, Z, W float32

	// First neighbor
	X1, Y1, Z1 float32

	// Second neighbor
	X2, Y2, Z2 float32

	ABGR uint32
}

// Position returns the vertex position.
func (v AdjacencyVertex) Position() math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Neighbor1 returns the first stored neighbor position.
func (v AdjacencyVertex) Neighbor1() math.Vec3 {
	return math.Vec3{X: v.X1, Y: v.Y1, Z: v.Z1}
}

// Neighbor2 returns the second stored neighbor position.
func (v AdjacencyVertex) Neighbor2() math.Vec3 {
	return math.Vec3{X: v.X2, Y: v.Y2, Z: v.Z2}
}

// FlatVertex is a position with a normal and a packed color.
// The normal is carried for layout compatibility but not shaded.
type FlatVertex struct {
	X, Y, Z    float32
	NX, NY, NZ float32
	ABGR       uint32
}

// Position returns the vertex position.
func (v FlatVertex) Position() math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// WithPosition returns a copy of v moved to p. Normal and color are kept.
func (v FlatVertex) WithPosition(p math.Vec3) FlatVertex {
	v.X, v.Y, v.Z = p.X, p.Y, p.Z
	return v
}

// Mesh is an indexed triangle list.
type Mesh[V any] struct {
	Vertices []V
	Indices  []uint16
}

// TriangleCount returns the number of complete triangles.
func (m Mesh[V]) TriangleCount() int {
	return len(m.Indices) / 3
}

// AsBytes reinterprets a vertex slice as raw bytes without copying.
// V must be a fixed-size struct without pointers.
func AsBytes[V any](vertices []V) []byte {
	if len(vertices) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(vertices[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*size)
}

// IndexBytes reinterprets an index slice as raw bytes without copying.
func IndexBytes(indices []uint16) []byte {
	return AsBytes(indices)
}
