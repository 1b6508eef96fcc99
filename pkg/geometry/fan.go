package geometry

import (
	"fmt"
	stdmath "math"
)

const (
	fanCenterColor = 0xffff0000
	fanRimColor    = 0xff0000ff
)

// BuildFan builds a disk of n rim vertices around a center vertex.
// Vertex 0 is the center; vertex i (1..n) sits on the unit circle at angle
// 2*pi*(i-1)/n. Triangle i-1 joins the center, vertex i and the next rim
// vertex, wrapping back to vertex 1.
func BuildFan(n int) (Mesh[FlatVertex], error) {
	if n < 3 {
		return Mesh[FlatVertex]{}, fmt.Errorf("%w: fan needs at least 3 rim vertices, got %d", ErrResolution, n)
	}
	if n+1 > stdmath.MaxUint16 {
		return Mesh[FlatVertex]{}, fmt.Errorf("%w: fan of %d rim vertices overflows 16-bit indices", ErrResolution, n)
	}

	vertices := make([]FlatVertex, n+1)
	indices := make([]uint16, 0, n*3)

	vertices[0] = FlatVertex{ABGR: fanCenterColor}

	step := 2 * stdmath.Pi / float64(n)
	for i := 1; i <= n; i++ {
		angle := step * float64(i-1)
		vertices[i] = FlatVertex{
			X:    float32(stdmath.Cos(angle)),
			Y:    float32(stdmath.Sin(angle)),
			NZ:   -1,
			ABGR: fanRimColor,
		}

		next := i + 1
		if i == n {
			next = 1
		}
		indices = append(indices, 0, uint16(i), uint16(next))
	}

	return Mesh[FlatVertex]{Vertices: vertices, Indices: indices}, nil
}
