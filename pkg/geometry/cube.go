package geometry

// CubeVertices returns the eight corners of the unit cube [-1, 1]^3.
func CubeVertices() []AdjacencyVertex {
	return []AdjacencyVertex{
		{X: -1, Y: 1, Z: 1, ABGR: 0xff000000},
		{X: 1, Y: 1, Z: 1, ABGR: 0xff0000ff},
		{X: -1, Y: -1, Z: 1, ABGR: 0xff00ff00},
		{X: 1, Y: -1, Z: 1, ABGR: 0xff00ffff},
		{X: -1, Y: 1, Z: -1, ABGR: 0xffff0000},
		{X: 1, Y: 1, Z: -1, ABGR: 0xffff00ff},
		{X: -1, Y: -1, Z: -1, ABGR: 0xffffff00},
		{X: 1, Y: -1, Z: -1, ABGR: 0xffffffff},
	}
}

// CubeIndices returns the twelve triangles of the cube, two per face.
func CubeIndices() []uint16 {
	return []uint16{
		0, 1, 2, // front
		1, 3, 2,
		4, 6, 5, // back
		5, 6, 7,
		0, 2, 4, // left
		4, 2, 6,
		1, 5, 3, // right
		5, 7, 3,
		0, 4, 1, // top
		4, 5, 1,
		2, 3, 6, // bottom
		6, 3, 7,
	}
}

// cornerNeighbors lists, for each triangle corner, the two other corners in
// the order they are stored.
var cornerNeighbors = [3][2]int{
	{1, 2},
	{0, 2},
	{0, 1},
}

// BuildAdjacency expands an indexed triangle list into one vertex per
// triangle corner. Each output vertex copies its base vertex, records its
// corner number in W and stores the positions of the other two corners.
// The returned indices are 0..n-1. Inputs are not modified; trailing
// indices that do not form a full triangle are ignored.
func BuildAdjacency(base []AdjacencyVertex, indices []uint16) ([]AdjacencyVertex, []uint16) {
	n := len(indices) / 3 * 3
	vertices := make([]AdjacencyVertex, n)
	out := make([]uint16, n)

	for tri := 0; tri < n; tri += 3 {
		corners := [3]AdjacencyVertex{
			base[indices[tri]],
			base[indices[tri+1]],
			base[indices[tri+2]],
		}

		for c := 0; c < 3; c++ {
			v := corners[c]
			v.W = float32(c)

			n1 := corners[cornerNeighbors[c][0]]
			n2 := corners[cornerNeighbors[c][1]]
			v.X1, v.Y1, v.Z1 = n1.X, n1.Y, n1.Z
			v.X2, v.Y2, v.Z2 = n2.X, n2.Y, n2.Z

			vertices[tri+c] = v
			out[tri+c] = uint16(tri + c)
		}
	}

	return vertices, out
}

// BuildCube returns the adjacency-augmented cube: 36 vertices, 36 indices.
func BuildCube() Mesh[AdjacencyVertex] {
	vertices, indices := BuildAdjacency(CubeVertices(), CubeIndices())
	return Mesh[AdjacencyVertex]{Vertices: vertices, Indices: indices}
}
