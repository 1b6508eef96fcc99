package geometry

import (
	"errors"
	stdmath "math"
	"testing"
	"unsafe"
)

func TestBuildFanCounts(t *testing.T) {
	for _, n := range []int{3, 4, 16, 128, 1000} {
		fan, err := BuildFan(n)
		if err != nil {
			t.Fatalf("BuildFan(%d): %v", n, err)
		}
		if len(fan.Vertices) != n+1 {
			t.Errorf("n=%d: expected %d vertices, got %d", n, n+1, len(fan.Vertices))
		}
		if len(fan.Indices) != 3*n {
			t.Errorf("n=%d: expected %d indices, got %d", n, 3*n, len(fan.Indices))
		}
	}
}

func TestBuildFanTopology(t *testing.T) {
	const n = 128
	fan, err := BuildFan(n)
	if err != nil {
		t.Fatal(err)
	}

	center := fan.Vertices[0]
	if center.X != 0 || center.Y != 0 || center.Z != 0 {
		t.Errorf("center vertex at %v, want origin", center.Position())
	}

	for tri := 0; tri < n; tri++ {
		a, b, c := fan.Indices[tri*3], fan.Indices[tri*3+1], fan.Indices[tri*3+2]
		if a != 0 {
			t.Errorf("triangle %d: first index %d, want center", tri, a)
		}
		if int(b) != tri+1 {
			t.Errorf("triangle %d: rim index %d, want %d", tri, b, tri+1)
		}
		// Outer vertices are angular neighbors on the rim.
		if want := int(b)%n + 1; int(c) != want {
			t.Errorf("triangle %d: next rim index %d, want %d", tri, c, want)
		}
	}
}

func TestBuildFanRimOnUnitCircle(t *testing.T) {
	const n = 64
	fan, err := BuildFan(n)
	if err != nil {
		t.Fatal(err)
	}

	step := 2 * stdmath.Pi / n
	for i := 1; i <= n; i++ {
		v := fan.Vertices[i]
		if l := v.Position().Length(); stdmath.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("rim vertex %d: length %v, want 1", i, l)
		}
		angle := stdmath.Atan2(float64(v.Y), float64(v.X))
		if angle < 0 {
			angle += 2 * stdmath.Pi
		}
		if want := step * float64(i-1); stdmath.Abs(angle-want) > 1e-4 {
			t.Errorf("rim vertex %d: angle %v, want %v", i, angle, want)
		}
		if v.NZ != -1 {
			t.Errorf("rim vertex %d: normal z %v, want -1", i, v.NZ)
		}
	}
}

func TestBuildFanResolution(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, stdmath.MaxUint16} {
		if _, err := BuildFan(n); !errors.Is(err, ErrResolution) {
			t.Errorf("BuildFan(%d): expected ErrResolution, got %v", n, err)
		}
	}
}

func TestFlatLayoutMatchesVertex(t *testing.T) {
	if size := int(unsafe.Sizeof(FlatVertex{})); FlatLayout.Stride != size {
		t.Errorf("FlatLayout stride %d, FlatVertex size %d", FlatLayout.Stride, size)
	}
	if size := int(unsafe.Sizeof(AdjacencyVertex{})); AdjacencyLayout.Stride != size {
		t.Errorf("AdjacencyLayout stride %d, AdjacencyVertex size %d", AdjacencyLayout.Stride, size)
	}
}
