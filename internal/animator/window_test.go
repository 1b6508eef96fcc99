package animator

import "testing"

func TestSelectWindowBounds(t *testing.T) {
	src := NewRandSource(7)
	for round := 0; round < 200; round++ {
		w := SelectWindow(src, 16, 129)

		if len(w.Indices) != 16 {
			t.Fatalf("round %d: expected 16 indices, got %d", round, len(w.Indices))
		}
		lo, hi := w.Indices[0], w.Indices[0]
		for _, idx := range w.Indices {
			if idx < 0 || idx > 128 {
				t.Fatalf("round %d: index %d outside [0, 128]", round, idx)
			}
			if idx < w.Lower || idx > w.Upper {
				t.Fatalf("round %d: index %d outside window [%d, %d]", round, idx, w.Lower, w.Upper)
			}
			lo = min(lo, idx)
			hi = max(hi, idx)
		}
		if w.Lower != lo || w.Upper != hi {
			t.Fatalf("round %d: window [%d, %d], want [%d, %d]", round, w.Lower, w.Upper, lo, hi)
		}
		if w.Lower > w.Upper {
			t.Fatalf("round %d: lower %d > upper %d", round, w.Lower, w.Upper)
		}
	}
}

func TestSelectWindowScripted(t *testing.T) {
	tests := []struct {
		name         string
		indices      []int
		lower, upper int
	}{
		{"ascending", []int{1, 2, 3}, 1, 3},
		{"descending", []int{9, 4, 2}, 2, 9},
		{"first is max", []int{12, 3, 7}, 3, 12},
		{"all equal", []int{5, 5, 5}, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := SelectWindow(&scriptedSource{indices: tt.indices}, len(tt.indices), 16)
			if w.Lower != tt.lower || w.Upper != tt.upper {
				t.Errorf("window [%d, %d], want [%d, %d]", w.Lower, w.Upper, tt.lower, tt.upper)
			}
			if w.Len() != tt.upper-tt.lower {
				t.Errorf("Len() = %d, want %d", w.Len(), tt.upper-tt.lower)
			}
		})
	}
}

func TestRandSourceDeterministic(t *testing.T) {
	a := NewRandSource(99)
	b := NewRandSource(99)
	for i := 0; i < 50; i++ {
		if x, y := a.NextIndex(129), b.NextIndex(129); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
}
