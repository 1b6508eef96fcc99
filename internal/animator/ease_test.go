package animator

import "testing"

func TestEase(t *testing.T) {
	tests := []struct {
		u, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
		{2, 0},
	}

	for _, tt := range tests {
		if got := Ease(tt.u); abs32(got-tt.want) > 1e-6 {
			t.Errorf("Ease(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestEaseContinuousAtMidpoint(t *testing.T) {
	const d = 1e-4
	left := Ease(0.5 - d)
	right := Ease(0.5 + d)
	if abs32(left-right) > 4*d {
		t.Errorf("Ease jumps at 0.5: %v vs %v", left, right)
	}
	if abs32(left-1) > 4*d || abs32(right-1) > 4*d {
		t.Errorf("Ease near 0.5 should approach 1: %v, %v", left, right)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
