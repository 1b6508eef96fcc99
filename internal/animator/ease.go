package animator

import "github.com/Faultbox/gfx-examples/pkg/math"

// Ease maps cycle progress u to an interpolation weight that rises linearly
// from 0 to 1 over the first half and falls back to 0 over the second.
// u is clamped to [0, 1].
func Ease(u float32) float32 {
	u = math.Clamp(u, 0, 1)
	if u > 0.5 {
		return 2 - 2*u
	}
	return 2 * u
}
