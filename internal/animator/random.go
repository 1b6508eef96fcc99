package animator

import "math/rand/v2"

// IndexSource yields vertex indices for an update window.
type IndexSource interface {
	// NextIndex returns an index in [0, n).
	NextIndex(n int) int
}

// RandSource draws indices uniformly from a PCG generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a source seeded with seed. A zero seed draws a
// random seed so successive runs differ.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextIndex implements IndexSource.
func (s *RandSource) NextIndex(n int) int {
	return s.rng.IntN(n)
}
