// Package gen fills benchmark operands with constant or seeded pseudo-random values.
package gen

import "math/rand"

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Constant32 sets every element of dst to v.
func Constant32(dst []float32, v float32) {
	for i := range dst {
		dst[i] = v
	}
}

// Random32 fills dst with values uniform in [-1, 1).
func Random32(dst []float32, rng *rand.Rand) {
	for i := range dst {
		dst[i] = rng.Float32()*2 - 1
	}
}

// Random64 fills dst with values uniform in [-1, 1).
func Random64(dst []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = rng.Float64()*2 - 1
	}
}
