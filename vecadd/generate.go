package vecadd

import (
	"math/rand/v2"
	"time"
)

// Generator fills arrays from a single pseudo-random stream. Successive
// Fill calls continue the same stream, so filling A and then B draws one
// sequence in order. Not safe for concurrent use.
type Generator struct {
	seed uint64
	rng  *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. A zero seed is
// replaced with one derived from the current time.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) | 1
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the stream started from.
func (g *Generator) Seed() uint64 { return g.seed }

// Fill sets every element of dst to a uniform value in [0, bound).
// Panics if bound < 1.
func (g *Generator) Fill(dst []int32, bound int32) {
	if bound < 1 {
		panic("vecadd: bound must be positive")
	}
	for i := range dst {
		dst[i] = g.rng.Int32N(bound)
	}
}
