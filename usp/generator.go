package usp

import (
	"math/rand"
	"time"
)

// Generator produces random USPs for benchmarking and testing. Symbols are
// drawn i.i.d. uniformly from {1, 2, 3}, mirroring the original
// implementation's std::uniform_int_distribution<int>{1, 3} driven by a
// std::default_random_engine.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFromClock returns a Generator seeded from the current
// wall-clock time, mirroring the original's seeding of
// std::default_random_engine from std::chrono::steady_clock.
func NewGeneratorFromClock() *Generator {
	return NewGenerator(time.Now().UnixNano())
}

// GenerateRandomPuzzle returns a freshly sampled (n, k) Usp.
func (g *Generator) GenerateRandomPuzzle(n, k int) (*Usp, error) {
	data := make([]Symbol, n*k)
	for i := range data {
		data[i] = Symbol(1 + g.rng.Intn(3))
	}
	return New(data, n, k)
}
