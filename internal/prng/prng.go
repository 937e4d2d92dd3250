// Package prng provides the seeded, deterministic random source used by
// the generation kernel. The same seed must always produce the same
// sequence of draws, which is why the package hides math/rand/v2 behind a
// narrow Source interface instead of letting callers reach for the
// package-level global generator.
package prng

import (
	"math"
	"math/rand/v2"
)

// Source draws uniform and normally distributed samples from a seeded
// stream.
type Source interface {
	// Uniform returns a value in [0, 1).
	Uniform() float64
	// Normal returns a sample from N(mean, std^2). Panics if std < 0.
	Normal(mean, std float64) float64
	// Reset reseeds the stream so subsequent draws repeat from the start.
	Reset(seed uint64)
}

type pcgSource struct {
	rng      *rand.Rand
	seed     uint64
	hasSpare bool
	spare    float64
}

// New returns a Source seeded deterministically from seed.
func New(seed uint64) Source {
	s := &pcgSource{}
	s.Reset(seed)
	return s
}

func (s *pcgSource) Reset(seed uint64) {
	s.seed = seed
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	s.hasSpare = false
	s.spare = 0
}

func (s *pcgSource) Uniform() float64 {
	return s.rng.Float64()
}

// Normal implements the Marsaglia polar method: draw points uniformly in
// the square [-1,1)² until one lands inside the unit disc, then derive two independent
// standard-normal samples from it. The second sample is cached so every
// other call is free of additional draws, matching the stream-spare
// pattern used by most Box-Muller implementations.
func (s *pcgSource) Normal(mean, std float64) float64 {
	if std < 0 {
		panic("prng: std must be >= 0")
	}
	if s.hasSpare {
		s.hasSpare = false
		return mean + std*s.spare
	}

	var u, v, sq float64
	for {
		u = 2*s.rng.Float64() - 1
		v = 2*s.rng.Float64() - 1
		sq = u*u + v*v
		if sq > 0 && sq < 1 {
			break
		}
	}

	mul := math.Sqrt(-2 * math.Log(sq) / sq)
	s.spare = v * mul
	s.hasSpare = true
	return mean + std*(u*mul)
}
