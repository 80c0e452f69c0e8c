package rng

import (
	"math"
	"math/rand/v2"
)

// Source is the pseudorandom context threaded through every generation stage.
// It owns both the sampling stream and the gradient-noise permutation table
// derived from it, so two Sources built from the same seed produce the same
// systems. A Source is not safe for concurrent use; give each generation its own.
type Source struct {
	r    *rand.Rand
	perm [512]uint8
}

// New builds a Source from a seed. The noise permutation table is shuffled
// from the stream immediately, before any other draw.
func New(seed uint64) *Source {
	s := &Source{
		r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.buildPermutation()
	return s
}

// NewSeed draws a seed below 2^53 so it survives a round trip through JSON
// numbers in JavaScript clients.
func NewSeed() uint64 {
	return rand.Uint64N(1 << 53)
}

// Float64 returns a draw from [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a draw from [min, max).
func (s *Source) Uniform(min, max float64) float64 {
	return s.r.Float64()*(max-min) + min
}

// PowerLaw returns U^k for U ~ Uniform(0,1). k > 1 skews toward 0.
func (s *Source) PowerLaw(k float64) float64 {
	return math.Pow(s.r.Float64(), k)
}

// LogUniform samples uniformly in log space over [min, max).
func (s *Source) LogUniform(min, max float64) float64 {
	return math.Exp(s.Uniform(math.Log(min), math.Log(max)))
}

// Chance reports whether a Bernoulli(p) trial succeeds.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Angle returns a draw from [0, 2π).
func (s *Source) Angle() float64 {
	return s.Uniform(0, 2*math.Pi)
}

// IntN returns a draw from [0, n).
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Shuffle permutes n elements in place using the Source's stream.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// InverseErf approximates erf⁻¹(x) for x in (-1, 1) using Winitzki's
// closed form with a = 0.147.
func InverseErf(x float64) float64 {
	const a = 0.147
	ln := math.Log(1 - x*x)
	p1 := 2/(math.Pi*a) + ln/2
	p2 := ln / a
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	return sign * math.Sqrt(math.Sqrt(p1*p1-p2)-p1)
}
