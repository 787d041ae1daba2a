// Package rng provides the seeded pseudo-random source used wherever
// generation must be reproducible. The sequence is a pure function of the
// seed: the same seed yields the same geometry on every platform, which is
// what lets a placed feature be regenerated bit-identically later.
package rng

import (
	"hash/fnv"
	"math"
)

// LCG constants (Numerical Recipes). The 32-bit wraparound is part of the
// contract, not an implementation detail: generated geometry must match
// across platforms and language ports.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// Source is a linear-congruential pseudo-random generator.
type Source struct {
	state uint32
}

// New creates a source from an explicit seed. Negative seeds are folded
// into the 32-bit state space.
func New(seed int64) *Source {
	return &Source{state: uint32(seed)}
}

// FromPosition creates a source seeded from a placement position, so the
// same position always yields the same shape.
func FromPosition(x, y float64) *Source {
	return New(PositionSeed(x, y))
}

// PositionSeed derives the integer seed for a placement position.
func PositionSeed(x, y float64) int64 {
	return int64(math.Floor(x*1000 + y*7919))
}

// Next advances the generator and returns a value in [0,1).
func (s *Source) Next() float64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return float64(s.state) / (1 << 32)
}

// Range returns a value in [min,max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// IntRange returns an integer in [min,maxExclusive).
func (s *Source) IntRange(min, maxExclusive int) int {
	if maxExclusive <= min {
		return min
	}
	return min + int(s.Next()*float64(maxExclusive-min))
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Next() < p
}

// Fork derives a child source from the current state and a label, advancing
// the parent once. Subsystems draw from their own fork so adding a consumer
// does not reorder the draws of its siblings.
func (s *Source) Fork(label string) *Source {
	h := fnv.New32a()
	h.Write([]byte(label))
	s.state = s.state*lcgMultiplier + lcgIncrement
	return &Source{state: s.state ^ h.Sum32()}
}

// Pick returns a uniformly chosen element of list. Empty lists yield the
// zero value.
func Pick[T any](s *Source, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[s.IntRange(0, len(list))]
}
