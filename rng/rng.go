// Package rng constructs the generators random functions draw from.
//
// Every execution context owns its generator and passes it by reference into
// each call. Generators are not safe for concurrent use; a host running
// scripts on several goroutines gives each one its own.
package rng

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// New returns a ChaCha8 generator seeded from OS entropy.
func New() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("rng: reading entropy: %v", err))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeeded returns a deterministic PCG generator. Two generators built
// from the same seed yield the same stream.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FromSeed returns NewSeeded(*seed) when seed is set and New otherwise.
func FromSeed(seed *uint64) *rand.Rand {
	if seed != nil {
		return NewSeeded(*seed)
	}
	return New()
}
