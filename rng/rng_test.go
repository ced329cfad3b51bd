package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewSeededDiffersBySeed(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)
	same := 0
	for range 100 {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestNewIsIndependent(t *testing.T) {
	a := New()
	b := New()
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestFromSeed(t *testing.T) {
	seed := uint64(7)
	assert.Equal(t, NewSeeded(7).Int64(), FromSeed(&seed).Int64())
	assert.NotNil(t, FromSeed(nil))
}
