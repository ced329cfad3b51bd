//go:build !rand_noarray

package arraymod

import (
	"math/rand/v2"

	"github.com/rubiojr/scriptrand/modules"
)

// Shuffle permutes items in place with a Fisher-Yates shuffle.
func Shuffle(r *rand.Rand, items []any) {
	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Sample returns one uniformly chosen element, or nil when items is empty.
func Sample(r *rand.Rand, items []any) any {
	if len(items) == 0 {
		return nil
	}
	return items[r.IntN(len(items))]
}

// SampleN returns n elements drawn from n distinct positions of items.
// The result is a new slice; items is left untouched.
func SampleN(r *rand.Rand, items []any, n int64) ([]any, error) {
	if n < 0 {
		return nil, modules.Invalidf("sample", "amount %d is negative", n)
	}
	if n > int64(len(items)) {
		return nil, modules.Invalidf("sample", "amount %d exceeds array length %d", n, len(items))
	}
	pool := make([]any, len(items))
	copy(pool, items)
	// Partial Fisher-Yates: the first n slots end up holding the sample.
	for i := range int(n) {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n], nil
}

func callShuffle(r *rand.Rand, args []any) (any, error) {
	Shuffle(r, args[0].([]any))
	return nil, nil
}

func callSample(r *rand.Rand, args []any) (any, error) {
	return Sample(r, args[0].([]any)), nil
}

func callSampleN(r *rand.Rand, args []any) (any, error) {
	return SampleN(r, args[0].([]any), args[1].(int64))
}
