package randmod

import (
	"math"
	"math/rand/v2"

	"github.com/rubiojr/scriptrand/modules"
)

// Int returns a uniformly distributed integer over the whole int64 range.
func Int(r *rand.Rand) int64 {
	return int64(r.Uint64())
}

// Range returns a random integer in [start, end).
func Range(r *rand.Rand, start, end int64) (int64, error) {
	if start >= end {
		return 0, modules.Invalidf("rand", "empty range %d..%d", start, end)
	}
	// The span of any start < end fits in uint64, and the addition below
	// wraps back into [start, end).
	span := uint64(end) - uint64(start)
	return start + int64(r.Uint64N(span)), nil
}

// RangeInclusive returns a random integer in [start, end].
func RangeInclusive(r *rand.Rand, start, end int64) (int64, error) {
	if start > end {
		return 0, modules.Invalidf("rand_inclusive", "empty range %d..=%d", start, end)
	}
	span := uint64(end) - uint64(start)
	if span == math.MaxUint64 {
		return Int(r), nil
	}
	return start + int64(r.Uint64N(span+1)), nil
}

// Bool flips a fair coin.
func Bool(r *rand.Rand) bool {
	return r.Uint64()&1 == 1
}

// BoolP returns true with probability p.
func BoolP(r *rand.Rand, p float64) (bool, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return false, modules.Invalidf("rand_bool", "probability %v is not within [0.0, 1.0]", p)
	}
	return r.Float64() < p, nil
}

func callInt(r *rand.Rand, _ []any) (any, error) {
	return Int(r), nil
}

func callRange(r *rand.Rand, args []any) (any, error) {
	return Range(r, args[0].(int64), args[1].(int64))
}

func callRangeInclusive(r *rand.Rand, args []any) (any, error) {
	return RangeInclusive(r, args[0].(int64), args[1].(int64))
}

func callBool(r *rand.Rand, _ []any) (any, error) {
	return Bool(r), nil
}

func callBoolP(r *rand.Rand, args []any) (any, error) {
	return BoolP(r, args[0].(float64))
}
