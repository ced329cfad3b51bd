package randmod

import (
	"errors"
	"math"
	"testing"

	"github.com/rubiojr/scriptrand/modules"
	"github.com/rubiojr/scriptrand/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeStaysWithinBounds(t *testing.T) {
	r := rng.NewSeeded(1)
	tests := []struct {
		name       string
		start, end int64
	}{
		{"small", 0, 10},
		{"negative", -50, -40},
		{"single value", 5, 6},
		{"spanning zero", -3, 3},
		{"full lower half", math.MinInt64, 0},
		{"near max", math.MaxInt64 - 2, math.MaxInt64},
		{"widest", math.MinInt64, math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 1000 {
				v, err := Range(r, tt.start, tt.end)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, v, tt.start)
				assert.Less(t, v, tt.end)
			}
		})
	}
}

func TestRangeEmptyFails(t *testing.T) {
	r := rng.NewSeeded(1)
	for _, b := range [][2]int64{{10, 10}, {10, 9}, {math.MaxInt64, math.MinInt64}} {
		_, err := Range(r, b[0], b[1])
		assert.ErrorIs(t, err, modules.ErrInvalidArgument, "Range(%d, %d)", b[0], b[1])
	}
}

func TestRangeCoversEveryValue(t *testing.T) {
	r := rng.NewSeeded(3)
	seen := make(map[int64]bool)
	for range 1000 {
		v, err := Range(r, 0, 5)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}

func TestRangeInclusive(t *testing.T) {
	r := rng.NewSeeded(2)

	v, err := RangeInclusive(r, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	seen := make(map[int64]bool)
	for range 1000 {
		v, err := RangeInclusive(r, 1, 3)
		require.NoError(t, err)
		assert.True(t, v >= 1 && v <= 3, "got %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	_, err = RangeInclusive(r, math.MinInt64, math.MaxInt64)
	require.NoError(t, err)

	_, err = RangeInclusive(r, 2, 1)
	assert.ErrorIs(t, err, modules.ErrInvalidArgument)
}

func TestIntVaries(t *testing.T) {
	r := rng.NewSeeded(4)
	assert.NotEqual(t, Int(r), Int(r))
}

func TestBoolIsFair(t *testing.T) {
	r := rng.NewSeeded(5)
	const n = 100_000
	trues := 0
	for range n {
		if Bool(r) {
			trues++
		}
	}
	assert.InDelta(t, 0.5, float64(trues)/n, 0.01)
}

func TestBoolP(t *testing.T) {
	r := rng.NewSeeded(6)
	for range 1000 {
		v, err := BoolP(r, 0.0)
		require.NoError(t, err)
		assert.False(t, v)

		v, err = BoolP(r, 1.0)
		require.NoError(t, err)
		assert.True(t, v)
	}

	const n = 100_000
	trues := 0
	for range n {
		if v, _ := BoolP(r, 0.25); v {
			trues++
		}
	}
	assert.InDelta(t, 0.25, float64(trues)/n, 0.01)
}

func TestBoolPRejectsInvalidProbability(t *testing.T) {
	r := rng.NewSeeded(7)
	for _, p := range []float64{-0.1, 1.0001, math.NaN(), math.Inf(1)} {
		_, err := BoolP(r, p)
		var argErr *modules.ArgError
		require.True(t, errors.As(err, &argErr), "p=%v", p)
		assert.Equal(t, "rand_bool", argErr.Func)
	}
}

func TestModuleRegistered(t *testing.T) {
	m, ok := modules.Get("rand")
	require.True(t, ok)
	assert.Equal(t, "rand", m.Name)

	reg, err := modules.NewRegistry(m)
	require.NoError(t, err)
	for _, sig := range []struct {
		name  string
		arity int
	}{
		{"rand", 0}, {"rand", 2}, {"rand_inclusive", 2}, {"rand_bool", 0}, {"rand_bool", 1},
	} {
		_, ok := reg.Lookup(sig.name, sig.arity)
		assert.True(t, ok, "%s/%d", sig.name, sig.arity)
	}
}

func TestCallThroughRegistry(t *testing.T) {
	m, _ := modules.Get("rand")
	reg, err := modules.NewRegistry(m)
	require.NoError(t, err)
	r := rng.NewSeeded(8)

	v, err := reg.Call(r, "rand", 1.0, 4.0)
	require.NoError(t, err)
	n, ok := v.(int64)
	require.True(t, ok)
	assert.True(t, n >= 1 && n < 4)

	_, err = reg.Call(r, "rand", int64(10), int64(10))
	assert.ErrorIs(t, err, modules.ErrInvalidArgument)

	_, err = reg.Call(r, "rand_bool", 2.0)
	assert.ErrorIs(t, err, modules.ErrInvalidArgument)

	v, err = reg.Call(r, "rand_bool")
	require.NoError(t, err)
	assert.IsType(t, true, v)
}
