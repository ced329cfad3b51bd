//go:build !rand_nofloat

package randmod

import (
	"math"
	"math/rand/v2"

	"github.com/rubiojr/scriptrand/modules"
)

var floatFuncs = []modules.FuncDef{
	{Name: "rand_float", Returns: modules.Float, Impl: callFloat,
		Doc: "Return a random float in [0.0, 1.0)."},
	{Name: "rand_float", Args: []modules.ArgType{modules.Float, modules.Float}, ArgNames: []string{"start", "end"}, Returns: modules.Float, Impl: callFloatRange,
		Doc: "Return a random float in [start, end). Fails when start >= end or the bounds are not finite."},
}

// Float returns a random float in [0.0, 1.0).
func Float(r *rand.Rand) float64 {
	return r.Float64()
}

// FloatRange returns a random float in [start, end).
func FloatRange(r *rand.Rand, start, end float64) (float64, error) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return 0, modules.Invalidf("rand_float", "bounds must be finite, got %v..%v", start, end)
	}
	if start >= end {
		return 0, modules.Invalidf("rand_float", "empty range %v..%v", start, end)
	}
	span := end - start
	if math.IsInf(span, 0) {
		return 0, modules.Invalidf("rand_float", "range %v..%v overflows", start, end)
	}
	v := start + span*r.Float64()
	if v >= end {
		// Rounding can land on end for very wide or very narrow spans.
		v = math.Nextafter(end, start)
	}
	return v, nil
}

func callFloat(r *rand.Rand, _ []any) (any, error) {
	return Float(r), nil
}

func callFloatRange(r *rand.Rand, args []any) (any, error) {
	return FloatRange(r, args[0].(float64), args[1].(float64))
}
