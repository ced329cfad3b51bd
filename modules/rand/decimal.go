//go:build rand_decimal

package randmod

import (
	"math"
	"math/rand/v2"

	"github.com/rubiojr/scriptrand/modules"
	"github.com/shopspring/decimal"
)

// decimalDigits is the number of fractional digits of RandDecimal.
const decimalDigits = 18

var decimalFuncs = []modules.FuncDef{
	{Name: "rand_decimal", Returns: modules.Decimal, Impl: callDecimal,
		Doc: "Return a random decimal in [0, 1)."},
	{Name: "rand_decimal", Args: []modules.ArgType{modules.Decimal, modules.Decimal}, ArgNames: []string{"start", "end"}, Returns: modules.Decimal, Impl: callDecimalRange,
		Doc: "Return a random decimal in [start, end). Bounds may be numbers or numeric strings."},
}

// RandDecimal returns a random decimal in [0, 1) with 18 fractional digits.
func RandDecimal(r *rand.Rand) decimal.Decimal {
	return decimal.New(int64(r.Uint64N(1_000_000_000_000_000_000)), -decimalDigits)
}

// DecimalRange returns a random decimal in [start, end).
func DecimalRange(r *rand.Rand, start, end decimal.Decimal) (decimal.Decimal, error) {
	if start.GreaterThanOrEqual(end) {
		return decimal.Zero, modules.Invalidf("rand_decimal", "empty range %s..%s", start, end)
	}
	return start.Add(end.Sub(start).Mul(RandDecimal(r))), nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case string:
		parsed, err := decimal.NewFromString(d)
		return parsed, err == nil
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(d), true
	case int64:
		return decimal.NewFromInt(d), true
	case int:
		return decimal.NewFromInt(int64(d)), true
	}
	return decimal.Zero, false
}

func callDecimal(r *rand.Rand, _ []any) (any, error) {
	return RandDecimal(r), nil
}

func callDecimalRange(r *rand.Rand, args []any) (any, error) {
	start, ok := toDecimal(args[0])
	if !ok {
		return nil, modules.Invalidf("rand_decimal", "start %v is not a decimal", args[0])
	}
	end, ok := toDecimal(args[1])
	if !ok {
		return nil, modules.Invalidf("rand_decimal", "end %v is not a decimal", args[1])
	}
	return DecimalRange(r, start, end)
}
