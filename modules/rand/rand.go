package randmod

import (
	"github.com/rubiojr/scriptrand/modules"
)

var module = &modules.Module{
	Name: "rand",
	Doc:  "Random integer and boolean generation.",
	Funcs: []modules.FuncDef{
		{Name: "rand", Returns: modules.Int, Impl: callInt,
			Doc: "Return a random integer over the full 64-bit range."},
		{Name: "rand", Args: []modules.ArgType{modules.Int, modules.Int}, ArgNames: []string{"start", "end"}, Returns: modules.Int, Impl: callRange,
			Doc: "Return a random integer in [start, end). Fails when start >= end."},
		{Name: "rand_inclusive", Args: []modules.ArgType{modules.Int, modules.Int}, ArgNames: []string{"start", "end"}, Returns: modules.Int, Impl: callRangeInclusive,
			Doc: "Return a random integer in [start, end]. Fails when start > end."},
		{Name: "rand_bool", Returns: modules.Bool, Impl: callBool,
			Doc: "Return true or false with equal probability."},
		{Name: "rand_bool", Args: []modules.ArgType{modules.Float}, ArgNames: []string{"probability"}, Returns: modules.Bool, Impl: callBoolP,
			Doc: "Return true with the given probability, which must be within [0.0, 1.0]."},
	},
}

func init() {
	module.Funcs = append(module.Funcs, floatFuncs...)
	module.Funcs = append(module.Funcs, decimalFuncs...)
	modules.Register(module)
}
