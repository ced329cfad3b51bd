//go:build !rand_noarray

package arraymod

import (
	"github.com/rubiojr/scriptrand/modules"
)

func init() {
	modules.Register(&modules.Module{
		Name: "array",
		Doc:  "Shuffling and sampling methods for arrays.",
		Funcs: []modules.FuncDef{
			{Name: "shuffle", Args: []modules.ArgType{modules.Array}, ArgNames: []string{"array"}, Returns: modules.Unit, Method: true, Impl: callShuffle,
				Doc: "Shuffle the elements of the array in place."},
			{Name: "sample", Args: []modules.ArgType{modules.Array}, ArgNames: []string{"array"}, Returns: modules.Any, Method: true, Impl: callSample,
				Doc: "Copy a random element from the array and return it. Returns () when the array is empty."},
			{Name: "sample", Args: []modules.ArgType{modules.Array, modules.Int}, ArgNames: []string{"array", "amount"}, Returns: modules.Array, Method: true, Impl: callSampleN,
				Doc: "Copy amount distinct elements from the array, in random order. Fails when amount is negative or exceeds the array length."},
		},
	})
}
