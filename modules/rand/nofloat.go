//go:build rand_nofloat

package randmod

import "github.com/rubiojr/scriptrand/modules"

var floatFuncs []modules.FuncDef
