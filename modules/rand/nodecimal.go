//go:build !rand_decimal

package randmod

import "github.com/rubiojr/scriptrand/modules"

var decimalFuncs []modules.FuncDef
