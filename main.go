package main

import (
	"github.com/rubiojr/scriptrand/cmd"
	_ "github.com/rubiojr/scriptrand/modules/array"
	_ "github.com/rubiojr/scriptrand/modules/rand"
)

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
