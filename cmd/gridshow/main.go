package main

import (
	"os"

	"github.com/drake/gridshow/display"
	"github.com/drake/gridshow/grid"
)

func main() {
	// No flags, arguments, or environment are consulted; the output is a
	// fixed constant and the exit status is always 0.
	out := display.NewConsole(os.Stdout)
	out.Run(grid.DefaultSequence(), grid.DefaultGrid())
}
