// SPDX-License-Identifier: MIT

// Command gridtopo inspects implicit grid triangulations from the shell.
//
// Usage:
//
//	gridtopo info --dims 4,4,4
//	gridtopo query vertex star 21 --dims 4,4,4
//	gridtopo query cell neighbors 0 --config grid.toml
//	gridtopo critical --dims 16,16,16 --direction 1,2.1,4.3
//
// Grid parameters come from --config (TOML or INI), then from the
// --dims, --origin and --spacing flags, which win when given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridtopo:", err)
		os.Exit(1)
	}
}
