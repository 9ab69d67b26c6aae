// SPDX-License-Identifier: MIT

// Command nlcatalog lists, inspects and checks the nonlinear benchmark
// catalog.
//
//	nlcatalog list
//	nlcatalog show dennis-schnabel
//	nlcatalog check --format yaml wood helical-valley
//	nlcatalog solve-step broyden-banded/n=10
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
