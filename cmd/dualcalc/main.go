// Package main provides the dualcalc CLI for evaluating elementary
// functions and their derivatives with dual numbers.
package main

import (
	"os"

	"github.com/forward-ml/dual/cmd/dualcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
