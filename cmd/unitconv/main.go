// Package main provides the unitconv binary: a command-line front end to
// the quanta units library for quick dimensionally-checked conversions.
//
//	unitconv convert 2.60076 mm GHz --via spectral
//	unitconv units --dim "length / time"
//	unitconv constants G
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		// cobra already printed the error; signal failure to the shell.
		_, _ = fmt.Fprintln(os.Stderr, "unitconv: aborted")
		os.Exit(1)
	}
}
