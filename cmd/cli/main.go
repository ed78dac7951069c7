// Package main is the dimensional command line entry point.
package main

import (
	"os"

	"dimensional/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
