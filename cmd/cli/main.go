// Package main is the entry point for the stack-advisor CLI.
package main

import (
	"os"

	"stack-advisor/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
