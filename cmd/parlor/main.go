// Package main is the entry point for the parlor CLI.
package main

import (
	"os"

	"github.com/f3rmion/parlor/cmd/parlor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
