// Package main is the entry point for the nutctl command.
package main

import (
	"os"

	"github.com/powerctl/nutctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
