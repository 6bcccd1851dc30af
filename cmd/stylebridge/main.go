// Package main provides the stylebridge CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/stylebridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
