// Package main is the entry point for the querybuild CLI.
package main

import (
	"os"

	"github.com/biyonik/go-query-builder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
