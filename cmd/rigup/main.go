// Package main provides the entry point for the rigup CLI.
package main

import (
	"errors"
	"os"

	"github.com/rigup/rigup/internal/domain/preflight"
)

func main() {
	if err := Execute(); err != nil {
		var preflightErr *preflight.Error
		if errors.As(err, &preflightErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
