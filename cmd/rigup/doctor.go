package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigup/rigup/internal/app"
	"github.com/rigup/rigup/internal/domain/preflight"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this machine can be provisioned",
	Long: `Doctor runs only the pre-flight checks: supported OS, not running as
root, package manager on PATH, writable home directory. These are the
conditions 'rigup up' requires before touching anything.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	rigup := app.New(cmd.OutOrStdout())

	var failed error
	for _, check := range rigup.Preflight() {
		if err := check.Probe(ctx); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", check.Name, err)
			if failed == nil {
				failed = &preflight.Error{Check: check.Name, Err: err}
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s\n", check.Name)
	}

	if failed != nil {
		return failed
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nAll pre-flight checks passed.")
	return nil
}
