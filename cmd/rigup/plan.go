package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigup/rigup/internal/app"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what provisioning would change",
	Long: `Plan evaluates every step's check without applying anything and
reports which steps would change the machine. It is exactly 'up --dry-run'
under a clearer name.`,
	RunE: runPlan,
}

var (
	planMinimal bool
	planSkip    []string
	planSkipGit bool
	planCatalog string
)

func init() {
	planCmd.Flags().BoolVar(&planMinimal, "minimal", false, "plan only essential groups")
	planCmd.Flags().StringArrayVar(&planSkip, "skip", nil, "skip a catalog group (repeatable)")
	planCmd.Flags().BoolVar(&planSkipGit, "skip-git", false, "skip git configuration")
	planCmd.Flags().StringVarP(&planCatalog, "catalog", "c", "", "catalog file overriding the built-in")

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	rigup := app.New(os.Stdout)

	opts, err := buildOptions(true, planMinimal, planSkip, planSkipGit, false, planCatalog)
	if err != nil {
		return err
	}

	_, _, err = rigup.Run(context.Background(), opts)
	return err
}
