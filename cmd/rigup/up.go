package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigup/rigup/internal/adapters/filesystem"
	"github.com/rigup/rigup/internal/app"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Provision this workstation",
	Long: `Up runs the catalog for the detected operating system.

Each step checks current machine state first; already-satisfied steps are
skipped, so reruns are fast and safe. Individual failures are collected
and summarized without stopping the run.

Examples:
  rigup up                  # full provisioning
  rigup up --dry-run        # show what would change
  rigup up --minimal        # essential groups only
  rigup up --skip editors   # exclude a group
  rigup up --skip-git       # leave git config alone`,
	RunE: runUp,
}

var (
	upDryRun  bool
	upMinimal bool
	upSkip    []string
	upSkipGit bool
	upVerify  bool
	upCatalog string
)

func init() {
	upCmd.Flags().BoolVar(&upDryRun, "dry-run", false, "report what would change without applying")
	upCmd.Flags().BoolVar(&upMinimal, "minimal", false, "run only essential groups")
	upCmd.Flags().StringArrayVar(&upSkip, "skip", nil, "skip a catalog group (repeatable)")
	upCmd.Flags().BoolVar(&upSkipGit, "skip-git", false, "skip git configuration")
	upCmd.Flags().BoolVar(&upVerify, "verify", false, "re-check each step after apply")
	upCmd.Flags().StringVarP(&upCatalog, "catalog", "c", "", "catalog file overriding the built-in")

	rootCmd.AddCommand(upCmd)
}

func runUp(_ *cobra.Command, _ []string) error {
	rigup := app.New(os.Stdout)

	opts, err := buildOptions(upDryRun, upMinimal, upSkip, upSkipGit, upVerify, upCatalog)
	if err != nil {
		return err
	}

	// Step failures land in the report; only pre-flight and setup errors
	// surface here. A run with failed steps still exits 0.
	_, _, err = rigup.Run(context.Background(), opts)
	return err
}

// buildOptions merges the settings file with command-line flags; flags win.
func buildOptions(dryRun, minimal bool, skip []string, skipGit, verify bool, catalogPath string) (app.Options, error) {
	settings, err := app.LoadSettings(filesystem.NewRealFileSystem())
	if err != nil {
		return app.Options{}, err
	}

	opts := app.Options{
		DryRun:      dryRun,
		Verify:      verify || settings.Verify,
		Minimal:     minimal,
		Skip:        append(append([]string{}, settings.Skip...), skip...),
		CatalogPath: catalogPath,
		LogPath:     logFile,
		Verbose:     verbose,
		Color:       settings.Color && !noColor,
	}
	if opts.LogPath == "" {
		opts.LogPath = settings.LogPath
	}
	if skipGit {
		opts.Skip = append(opts.Skip, "git")
	}
	return opts, nil
}
