package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags.
	verbose bool
	noColor bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "rigup",
	Short: "Idempotent developer workstation provisioning",
	Long: `Rigup brings a Linux or macOS developer workstation to a known state:
packages installed, dotfiles configured, OS settings applied.

Every step checks the machine first and only applies what is missing, so
rerunning rigup is always safe. A failing step never stops the run; all
failures are summarized at the end for you to fix or retry.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "run log path (default: ~/.rigup.log)")
}
