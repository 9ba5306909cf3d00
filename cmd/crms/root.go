package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "crms",
	Short: "CRMS deployment configuration engine",
	Long: `The CRMS deployment configuration engine adapts the Open Crime Records
Management System to a jurisdiction through a single declarative artifact.

It loads and validates the deployment artifact once at startup, then serves
the derived services:
  - National ID validation for the configured identity document
  - The offense taxonomy catalog
  - Date, time, and currency localization
  - The outbound gateway for registry, court, and SMS integrations`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "deployment.yaml", "deployment artifact path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = false
}
