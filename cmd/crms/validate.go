package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opencrms/engine/pkg/cli"
	"opencrms/engine/pkg/config"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a deployment artifact",
	Long: `Parse and validate a deployment artifact without starting the engine.

Validation is exhaustive: every violation in the artifact is reported in one
pass, each with the field path that caused it, so an operator can fix the
whole file in a single round trip.

Examples:
  # Validate the default artifact
  crms validate

  # Validate a specific artifact
  crms validate --config nigeria.yaml

  # Machine-readable report
  crms validate --config nigeria.yaml --format json`,
	RunE: validateArtifact,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// validationReport is the machine-readable validation outcome.
type validationReport struct {
	Artifact   string              `json:"artifact"`
	Valid      bool                `json:"valid"`
	Violations []config.FieldError `json:"violations,omitempty"`
}

func validateArtifact(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)

	report := validationReport{Artifact: cfgFile, Valid: err == nil}

	var validationErr *config.ValidationError
	switch {
	case err == nil:
		// fall through to report
	case errors.As(err, &validationErr):
		report.Violations = validationErr.Errors
	default:
		// Unreadable or malformed artifact: nothing field-level to report.
		return cli.NewArtifactError(cfgFile, err.Error())
	}

	if validateFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, report); err != nil {
			return err
		}
	} else {
		if report.Valid {
			fmt.Printf("✓ %s is valid (%s, %d offense categories)\n",
				cfgFile, cfg.CountryName, len(cfg.OffenseCategories))
		} else {
			fmt.Printf("✗ %s has %d violations:\n", cfgFile, len(report.Violations))
			for _, violation := range report.Violations {
				fmt.Printf("  - %s: %s\n", violation.Field, violation.Message)
			}
		}
	}

	if !report.Valid {
		return cli.NewCommandError("validate", fmt.Errorf("%d validation violations", len(report.Violations)))
	}
	return nil
}
