package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/brandgen"
	engine "github.com/yacobolo/brandgen/internal/brandgen"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the component libraries generated from brand files",
	Long: `Check the variant catalog and every library assembled from the brand files:
required components present, defaults defined, no unresolved tokens and no
utilities overriding each other. With --stylesheet, also check that an
exported globals.css still matches the brand colors.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd, buildSourceConfig("lint"))
	},
}

func init() {
	f := lintCmd.Flags()
	f.String("source", ".", "Directory searched for brand files")
	f.StringSlice("include", nil, "Glob patterns for brand files")
	f.String("stylesheet", "", "Exported globals.css to check against every brand")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("check-conflicts", true, "Report utilities that override each other")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show the class string with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// runLint is shared between `brandgen lint` and `brandgen generate --lint`.
// With config.Strict, invalid brand files are not linted at all.
func runLint(cmd *cobra.Command, config brandgen.Config) error {
	lintConfig := buildLintConfig()

	brands, _, err := brandgen.LoadBrands(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	var sheet *engine.Stylesheet
	if path := getStringWithFallback("stylesheet", "lint.stylesheet", ""); path != "" {
		sheet, err = engine.ReadStylesheet(path)
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}
	}

	inputs := make([]engine.LintInput, 0, len(brands))
	var loadWarnings []string
	for _, b := range brands {
		loadWarnings = append(loadWarnings, b.Warnings...)
		if b.Err != nil {
			loadWarnings = append(loadWarnings, b.Err.Error())
		}
		inputs = append(inputs, engine.LintInput{
			Source:     brandgen.GetRelativePath(b.Source),
			Library:    b.Library,
			Stylesheet: sheet,
		})
	}

	lintResult := engine.Lint(lintConfig, inputs)
	lintResult.Warnings = append(loadWarnings, lintResult.Warnings...)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := engine.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		engine.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 || len(loadWarnings) > 0 {
			return &exitError{code: 1}
		}
	} else if lintResult.ErrorCount() > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return &exitError{code: 1}
	}

	return nil
}
