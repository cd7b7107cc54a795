package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yacobolo/brandgen"
	"github.com/yacobolo/brandgen/internal/export"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate component library packages from brand files",
	Long: `Discover brand files, assemble a component library for each one and
write it as a package: a zip archive (default) or a directory.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", ".", "Directory searched for brand files")
	f.StringSlice("include", nil, "Glob patterns for brand files (default: **/*.brand.{yaml,yml,json})")
	f.String("output-dir", "dist", "Directory packages are written to")
	f.Bool("archive", true, "Write <package>.zip instead of a directory")
	f.String("format", string(export.FormatComplete), "Package format: complete|components-only")
	f.Bool("storybook", true, "Include Storybook stories and config")
	f.Bool("tests", false, "Include component tests")
	f.String("package-version", export.DefaultVersion, "Semantic version written to package.json")
	f.Int("concurrency", 0, "Brand files processed at once (0 = GOMAXPROCS)")
	f.Bool("strict", false, "Fail on invalid brand files")
	f.Bool("dry-run", false, "Render packages without writing them")
	f.Bool("stamp", false, "Stamp the generation time into src/index.ts")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	if getBoolWithFallback("stamp", "generate.stamp", false) {
		config.Export.GeneratedAt = time.Now()
	}

	result, err := brandgen.Generate(cmd.Context(), config)
	if result == nil && err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	w := cmd.OutOrStdout()

	if !quiet {
		verb := "Generated"
		if config.DryRun {
			verb = "Would generate"
		}
		fmt.Fprintf(w, "%s %d package(s) in %s\n", verb, len(result.Outputs), config.OutputDir)
		fmt.Fprintf(w, "  Brand files scanned: %d\n", result.Scan.FilesScanned)
		if result.Scan.FilesSkipped > 0 {
			fmt.Fprintf(w, "  Brand files skipped: %d\n", result.Scan.FilesSkipped)
		}
		for _, out := range result.Outputs {
			fmt.Fprintf(w, "  %s -> %s (%d files)\n", brandgen.GetRelativePath(out.Source), out.Path, out.Files)
		}

		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  Warning: %s\n", warning)
		}
	}

	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	// Run lint after generate if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint(cmd, config)
	}

	return nil
}
