package brandgen

import (
	"fmt"
	"io"
	"os"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format.
// Issues only, like golangci-lint.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verbose := NewVerboseReporter(w, ShouldUseColors(config.UseColors))
		printStatistics(verbose, result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printStatistics(NewVerboseReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing Markdown: %v\n", err)
		}
	}
}

func printStatistics(r *VerboseReporter, result *LintResult) {
	r.PrintStatistics(*result)
	r.PrintCategories(*result)
	r.PrintUtilityMix(*result)
	r.PrintWarnings(*result)
}
