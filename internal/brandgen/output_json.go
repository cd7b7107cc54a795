package brandgen

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Truncated     int `json:"truncated"`
	SourcesLinted int `json:"sources_linted"`
}

// JSONStats contains library statistics
type JSONStats struct {
	Components   int            `json:"components"`
	Variants     int            `json:"variants"`
	Sizes        int            `json:"sizes"`
	Compositions int            `json:"compositions"`
	ByCategory   map[string]int `json:"by_category"`
	UtilityMix   map[string]int `json:"utility_mix"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	errors, warnings := countSeverities(result.Issues)

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		if issue.Replacement != nil {
			ji.Replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = ji
	}

	byCategory := make(map[string]int, len(result.ByCategory))
	for cat, n := range result.ByCategory {
		byCategory[string(cat)] = n
	}
	utilityMix := make(map[string]int, len(result.UtilityMix))
	for cat, n := range result.UtilityMix {
		utilityMix[string(cat)] = n
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			Errors:        errors,
			Warnings:      warnings,
			Truncated:     result.TruncatedCount,
			SourcesLinted: result.SourcesLinted,
		},
		Stats: JSONStats{
			Components:   result.Components,
			Variants:     result.Variants,
			Sizes:        result.Sizes,
			Compositions: result.Compositions,
			ByCategory:   byCategory,
			UtilityMix:   utilityMix,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}

// WriteMarkdown writes the lint result as a shareable Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder
	errors, warnings := countSeverities(result.Issues)

	b.WriteString("# Brand Library Lint Report\n\n")
	fmt.Fprintf(&b, "_Generated %s_\n\n", time.Now().Format("2006-01-02 15:04"))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| **Total Issues** | %d (%s, %s) |\n", len(result.Issues),
		pluralizeCount(errors, "error", "errors"), pluralizeCount(warnings, "warning", "warnings"))
	fmt.Fprintf(&b, "| **Brand Files** | %d |\n", result.SourcesLinted)
	fmt.Fprintf(&b, "| **Components** | %d |\n", result.Components)
	fmt.Fprintf(&b, "| **Variants** | %d |\n", result.Variants)
	fmt.Fprintf(&b, "| **Compositions** | %d |\n", result.Compositions)
	b.WriteString("\n")

	if len(result.ByCategory) > 0 {
		b.WriteString("## Components by Category\n\n")
		b.WriteString("| Category | Components |\n")
		b.WriteString("|----------|------------|\n")
		cats := make([]string, 0, len(result.ByCategory))
		for cat := range result.ByCategory {
			cats = append(cats, string(cat))
		}
		sort.Strings(cats)
		for _, cat := range cats {
			fmt.Fprintf(&b, "| %s | %d |\n", cat, result.ByCategory[Category(cat)])
		}
		b.WriteString("\n")
	}

	writeIssueSection(&b, "Errors", result.Issues, SeverityError)
	writeIssueSection(&b, "Warnings", result.Issues, SeverityWarning)

	if len(result.Issues) == 0 {
		b.WriteString("## Result\n\nNo issues found.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeIssueSection(b *strings.Builder, title string, issues []Issue, severity string) {
	var matching []Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			matching = append(matching, issue)
		}
	}
	if len(matching) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	for _, issue := range matching {
		fmt.Fprintf(b, "- `%s:%d:%d` %s (%s)\n", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, issue.Text, issue.FromLinter)
	}
	b.WriteString("\n")
}
