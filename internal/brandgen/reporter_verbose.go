package brandgen

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter prints library statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs totals across every linted library
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Library Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	fmt.Fprintf(r.w, "Brand Files:   %d\n", result.SourcesLinted)
	fmt.Fprintf(r.w, "Components:    %d\n", result.Components)
	fmt.Fprintf(r.w, "Variants:      %d\n", result.Variants)
	fmt.Fprintf(r.w, "Sizes:         %d\n", result.Sizes)
	fmt.Fprintf(r.w, "Compositions:  %d\n", result.Compositions)
}

// PrintCategories shows how many components fall in each category
func (r *VerboseReporter) PrintCategories(result LintResult) {
	if len(result.ByCategory) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Components by Category", r.useColors))
	fmt.Fprintln(r.w, "----------------------")

	cats := make([]string, 0, len(result.ByCategory))
	for cat := range result.ByCategory {
		cats = append(cats, string(cat))
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(r.w, "%-12s %d\n", cat, result.ByCategory[Category(cat)])
	}
}

// PrintUtilityMix shows the share of each utility category in the default
// compositions, as progress bars.
func (r *VerboseReporter) PrintUtilityMix(result LintResult) {
	total := 0
	for _, n := range result.UtilityMix {
		total += n
	}
	if total == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Utility Mix", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, cat := range []UtilityCategory{CategoryVisual, CategoryLayoutUtil, CategoryTypography, CategoryEffects, CategoryState} {
		n := result.UtilityMix[cat]
		fmt.Fprintf(r.w, "%-11s ", cat)
		printProgressBar(r.w, float64(n)/float64(total)*100)
		fmt.Fprintf(r.w, " (%d)\n", n)
	}
}

// PrintWarnings shows non-issue warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
