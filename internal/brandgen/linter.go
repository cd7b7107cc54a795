package brandgen

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// LintConfig holds linting configuration
type LintConfig struct {
	Strict         bool // Exit with code 1 on any issue
	CheckConflicts bool // Report utilities that override each other

	// golangci-style configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show the class string with a caret
	PrintLinterName    bool // Show (library) suffix
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintInput is one generated library, optionally with the stylesheet
// exported for it.
type LintInput struct {
	Source     string
	Library    *ComponentLibrary
	Stylesheet *Stylesheet
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	SourcesLinted int
	Components    int
	Variants      int
	Sizes         int
	Compositions  int // variant x size combinations checked
	ByCategory    map[Category]int
	UtilityMix    map[UtilityCategory]int // utilities in the default compositions

	// Issues in golangci-lint format
	Issues         []Issue
	TruncatedCount int // Issues removed due to limits

	Warnings []string
}

// ErrorCount returns the number of error severity issues
func (r *LintResult) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_.]+)\}\}`)

// Lint checks the catalog and every input library, then applies the
// configured issue limits.
func Lint(config LintConfig, inputs []LintInput) *LintResult {
	result := &LintResult{
		ByCategory: make(map[Category]int),
		UtilityMix: make(map[UtilityCategory]int),
	}

	var issues []Issue
	issues = append(issues, LintCatalog()...)

	for _, in := range inputs {
		if in.Library == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: no library to lint", in.Source))
			continue
		}
		result.SourcesLinted++
		issues = append(issues, LintLibrary(in.Source, in.Library, config.CheckConflicts)...)
		if in.Stylesheet != nil {
			issues = append(issues, LintStylesheet(*in.Stylesheet, in.Library.BrandConfig)...)
		}
		collectStats(result, in.Library)
	}

	result.Issues, result.TruncatedCount = limitIssues(issues, config)
	return result
}

func collectStats(result *LintResult, lib *ComponentLibrary) {
	for _, t := range lib.Types() {
		data := lib.Components[t]
		vc := data.VariantConfig
		result.Components++
		result.ByCategory[data.Category]++
		result.Variants += len(vc.Variants.Variant)
		result.Sizes += len(vc.Variants.Size)

		sizes := len(vc.Variants.Size)
		if sizes == 0 {
			sizes = 1
		}
		result.Compositions += len(vc.Variants.Variant) * sizes

		for cat, classes := range CategorizeClasses(ComposeDefault(vc)) {
			result.UtilityMix[cat] += len(classes)
		}
	}
}

// LintCatalog verifies that templates only reference known tokens and that
// every default selection exists.
func LintCatalog() []Issue {
	known := KnownTokens()
	var issues []Issue

	for _, spec := range Catalog() {
		check := func(axis, name, template string) {
			for _, m := range placeholderPattern.FindAllStringSubmatchIndex(template, -1) {
				token := template[m[2]:m[3]]
				if known[token] {
					continue
				}
				issues = append(issues, Issue{
					FromLinter:  LinterCatalog,
					Text:        fmt.Sprintf(IssueUnknownToken, token),
					Severity:    SeverityError,
					SourceLines: []string{template},
					Pos:         IssuePos{Filename: location("catalog", spec.Type, axis, name), Line: 1, Column: m[0] + 1},
				})
			}
		}

		check("base", "", spec.Base)
		issues = append(issues, lintEntries(spec, "variant", spec.Variants, spec.DefaultVariant, check)...)
		if len(spec.Sizes) > 0 || spec.DefaultSize != "" {
			issues = append(issues, lintEntries(spec, "size", spec.Sizes, spec.DefaultSize, check)...)
		}
	}

	return issues
}

func lintEntries(spec ComponentSpec, axis string, entries []Entry, def string, check func(axis, name, template string)) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			issues = append(issues, Issue{
				FromLinter: LinterCatalog,
				Text:       fmt.Sprintf(IssueDuplicateEntry, axis, e.Name),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: location("catalog", spec.Type, axis, e.Name), Line: 1, Column: 1},
			})
		}
		seen[e.Name] = true
		check(axis, e.Name, e.Template)
	}
	if !seen[def] {
		issues = append(issues, Issue{
			FromLinter: LinterCatalog,
			Text:       fmt.Sprintf(IssueMissingDefault, axis, def),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: location("catalog", spec.Type, axis, ""), Line: 1, Column: 1},
		})
	}
	return issues
}

// LintLibrary verifies the invariants of a generated library: the component
// set matches the catalog, no placeholder survived substitution and every
// default selection exists. With checkConflicts it also reports utilities
// that override each other once base, variant and size are composed.
func LintLibrary(source string, lib *ComponentLibrary, checkConflicts bool) []Issue {
	var issues []Issue

	for _, t := range ComponentTypes() {
		if _, ok := lib.Components[t]; !ok {
			issues = append(issues, Issue{
				FromLinter: LinterLibrary,
				Text:       fmt.Sprintf(IssueMissingComponent, t),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: source, Line: 1, Column: 1},
			})
		}
	}

	extra := make([]string, 0)
	for t := range lib.Components {
		if _, ok := Lookup(t); !ok {
			extra = append(extra, t)
		}
	}
	sort.Strings(extra)
	for _, t := range extra {
		issues = append(issues, Issue{
			FromLinter: LinterLibrary,
			Text:       fmt.Sprintf(IssueUnexpectedType, t),
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: source, Line: 1, Column: 1},
		})
	}

	for _, t := range append(lib.Types(), extra...) {
		issues = append(issues, lintVariantConfig(source, t, lib.Components[t].VariantConfig, checkConflicts)...)
	}

	return issues
}

func lintVariantConfig(source, componentType string, vc VariantConfig, checkConflicts bool) []Issue {
	var issues []Issue

	if strings.TrimSpace(vc.BaseClasses) == "" {
		issues = append(issues, Issue{
			FromLinter: LinterLibrary,
			Text:       fmt.Sprintf(IssueEmptyBase, componentType),
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: location(source, componentType, "base", ""), Line: 1, Column: 1},
		})
	}

	unresolved := func(axis, name, classes string) {
		i := strings.Index(classes, "{{")
		if i < 0 {
			return
		}
		token := classes[i:]
		if end := strings.Index(token, "}}"); end >= 0 {
			token = token[:end+2]
		}
		issues = append(issues, Issue{
			FromLinter:  LinterLibrary,
			Text:        fmt.Sprintf(IssueUnresolvedToken, token),
			Severity:    SeverityError,
			SourceLines: []string{classes},
			Pos:         IssuePos{Filename: location(source, componentType, axis, name), Line: 1, Column: i + 1},
		})
	}

	unresolved("base", "", vc.BaseClasses)
	for _, name := range sortedKeys(vc.Variants.Variant) {
		unresolved("variant", name, vc.Variants.Variant[name])
	}
	for _, name := range sortedKeys(vc.Variants.Size) {
		unresolved("size", name, vc.Variants.Size[name])
	}

	if _, ok := vc.Variants.Variant[vc.DefaultVariants.Variant]; !ok {
		issues = append(issues, Issue{
			FromLinter: LinterLibrary,
			Text:       fmt.Sprintf(IssueMissingDefault, "variant", vc.DefaultVariants.Variant),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: location(source, componentType, "variant", ""), Line: 1, Column: 1},
		})
	}
	if vc.Variants.Size != nil || vc.DefaultVariants.Size != "" {
		if _, ok := vc.Variants.Size[vc.DefaultVariants.Size]; !ok {
			issues = append(issues, Issue{
				FromLinter: LinterLibrary,
				Text:       fmt.Sprintf(IssueMissingDefault, "size", vc.DefaultVariants.Size),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: location(source, componentType, "size", ""), Line: 1, Column: 1},
			})
		}
	}

	if checkConflicts {
		issues = append(issues, lintConflicts(source, componentType, vc)...)
	}

	return issues
}

// lintConflicts composes every variant with every size and reports the
// first pair of utilities that write the same property group.
func lintConflicts(source, componentType string, vc VariantConfig) []Issue {
	sizes := sortedKeys(vc.Variants.Size)
	if len(sizes) == 0 {
		sizes = []string{""}
	}

	var issues []Issue
	reported := make(map[string]bool)
	for _, variant := range sortedKeys(vc.Variants.Variant) {
		for _, size := range sizes {
			composed := Compose(vc, variant, size)
			owner := make(map[string]string)
			offset := 0
			for _, class := range strings.Fields(composed) {
				col := strings.Index(composed[offset:], class) + offset
				offset = col + len(class)

				group := conflictGroup(class)
				if group == "" {
					continue
				}
				prev, ok := owner[group]
				if !ok {
					owner[group] = class
					continue
				}
				if prev == class {
					continue
				}
				key := componentType + "|" + prev + "|" + class
				if reported[key] {
					continue
				}
				reported[key] = true

				where := "variant " + variant
				if size != "" {
					where += ", size " + size
				}
				issues = append(issues, Issue{
					FromLinter:  LinterLibrary,
					Text:        fmt.Sprintf(IssueConflictingClasses, class, prev, where),
					Severity:    SeverityWarning,
					SourceLines: []string{composed},
					Pos:         IssuePos{Filename: location(source, componentType, "variant", variant), Line: 1, Column: col + 1},
				})
			}
		}
	}
	return issues
}

// location names a class string for issue output.
func location(source, componentType, axis, name string) string {
	loc := componentType
	if axis != "" {
		loc += "." + axis
	}
	if name != "" {
		loc += "." + name
	}
	return source + "[" + loc + "]"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	fmt.Fprintf(w, "%s] %5.1f%%", b.String(), percentage)
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] >= config.MaxIssuesPerLinter {
				continue
			}
			perLinter[issue.FromLinter]++
			kept = append(kept, issue)
		}
		issues = kept
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
