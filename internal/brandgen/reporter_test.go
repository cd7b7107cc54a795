package brandgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "    --brand-primary: #3b82f6;",
			column:     5,
			want:       "    ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t--brand-accent: #f59e0b;",
			column:     19,
			want:       "\t\t" + "                ^", // 2 tabs + 16 spaces
		},
		{
			name:       "class string",
			sourceLine: "rounded-lg px-4 rounded-full",
			column:     17,
			want:       "                ^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printLinterName: true}

	reporter.PrintIssues([]Issue{
		{FromLinter: LinterStylesheet, Text: "second", Severity: SeverityWarning, Pos: IssuePos{Filename: "b.css", Line: 2, Column: 1}},
		{
			FromLinter:  LinterLibrary,
			Text:        "first",
			Severity:    SeverityError,
			SourceLines: []string{"rounded-lg rounded-full"},
			Pos:         IssuePos{Filename: "a.yaml[Chip.variant.pill]", Line: 1, Column: 12},
		},
	})

	assert.Equal(t,
		"a.yaml[Chip.variant.pill]:1:12: first (library)\n"+
			"\trounded-lg rounded-full\n"+
			"\t           ^\n"+
			"b.css:2:1: second (stylesheet)\n",
		buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   []string
	}{
		{
			name:   "clean",
			result: LintResult{SourcesLinted: 1},
			want:   []string{"0 issues in 1 brand file."},
		},
		{
			name: "errors only",
			result: LintResult{Issues: []Issue{
				{FromLinter: LinterLibrary, Severity: SeverityError},
				{FromLinter: LinterLibrary, Severity: SeverityError},
			}},
			want: []string{"2 issues:", "* library: 2", "Hint: Run with --output-format full"},
		},
		{
			name: "mixed and truncated",
			result: LintResult{
				Issues: []Issue{
					{FromLinter: LinterLibrary, Severity: SeverityError},
					{FromLinter: LinterStylesheet, Severity: SeverityWarning},
				},
				TruncatedCount: 1,
			},
			want: []string{"2 issues (1 error, 1 warning; 1 issue truncated):", "* library: 1", "* stylesheet: 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			(&Reporter{w: &buf}).PrintSummary(tt.result)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestShouldUseColors(t *testing.T) {
	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "3 brand files", pluralizeCount(3, "brand file", "brand files"))
}
