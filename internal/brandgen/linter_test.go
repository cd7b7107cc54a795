package brandgen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintLibraryIsCleanForEveryPersonality(t *testing.T) {
	personalities := []Personality{
		PersonalityProfessional, PersonalityPlayful, PersonalityMinimal,
		PersonalityBold, PersonalityMagical, PersonalityFuturistic,
	}
	shadows := []ShadowStyle{ShadowNone, ShadowSubtle, ShadowProminent}

	for _, p := range personalities {
		for _, s := range shadows {
			t.Run(fmt.Sprintf("%s/%s", p, s), func(t *testing.T) {
				cfg := acmeConfig()
				cfg.BrandPersonality = p
				cfg.ShadowStyle = s

				issues := LintLibrary("acme.yaml", Assemble(cfg), true)
				assert.Empty(t, issues)
			})
		}
	}
}

func TestLintLibraryBroken(t *testing.T) {
	lib := Assemble(acmeConfig())
	delete(lib.Components, "Button")
	lib.Components["Carousel"] = ComponentData{
		Name: "Carousel",
		VariantConfig: VariantConfig{
			Variants:        VariantAxes{Variant: map[string]string{"a": "bg-{{NOPE}} text-white"}},
			DefaultVariants: DefaultVariants{Variant: "b"},
		},
	}

	issues := LintLibrary("broken.yaml", lib, false)

	type summary struct {
		Text     string
		Severity string
		File     string
		Column   int
	}
	got := make([]summary, len(issues))
	for i, issue := range issues {
		got[i] = summary{issue.Text, issue.Severity, issue.Pos.Filename, issue.Pos.Column}
	}

	assert.Equal(t, []summary{
		{`component "Button" is missing from the library`, SeverityError, "broken.yaml", 1},
		{`component "Carousel" is not in the catalog`, SeverityWarning, "broken.yaml", 1},
		{`component "Carousel" has no base classes`, SeverityWarning, "broken.yaml[Carousel.base]", 1},
		{`unresolved placeholder "{{NOPE}}"`, SeverityError, "broken.yaml[Carousel.variant.a]", 4},
		{`default variant "b" is not defined`, SeverityError, "broken.yaml[Carousel.variant]", 1},
	}, got)
}

func TestLintLibraryMissingDefaultSize(t *testing.T) {
	lib := Assemble(acmeConfig())
	card := lib.Components["Card"]
	card.VariantConfig.DefaultVariants.Size = "xxl"
	lib.Components["Card"] = card

	issues := LintLibrary("acme.yaml", lib, false)
	require.Len(t, issues, 1)
	assert.Equal(t, `default size "xxl" is not defined`, issues[0].Text)
	assert.Equal(t, "acme.yaml[Card.size]", issues[0].Pos.Filename)
}

func TestLintConflicts(t *testing.T) {
	vc := VariantConfig{
		BaseClasses: "rounded-lg px-4 hover:shadow-lg",
		Variants: VariantAxes{
			Variant: map[string]string{"pill": "rounded-full shadow-sm"},
			Size:    map[string]string{"md": "px-6"},
		},
		DefaultVariants: DefaultVariants{Variant: "pill", Size: "md"},
	}

	issues := lintConflicts("x.yaml", "Chip", vc)
	require.Len(t, issues, 2)

	assert.Equal(t, `"rounded-full" overrides "rounded-lg" in variant pill, size md`, issues[0].Text)
	assert.Equal(t, strings.Index(issues[0].SourceLines[0], "rounded-full")+1, issues[0].Pos.Column)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "x.yaml[Chip.variant.pill]", issues[0].Pos.Filename)

	assert.Equal(t, `"px-6" overrides "px-4" in variant pill, size md`, issues[1].Text)
}

func TestLint(t *testing.T) {
	lib := Assemble(acmeConfig())
	sheet := &Stylesheet{Filename: "globals.css", Content: renderBrandBlock(BrandCustomProperties(acmeConfig()))}

	result := Lint(LintConfig{CheckConflicts: true}, []LintInput{
		{Source: "acme.yaml", Library: lib, Stylesheet: sheet},
		{Source: "empty.yaml"},
	})

	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.ErrorCount())
	assert.Equal(t, 1, result.SourcesLinted)
	assert.Equal(t, 12, result.Components)
	assert.Equal(t, 53, result.Variants)
	assert.Equal(t, 39, result.Sizes)
	assert.Equal(t, 177, result.Compositions)
	assert.Equal(t, 6, result.ByCategory[CategoryForms])
	assert.Equal(t, 1, result.ByCategory[CategoryInteractive])
	assert.NotZero(t, result.UtilityMix[CategoryVisual])
	assert.Equal(t, []string{"empty.yaml: no library to lint"}, result.Warnings)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: LinterLibrary, Text: "a"},
		{FromLinter: LinterLibrary, Text: "a"},
		{FromLinter: LinterLibrary, Text: "b"},
		{FromLinter: LinterStylesheet, Text: "a"},
		{FromLinter: LinterStylesheet, Text: "c"},
	}

	t.Run("no limits", func(t *testing.T) {
		kept, truncated := limitIssues(issues, LintConfig{})
		assert.Len(t, kept, 5)
		assert.Zero(t, truncated)
	})

	t.Run("per linter", func(t *testing.T) {
		kept, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 2})
		assert.Len(t, kept, 4)
		assert.Equal(t, 1, truncated)
	})

	t.Run("same text", func(t *testing.T) {
		kept, truncated := limitIssues(issues, LintConfig{MaxSameIssues: 1})
		assert.Equal(t, []Issue{issues[0], issues[2], issues[4]}, kept)
		assert.Equal(t, 2, truncated)
	})
}

func TestPrintProgressBar(t *testing.T) {
	var buf bytes.Buffer
	printProgressBar(&buf, 50)
	assert.Equal(t, "["+strings.Repeat("█", 10)+strings.Repeat("░", 10)+"]  50.0%", buf.String())
}

func renderBrandBlock(props []CustomProperty) string {
	var b strings.Builder
	b.WriteString("@layer base {\n  :root {\n")
	for _, p := range props {
		fmt.Fprintf(&b, "    %s: %s;\n", p.Name, p.Value)
	}
	b.WriteString("  }\n}\n")
	return b.String()
}
