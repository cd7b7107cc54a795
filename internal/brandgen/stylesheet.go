package brandgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ExportHoverDarkenPercent is how much darker the exported --brand-*-hover
// custom properties are than the brand colors.
const ExportHoverDarkenPercent = 25

// Stylesheet is CSS text with the name it was read from
type Stylesheet struct {
	Filename string
	Content  string
}

// ReadStylesheet loads a stylesheet from disk
func ReadStylesheet(path string) (*Stylesheet, error) {
	// #nosec G304 - path comes from the command line
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return &Stylesheet{Filename: path, Content: string(content)}, nil
}

// CustomProperty is a --name: value declaration
type CustomProperty struct {
	Name   string
	Value  string
	Line   int // 1-based, 0 when generated
	Column int
}

// BrandCustomProperties returns the custom properties a stylesheet must
// declare for cfg, in declaration order.
func BrandCustomProperties(cfg BrandConfig) []CustomProperty {
	colors := []struct {
		name string
		hex  string
	}{
		{"primary", cfg.PrimaryColor},
		{"secondary", cfg.SecondaryColor},
		{"accent", cfg.AccentColor},
	}

	props := make([]CustomProperty, 0, len(colors)*3)
	for _, c := range colors {
		props = append(props, CustomProperty{Name: "--brand-" + c.name, Value: strings.ToLower(c.hex)})
	}
	for _, c := range colors {
		props = append(props, CustomProperty{Name: "--brand-" + c.name + "-hover", Value: Darken(c.hex, ExportHoverDarkenPercent)})
	}
	for _, c := range colors {
		props = append(props, CustomProperty{Name: "--brand-" + c.name + "-text", Value: strings.ToLower(c.hex)})
	}
	return props
}

// ParseCustomProperties extracts every custom property declaration from
// CSS content. Later declarations of the same name win.
func ParseCustomProperties(content string) []CustomProperty {
	lexer := css.NewLexer(parse.NewInputString(content))
	pos := newPositionTracker(content)

	var props []CustomProperty
	var pending CustomProperty
	var value strings.Builder
	inValue, awaitingColon := false, false

	flush := func() {
		if inValue {
			pending.Value = strings.TrimSpace(value.String())
			props = append(props, pending)
		}
		inValue = false
		value.Reset()
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		line, col := pos.advance(len(text))

		switch {
		case inValue:
			switch tt {
			case css.SemicolonToken, css.RightBraceToken:
				flush()
			case css.CommentToken:
			default:
				value.Write(text)
			}

		case awaitingColon:
			if tt == css.WhitespaceToken || tt == css.CommentToken {
				continue
			}
			// var(--name) references are not declarations
			awaitingColon = false
			inValue = tt == css.ColonToken

		case tt != css.CommentToken && strings.HasPrefix(string(text), "--"):
			pending = CustomProperty{Name: string(text), Line: line, Column: col}
			awaitingColon = true
		}
	}
	flush()

	return props
}

// positionTracker converts consumed byte counts into line/column pairs.
type positionTracker struct {
	content string
	offset  int
	line    int
	col     int
}

func newPositionTracker(content string) *positionTracker {
	return &positionTracker{content: content, line: 1, col: 1}
}

// advance returns the position of the token starting at the current offset
// and moves past n bytes.
func (p *positionTracker) advance(n int) (int, int) {
	line, col := p.line, p.col
	end := p.offset + n
	if end > len(p.content) {
		end = len(p.content)
	}
	for _, ch := range p.content[p.offset:end] {
		if ch == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
	}
	p.offset = end
	return line, col
}

// LintStylesheet checks that sheet declares every brand custom property of
// cfg with the expected value.
func LintStylesheet(sheet Stylesheet, cfg BrandConfig) []Issue {
	declared := make(map[string]CustomProperty)
	for _, prop := range ParseCustomProperties(sheet.Content) {
		declared[prop.Name] = prop
	}
	lines := strings.Split(sheet.Content, "\n")

	var issues []Issue
	for _, want := range BrandCustomProperties(cfg) {
		got, ok := declared[want.Name]
		if !ok {
			issues = append(issues, Issue{
				FromLinter: LinterStylesheet,
				Text:       fmt.Sprintf(IssueMissingProperty, want.Name),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: sheet.Filename, Line: 1, Column: 1},
			})
			continue
		}

		var source []string
		if got.Line > 0 && got.Line <= len(lines) {
			source = []string{lines[got.Line-1]}
		}

		if !IsHexColor(got.Value) {
			issues = append(issues, Issue{
				FromLinter:  LinterStylesheet,
				Text:        fmt.Sprintf(IssueInvalidProperty, want.Name, got.Value),
				Severity:    SeverityError,
				SourceLines: source,
				Pos:         IssuePos{Filename: sheet.Filename, Line: got.Line, Column: got.Column},
			})
			continue
		}

		if !strings.EqualFold(got.Value, want.Value) {
			issues = append(issues, Issue{
				FromLinter:  LinterStylesheet,
				Text:        fmt.Sprintf(IssueMismatchedProperty, want.Name, got.Value, want.Value),
				Severity:    SeverityWarning,
				SourceLines: source,
				Pos:         IssuePos{Filename: sheet.Filename, Line: got.Line, Column: got.Column},
				Replacement: &Replacement{NewText: want.Value, InlineLength: len(got.Value)},
			})
		}
	}

	return issues
}
