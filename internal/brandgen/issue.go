package brandgen

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "catalog", "library", "stylesheet"
	Text        string       `json:"Text"`        // "template references unknown token \"PRIMARY\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Class string or stylesheet line with the issue
	Pos         IssuePos     `json:"Pos"`         // Location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue.
// Generated class strings have no file of their own, so Filename names the
// source and the component axis, e.g. "acme.yaml[Button.variant.primary]",
// with Line 1 and Column pointing into the class string.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Replacement provides an automated fix suggestion
type Replacement struct {
	NewText      string // "#0042b6"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterCatalog    = "catalog"
	LinterLibrary    = "library"
	LinterStylesheet = "stylesheet"
)

// Issue messages
const (
	IssueUnknownToken       = "template references unknown token %q"
	IssueMissingDefault     = "default %s %q is not defined"
	IssueDuplicateEntry     = "%s %q is defined more than once"
	IssueUnresolvedToken    = "unresolved placeholder %q"
	IssueMissingComponent   = "component %q is missing from the library"
	IssueUnexpectedType     = "component %q is not in the catalog"
	IssueEmptyBase          = "component %q has no base classes"
	IssueConflictingClasses = "%q overrides %q in %s"
	IssueMissingProperty    = "custom property %s is not declared"
	IssueInvalidProperty    = "custom property %s is not a #rrggbb color: %q"
	IssueMismatchedProperty = "custom property %s is %q, expected %q"
)
