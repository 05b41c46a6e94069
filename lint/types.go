package lint

import (
	"fmt"

	"github.com/Jawfish/archlint/syntax"
)

// Severity represents the severity level of a linting issue.
type Severity int

const (
	// SeverityError indicates a convention violation that should block merges.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be addressed.
	SeverityWarning
	// SeverityInfo indicates a suggestion or style improvement.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// Issue represents a single linting issue found in a source file.
// Issues are never mutated after creation; Line and Column are 1-based.
type Issue struct {
	// Rule is the identifier of the rule that found this issue.
	Rule string `json:"rule"`
	// Severity indicates the importance level of the issue.
	Severity Severity `json:"severity"`
	// Message is a human-readable description of the issue.
	Message string `json:"message"`
	// File is the path of the file the issue was found in.
	File string `json:"file"`
	// Line is the 1-based line where the issue occurs.
	Line int `json:"line"`
	// Column is the 1-based column where the issue occurs.
	Column int `json:"column"`
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	return fmt.Sprintf("%s:%d:%d [%s] %s", i.File, i.Line, i.Column, i.Rule, i.Message)
}

// IsValid checks if the issue has all required fields.
func (i Issue) IsValid() bool {
	return i.Rule != "" && i.Message != "" && i.File != "" && i.Line >= 1 && i.Column >= 1
}

// NewIssue creates an Issue positioned at the start of node.
func NewIssue(rule string, severity Severity, message, file string, node *syntax.Node) *Issue {
	return &Issue{
		Rule:     rule,
		Severity: severity,
		Message:  message,
		File:     file,
		Line:     node.StartLine(),
		Column:   node.StartColumn(),
	}
}
