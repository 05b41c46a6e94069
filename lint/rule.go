// Package lint provides a rule-based linting engine for TSX syntax trees.
// It enables teams to enforce architectural and testing conventions through
// composable linting rules applied to every node of a parsed file.
package lint

import (
	"github.com/Jawfish/archlint/syntax"
)

// Rule defines the interface that all linting rules must implement.
// Rules are pure functions of (node, file path) plus whatever configuration
// they captured at construction time; they hold no mutable state across
// invocations and emit at most one issue per node.
type Rule interface {
	// Name returns a unique identifier for the rule.
	// This should be a kebab-case string like "domain-dependencies".
	Name() string

	// Description returns a human-readable description of what the rule
	// checks.
	Description() string

	// Check examines one node of the file at filePath and returns the issue
	// found, or nil when the node is clean. The engine calls Check for every
	// node in the tree; rules filter to the node kinds they care about.
	Check(node *syntax.Node, filePath string) *Issue
}
