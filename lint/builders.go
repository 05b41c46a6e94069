package lint

import (
	"github.com/Jawfish/archlint/syntax"
)

// CheckFunc represents a function that checks one node of a file.
// It returns the issue found, or nil if the node is clean.
type CheckFunc func(node *syntax.Node, filePath string) *Issue

// SimpleRule creates a rule from a bare check function. This is the most
// basic rule builder, for rules that inspect every node themselves.
//
//nolint:ireturn // Builder functions should return interfaces
func SimpleRule(name, description string, check CheckFunc) Rule {
	return &simpleRule{
		name:        name,
		description: description,
		check:       check,
	}
}

// simpleRule implements the Rule interface using a CheckFunc.
type simpleRule struct {
	name        string
	description string
	check       CheckFunc
}

// Name returns the unique identifier for this rule.
func (r *simpleRule) Name() string {
	return r.name
}

// Description returns a human-readable description of what this rule checks.
func (r *simpleRule) Description() string {
	return r.description
}

// Check executes the rule's check function and returns the issue found.
func (r *simpleRule) Check(node *syntax.Node, filePath string) *Issue {
	return r.check(node, filePath)
}

// KindRule creates a rule whose check function only runs on nodes of the
// given grammar kind. Most single-purpose rules care about exactly one node
// kind, so this keeps the kind filter out of the check body.
//
//nolint:ireturn // Builder functions should return interfaces
func KindRule(name, description, kind string, check CheckFunc) Rule {
	return &kindRule{
		name:        name,
		description: description,
		kind:        kind,
		check:       check,
	}
}

// kindRule implements the Rule interface for kind-filtered rules.
type kindRule struct {
	name        string
	description string
	kind        string
	check       CheckFunc
}

// Name returns the unique identifier for this rule.
func (r *kindRule) Name() string {
	return r.name
}

// Description returns a human-readable description of what this rule checks.
func (r *kindRule) Description() string {
	return r.description
}

// Check runs the check function when the node matches the configured kind.
func (r *kindRule) Check(node *syntax.Node, filePath string) *Issue {
	if node.Kind() != r.kind {
		return nil
	}
	return r.check(node, filePath)
}
