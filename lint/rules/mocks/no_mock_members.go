package mocks

import (
	"fmt"

	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/syntax"
)

// DefaultForbiddenMembers are the mock-configuration properties flagged by
// default.
var DefaultForbiddenMembers = []string{
	"mockImplementation",
	"mockReturnValue",
	"mockResolvedValue",
	"mockRejectedValue",
}

// NoMockMembersRule flags member accesses that configure mock behaviour.
// Only statically named accesses carry a resolvable property name; computed
// access like obj[expr] is a subscript in the grammar and never matches.
type NoMockMembersRule struct {
	forbidden []string
}

// NewNoMockMembersRule creates the rule. An empty list falls back to the
// defaults.
func NewNoMockMembersRule(forbidden ...string) *NoMockMembersRule {
	if len(forbidden) == 0 {
		forbidden = DefaultForbiddenMembers
	}
	return &NoMockMembersRule{forbidden: forbidden}
}

// Name returns the unique identifier for this rule.
func (r *NoMockMembersRule) Name() string {
	return "no-mock-members"
}

// Description returns a human-readable description of what this rule checks.
func (r *NoMockMembersRule) Description() string {
	return "Forbids configuring mock behaviour through mockImplementation and friends"
}

// Check flags member expressions with a forbidden statically named property.
func (r *NoMockMembersRule) Check(node *syntax.Node, filePath string) *lint.Issue {
	if node.Kind() != "member_expression" {
		return nil
	}
	property := node.ChildByField("property")
	if property == nil || property.Kind() != "property_identifier" {
		return nil
	}
	name := property.Text()
	for _, forbidden := range r.forbidden {
		if name == forbidden {
			msg := fmt.Sprintf(".%s is forbidden; inject a real implementation or a hand-written fake instead of mocking", name)
			return lint.NewIssue(r.Name(), lint.SeverityError, msg, filePath, node)
		}
	}
	return nil
}
