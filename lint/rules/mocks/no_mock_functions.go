// Package mocks bans the mock-based testing APIs. The team tests against
// real implementations and injected fakes; jest/vitest module mocking is
// not allowed anywhere in the tree.
package mocks

import (
	"fmt"

	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/syntax"
)

// DefaultForbiddenCalls are the mocking entry points flagged by default.
var DefaultForbiddenCalls = []string{"jest.mock", "jest.spyOn", "vi.mock", "vi.spyOn"}

// NoMockFunctionsRule flags calls to the mocking APIs by exact qualified
// name.
type NoMockFunctionsRule struct {
	forbidden []string
}

// NewNoMockFunctionsRule creates the rule. An empty list falls back to the
// defaults.
func NewNoMockFunctionsRule(forbidden ...string) *NoMockFunctionsRule {
	if len(forbidden) == 0 {
		forbidden = DefaultForbiddenCalls
	}
	return &NoMockFunctionsRule{forbidden: forbidden}
}

// Name returns the unique identifier for this rule.
func (r *NoMockFunctionsRule) Name() string {
	return "no-mock-functions"
}

// Description returns a human-readable description of what this rule checks.
func (r *NoMockFunctionsRule) Description() string {
	return "Forbids jest/vitest mocking calls; test against real implementations instead"
}

// Check flags call expressions whose callee text exactly matches a
// forbidden qualified name.
func (r *NoMockFunctionsRule) Check(node *syntax.Node, filePath string) *lint.Issue {
	if node.Kind() != "call_expression" {
		return nil
	}
	callee := node.ChildByField("function")
	if callee == nil {
		return nil
	}
	qualified := callee.Text()
	for _, name := range r.forbidden {
		if qualified == name {
			msg := fmt.Sprintf("%s is forbidden; inject a real implementation or a hand-written fake instead of mocking", name)
			return lint.NewIssue(r.Name(), lint.SeverityError, msg, filePath, node)
		}
	}
	return nil
}
