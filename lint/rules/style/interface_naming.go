// Package style provides style-related linting rules.
// These rules enforce consistent naming conventions.
package style

import (
	"fmt"
	"regexp"

	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/syntax"
)

// hungarianPrefix matches interface names like IUserService.
var hungarianPrefix = regexp.MustCompile(`^I[A-Z]`)

// InterfaceNamingRule flags interface names carrying a Hungarian "I"
// prefix. The convention is to name interfaces after the capability, not
// the kind of declaration.
type InterfaceNamingRule struct{}

// NewInterfaceNamingRule creates a new interface naming rule.
func NewInterfaceNamingRule() *InterfaceNamingRule {
	return &InterfaceNamingRule{}
}

// Name returns the unique identifier for this rule.
func (r *InterfaceNamingRule) Name() string {
	return "interface-naming"
}

// Description returns a human-readable description of what this rule checks.
func (r *InterfaceNamingRule) Description() string {
	return "Forbids the Hungarian 'I' prefix on interface names"
}

// Check flags interface declarations whose name starts with the prefix.
func (r *InterfaceNamingRule) Check(node *syntax.Node, filePath string) *lint.Issue {
	if node.Kind() != "interface_declaration" {
		return nil
	}
	name := node.ChildByField("name")
	if name == nil {
		return nil
	}
	if !hungarianPrefix.MatchString(name.Text()) {
		return nil
	}
	msg := fmt.Sprintf("interface %q uses a Hungarian prefix; name it after the capability instead", name.Text())
	return lint.NewIssue(r.Name(), lint.SeverityWarning, msg, filePath, name)
}
