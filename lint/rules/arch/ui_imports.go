package arch

import (
	"fmt"
	"strings"

	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/syntax"
)

// DefaultUIModules are the vendored UI toolkit packages that must only be
// imported through the wrapper components.
var DefaultUIModules = []string{"antd", "@ant-design"}

// DefaultUIWrapperDir is the directory whose files may import the UI
// toolkit directly.
const DefaultUIWrapperDir = "src/components/ui"

// UIImportsRule forbids importing the vendored UI toolkit anywhere outside
// the wrapper components directory. Everything else goes through the
// wrappers so the toolkit stays replaceable.
type UIImportsRule struct {
	modules    []string
	wrapperDir string
}

// NewUIImportsRule creates the rule. Empty arguments fall back to the
// defaults.
func NewUIImportsRule(modules []string, wrapperDir string) *UIImportsRule {
	if len(modules) == 0 {
		modules = DefaultUIModules
	}
	if wrapperDir == "" {
		wrapperDir = DefaultUIWrapperDir
	}
	return &UIImportsRule{modules: modules, wrapperDir: wrapperDir}
}

// Name returns the unique identifier for this rule.
func (r *UIImportsRule) Name() string {
	return "no-direct-ui-imports"
}

// Description returns a human-readable description of what this rule checks.
func (r *UIImportsRule) Description() string {
	return "Forbids importing the vendored UI toolkit outside the wrapper components directory"
}

// Check flags import statements whose source references a UI toolkit
// module from outside the wrapper directory.
func (r *UIImportsRule) Check(node *syntax.Node, filePath string) *lint.Issue {
	if node.Kind() != "import_statement" {
		return nil
	}
	if strings.Contains(normalizePath(filePath), r.wrapperDir) {
		return nil
	}

	source := node.ChildByField("source")
	if source == nil {
		return nil
	}
	literal := strings.Trim(source.Text(), `"'`)
	for _, module := range r.modules {
		if strings.Contains(literal, module) {
			msg := fmt.Sprintf("import %q goes through the wrappers in %s, not the UI toolkit directly", literal, r.wrapperDir)
			return lint.NewIssue(r.Name(), lint.SeverityError, msg, filePath, node)
		}
	}
	return nil
}
