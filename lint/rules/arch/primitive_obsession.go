package arch

import (
	"fmt"
	"strings"

	"github.com/Jawfish/archlint/config"
	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/syntax"
)

// functionKinds are the three syntactic shapes whose parameters the rule
// inspects.
var functionKinds = map[string]bool{
	"function_declaration": true,
	"arrow_function":       true,
	"method_definition":    true,
}

// PrimitiveObsessionRule flags function parameters typed with a bare
// primitive inside the enforced paths. Parameters carrying a branded
// (named) type, unannotated parameters and exempt names pass. Only the
// first violating parameter of a function is reported, which keeps the
// noise per function down to one finding.
type PrimitiveObsessionRule struct {
	cfg config.NoPrimitiveObsession
}

// NewPrimitiveObsessionRule creates the rule from its configuration.
func NewPrimitiveObsessionRule(cfg config.NoPrimitiveObsession) *PrimitiveObsessionRule {
	return &PrimitiveObsessionRule{cfg: cfg}
}

// Name returns the unique identifier for this rule.
func (r *PrimitiveObsessionRule) Name() string {
	return "no-primitive-obsession"
}

// Description returns a human-readable description of what this rule checks.
func (r *PrimitiveObsessionRule) Description() string {
	return "Requires branded types instead of bare primitives for parameters in the domain layer"
}

// Check inspects the parameter list of a function-shaped node.
func (r *PrimitiveObsessionRule) Check(node *syntax.Node, filePath string) *lint.Issue {
	if !functionKinds[node.Kind()] || isTestFile(filePath) {
		return nil
	}

	path := normalizePath(filePath)
	if !r.enforced(path) || r.exempt(path) {
		return nil
	}

	params := node.ChildByField("parameters")
	if params == nil || params.Kind() != "formal_parameters" {
		// Unparenthesized arrow shorthand binds a single bare identifier,
		// which cannot carry a type annotation.
		return nil
	}

	for i := 0; i < params.NamedChildCount(); i++ {
		param := params.NamedChild(i)
		switch param.Kind() {
		case "required_parameter", "optional_parameter":
		default:
			continue
		}

		// Rest parameters and destructuring patterns bind something other
		// than a plain identifier and cannot carry a primitive violation.
		pattern := param.ChildByField("pattern")
		if pattern == nil || pattern.Kind() != "identifier" {
			continue
		}
		name := pattern.Text()
		if r.exemptParam(name) {
			continue
		}

		annotation := param.ChildByField("type")
		if annotation == nil {
			continue
		}
		typeNode := underlyingType(annotation)
		if typeNode == nil || typeNode.Kind() != "predefined_type" {
			continue
		}
		primitive := typeNode.Text()
		if !r.primitive(primitive) {
			continue
		}

		msg := fmt.Sprintf(
			"parameter %q is typed with primitive %q; use a branded type (e.g. %q) or an exempt parameter name (%s)",
			name, primitive, brandedName(name), strings.Join(r.cfg.ExemptParams, ", "))
		return lint.NewIssue(r.Name(), lint.SeverityError, msg, filePath, param)
	}
	return nil
}

func (r *PrimitiveObsessionRule) enforced(path string) bool {
	for _, prefix := range r.cfg.EnforcedPaths {
		if strings.Contains(path, prefix) {
			return true
		}
	}
	return false
}

func (r *PrimitiveObsessionRule) exempt(path string) bool {
	for _, pattern := range r.cfg.ExemptPaths {
		if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
			if strings.HasSuffix(path, suffix) {
				return true
			}
			continue
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

func (r *PrimitiveObsessionRule) exemptParam(name string) bool {
	for _, exempt := range r.cfg.ExemptParams {
		if name == exempt {
			return true
		}
	}
	return false
}

func (r *PrimitiveObsessionRule) primitive(name string) bool {
	for _, p := range r.cfg.Primitives {
		if name == p {
			return true
		}
	}
	return false
}

// underlyingType returns the type node inside a type_annotation.
func underlyingType(annotation *syntax.Node) *syntax.Node {
	if annotation.NamedChildCount() == 0 {
		return nil
	}
	return annotation.NamedChild(0)
}

// brandedName suggests a branded type name for a parameter: the parameter
// name with its first letter capitalized.
func brandedName(param string) string {
	if param == "" {
		return ""
	}
	return strings.ToUpper(param[:1]) + param[1:]
}
