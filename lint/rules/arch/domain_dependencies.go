package arch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jawfish/archlint/config"
	"github.com/Jawfish/archlint/lint"
	"github.com/Jawfish/archlint/syntax"
)

// DomainDependenciesRule restricts imports between domain folders to the
// edges declared in the configuration. A domain may always import from
// itself; a domain with no configuration entry may import from no other
// domain at all.
type DomainDependenciesRule struct {
	cfg config.DomainDependencies

	// pathPattern extracts the domain segment from a file path,
	// aliasPattern from an import source literal.
	pathPattern  *regexp.Regexp
	aliasPattern *regexp.Regexp
	// aliasGuard is the alias's leading segment, checked before the full
	// pattern match.
	aliasGuard string
}

// NewDomainDependenciesRule creates the rule from its configuration.
func NewDomainDependenciesRule(cfg config.DomainDependencies) *DomainDependenciesRule {
	guard := cfg.ImportAlias
	if i := strings.Index(guard, "/"); i >= 0 {
		guard = guard[:i]
	}
	return &DomainDependenciesRule{
		cfg:          cfg,
		pathPattern:  regexp.MustCompile(regexp.QuoteMeta(normalizePath(cfg.DomainPath)) + `/([^/]+)`),
		aliasPattern: regexp.MustCompile(regexp.QuoteMeta(cfg.ImportAlias) + `/([^/]+)`),
		aliasGuard:   guard,
	}
}

// Name returns the unique identifier for this rule.
func (r *DomainDependenciesRule) Name() string {
	return "domain-dependencies"
}

// Description returns a human-readable description of what this rule checks.
func (r *DomainDependenciesRule) Description() string {
	return "Restricts imports between domain folders to the configured dependency graph"
}

// Check flags an import statement whose source crosses a domain boundary
// the configuration does not allow.
func (r *DomainDependenciesRule) Check(node *syntax.Node, filePath string) *lint.Issue {
	if node.Kind() != "import_statement" || isTestFile(filePath) {
		return nil
	}

	from, ok := r.importingDomain(filePath)
	if !ok {
		return nil
	}
	to, ok := r.importedDomain(node)
	if !ok {
		return nil
	}
	if from == to {
		return nil
	}

	allowed := r.cfg.Dependencies[from] // absent entry: nothing is allowed
	for _, dep := range allowed {
		if dep == config.Wildcard || dep == to {
			return nil
		}
	}

	list := "none"
	if len(allowed) > 0 {
		list = strings.Join(allowed, ", ")
	}
	msg := fmt.Sprintf("domain %q cannot import from domain %q (allowed: [%s])", from, to, list)
	return lint.NewIssue(r.Name(), lint.SeverityError, msg, filePath, node)
}

// importingDomain derives the domain a file belongs to from its path.
// Files outside the domain path, and domain-root infrastructure files, are
// not subject to dependency checks. The first segment after the domain path
// identifies the domain; deeper segments belong to the same domain.
func (r *DomainDependenciesRule) importingDomain(filePath string) (string, bool) {
	match := r.pathPattern.FindStringSubmatch(normalizePath(filePath))
	if match == nil {
		return "", false
	}
	if r.isRootFile(match[1]) {
		return "", false
	}
	return match[1], true
}

// importedDomain derives the target domain from the import statement's
// source literal. Imports that do not use the domain alias are not domain
// imports.
func (r *DomainDependenciesRule) importedDomain(node *syntax.Node) (string, bool) {
	source := node.ChildByField("source")
	if source == nil {
		return "", false
	}
	literal := strings.Trim(source.Text(), `"'`)
	if !strings.HasPrefix(literal, r.aliasGuard) {
		return "", false
	}
	match := r.aliasPattern.FindStringSubmatch(literal)
	if match == nil {
		return "", false
	}
	if r.isRootFile(match[1]) {
		return "", false
	}
	return match[1], true
}

func (r *DomainDependenciesRule) isRootFile(segment string) bool {
	for _, root := range r.cfg.RootFiles {
		if segment == root {
			return true
		}
	}
	return false
}
