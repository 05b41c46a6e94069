package lint

import (
	"context"
	"fmt"

	"github.com/Jawfish/archlint/syntax"
)

// ErrNotInitialized is returned by Lint when Init has not completed.
// Calling Lint on an uninitialized Linter is a programmer error and is not
// recovered internally.
var ErrNotInitialized = syntax.ErrNotInitialized

// Linter applies an ordered collection of rules to every node of a parsed
// file. Its only persistent state is the rule list and its parser, both set
// up once and read-only thereafter; each Lint call is independent.
type Linter struct {
	parser *syntax.Parser
	rules  []Rule
}

// New creates a Linter with its own parser instance. Init must complete
// before the first Lint call.
func New() *Linter {
	return &Linter{parser: syntax.NewParser()}
}

// Init loads the grammar. It is idempotent: calls after the first
// successful completion are no-ops.
func (l *Linter) Init(ctx context.Context) error {
	return l.parser.Init(ctx)
}

// AddRule appends a rule to the ordered rule list. There is no
// de-duplication; a rule registered twice runs twice.
func (l *Linter) AddRule(rule Rule) {
	l.rules = append(l.rules, rule)
}

// RuleNames returns the names of the registered rules in registration order.
func (l *Linter) RuleNames() []string {
	names := make([]string, len(l.rules))
	for i, r := range l.rules {
		names[i] = r.Name()
	}
	return names
}

// Lint parses source and applies every registered rule at every node of the
// resulting tree, in pre-order. Issue order is deterministic: traversal
// order first, registration order within a node. Fails fast with
// ErrNotInitialized when Init has not completed.
func (l *Linter) Lint(filePath string, source []byte) ([]Issue, error) {
	tree, err := l.parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("lint %s: %w", filePath, err)
	}
	defer tree.Close()

	var issues []Issue
	syntax.Walk(tree.Root(), func(node *syntax.Node) {
		for _, rule := range l.rules {
			if issue := rule.Check(node, filePath); issue != nil {
				issues = append(issues, *issue)
			}
		}
	})
	return issues, nil
}

// Close releases the parser. The Linter must not be used after Close.
func (l *Linter) Close() {
	l.parser.Close()
}
