// Package syntax wraps the tree-sitter TSX grammar behind a small parser and
// node API tailored to linting. The grammar is fixed: every source file is
// parsed as TSX, the JSX-capable TypeScript dialect, so plain TypeScript
// files parse with the same parser instance.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ErrNotInitialized is returned by Parse when Init has not completed.
var ErrNotInitialized = errors.New("syntax: parser not initialized, call Init first")

// Parser turns TSX source text into a traversable syntax tree. A Parser owns
// a single tree-sitter instance that is configured once by Init and reused
// for every subsequent Parse call. Each Parser manages its own grammar
// lifecycle; there is no process-wide shared parser state.
type Parser struct {
	mu          sync.Mutex
	inner       *tree_sitter.Parser
	initialized bool
}

// NewParser creates a parser with no grammar loaded. Init must complete
// before the first Parse.
func NewParser() *Parser {
	return &Parser{}
}

// Init loads the TSX grammar into the parser. The first successful call
// wins; calling Init again afterwards is a no-op.
func (p *Parser) Init(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("syntax: init: %w", err)
	}

	parser := tree_sitter.NewParser()
	lang := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	if err := parser.SetLanguage(lang); err != nil {
		parser.Close()
		return fmt.Errorf("syntax: load TSX grammar: %w", err)
	}

	p.inner = parser
	p.initialized = true
	return nil
}

// Initialized reports whether Init has completed.
func (p *Parser) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Parse parses source into a syntax tree. Malformed input never fails:
// the grammar's error recovery produces ERROR nodes and callers see
// whatever the recovery emitted. The only error is ErrNotInitialized.
func (p *Parser) Parse(source []byte) (*Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrNotInitialized
	}

	tree := p.inner.Parse(source, nil)
	return &Tree{inner: tree, source: source}, nil
}

// Close releases the underlying parser. The Parser must not be used after
// Close.
func (p *Parser) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inner != nil {
		p.inner.Close()
		p.inner = nil
		p.initialized = false
	}
}
