package syntax

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitializedParser(t *testing.T) *Parser {
	t.Helper()
	p := NewParser()
	require.NoError(t, p.Init(context.Background()))
	t.Cleanup(p.Close)
	return p
}

func TestParserInit(t *testing.T) {
	t.Run("parse before init fails", func(t *testing.T) {
		p := NewParser()
		_, err := p.Parse([]byte("const x = 1;"))
		require.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("init is idempotent", func(t *testing.T) {
		p := NewParser()
		t.Cleanup(p.Close)

		require.NoError(t, p.Init(context.Background()))
		require.NoError(t, p.Init(context.Background()))
		assert.True(t, p.Initialized())

		tree, err := p.Parse([]byte("const x = 1;"))
		require.NoError(t, err)
		defer tree.Close()
		assert.Equal(t, "program", tree.Root().Kind())
	})

	t.Run("init honors cancelled context", func(t *testing.T) {
		p := NewParser()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, p.Init(ctx))
		assert.False(t, p.Initialized())
	})
}

func TestParserParse(t *testing.T) {
	p := newInitializedParser(t)

	t.Run("parses typescript", func(t *testing.T) {
		tree, err := p.Parse([]byte("function get(id: string): void {}\n"))
		require.NoError(t, err)
		defer tree.Close()

		root := tree.Root()
		assert.Equal(t, "program", root.Kind())
		require.Positive(t, root.NamedChildCount())
		assert.Equal(t, "function_declaration", root.NamedChild(0).Kind())
	})

	t.Run("parses tsx", func(t *testing.T) {
		tree, err := p.Parse([]byte("const el = <div id=\"a\">hello</div>;\n"))
		require.NoError(t, err)
		defer tree.Close()
		assert.Equal(t, "program", tree.Root().Kind())
	})

	t.Run("malformed input yields a recovery tree, not an error", func(t *testing.T) {
		tree, err := p.Parse([]byte("function ((((\n"))
		require.NoError(t, err)
		defer tree.Close()
		assert.Equal(t, "program", tree.Root().Kind())
	})
}

func TestNodeAccessors(t *testing.T) {
	p := newInitializedParser(t)

	source := "import { task } from '@/domain/task';\n"
	tree, err := p.Parse([]byte(source))
	require.NoError(t, err)
	defer tree.Close()

	imp := tree.Root().NamedChild(0)
	require.NotNil(t, imp)
	require.Equal(t, "import_statement", imp.Kind())

	t.Run("positions are 1-based", func(t *testing.T) {
		assert.Equal(t, 1, imp.StartLine())
		assert.Equal(t, 1, imp.StartColumn())
	})

	t.Run("text slices the source", func(t *testing.T) {
		assert.Equal(t, "import { task } from '@/domain/task';", imp.Text())
	})

	t.Run("child by field", func(t *testing.T) {
		src := imp.ChildByField("source")
		require.NotNil(t, src)
		assert.Equal(t, "'@/domain/task'", src.Text())
	})

	t.Run("missing field is nil", func(t *testing.T) {
		assert.Nil(t, imp.ChildByField("nonexistent"))
	})

	t.Run("parent navigation", func(t *testing.T) {
		src := imp.ChildByField("source")
		require.NotNil(t, src.Parent())
		assert.Equal(t, "import_statement", src.Parent().Kind())
	})

	t.Run("out of range children are nil", func(t *testing.T) {
		assert.Nil(t, imp.Child(-1))
		assert.Nil(t, imp.Child(imp.ChildCount()))
		assert.Nil(t, imp.NamedChild(imp.NamedChildCount()))
	})
}

func TestWalk(t *testing.T) {
	p := newInitializedParser(t)

	tree, err := p.Parse([]byte("const x = 1;\n"))
	require.NoError(t, err)
	defer tree.Close()

	t.Run("pre-order visits parents before children", func(t *testing.T) {
		var kinds []string
		Walk(tree.Root(), func(n *Node) {
			kinds = append(kinds, n.Kind())
		})

		require.NotEmpty(t, kinds)
		assert.Equal(t, "program", kinds[0])
		assert.Contains(t, kinds, "lexical_declaration")
		assert.Contains(t, kinds, "variable_declarator")
	})

	t.Run("visits anonymous tokens too", func(t *testing.T) {
		var sawAnonymous bool
		Walk(tree.Root(), func(n *Node) {
			if !n.IsNamed() {
				sawAnonymous = true
			}
		})
		assert.True(t, sawAnonymous)
	})
}
