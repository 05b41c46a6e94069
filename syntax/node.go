package syntax

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Tree is the parsed syntax tree for one file. It keeps the source slice so
// nodes can return their raw text. A Tree and every Node derived from it are
// only valid until Close is called; nodes must not outlive the lint pass
// that produced them.
type Tree struct {
	inner  *tree_sitter.Tree
	source []byte
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return &Node{inner: t.inner.RootNode(), source: t.source}
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.inner.Close()
}

// Node is one node in a parsed tree. It pairs the tree-sitter node with the
// file's source so rules can slice out raw text without carrying the source
// around separately.
type Node struct {
	inner  *tree_sitter.Node
	source []byte
}

// Kind returns the grammar's type tag for this node, such as
// "import_statement" or "call_expression".
func (n *Node) Kind() string {
	return n.inner.Kind()
}

// StartLine returns the 1-based line the node starts on.
func (n *Node) StartLine() int {
	return int(n.inner.StartPosition().Row) + 1
}

// StartColumn returns the 1-based column the node starts on.
func (n *Node) StartColumn() int {
	return int(n.inner.StartPosition().Column) + 1
}

// Text returns the raw source text covered by the node.
func (n *Node) Text() string {
	start, end := n.inner.StartByte(), n.inner.EndByte()
	if int(start) >= len(n.source) || int(end) > len(n.source) {
		return ""
	}
	return string(n.source[start:end])
}

// ChildByField returns the named child bound to a grammar field, such as the
// "source" of an import statement, or nil when the field is absent.
func (n *Node) ChildByField(name string) *Node {
	return n.wrap(n.inner.ChildByFieldName(name))
}

// ChildCount returns the number of children, named and anonymous.
func (n *Node) ChildCount() int {
	return int(n.inner.ChildCount())
}

// Child returns the i-th child in source order, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= n.ChildCount() {
		return nil
	}
	return n.wrap(n.inner.Child(uint(i)))
}

// NamedChildCount returns the number of named children.
func (n *Node) NamedChildCount() int {
	return int(n.inner.NamedChildCount())
}

// NamedChild returns the i-th named child in source order, or nil when out
// of range.
func (n *Node) NamedChild(i int) *Node {
	if i < 0 || i >= n.NamedChildCount() {
		return nil
	}
	return n.wrap(n.inner.NamedChild(uint(i)))
}

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node {
	return n.wrap(n.inner.Parent())
}

// IsNamed reports whether the node is a named grammar node rather than an
// anonymous token.
func (n *Node) IsNamed() bool {
	return n.inner.IsNamed()
}

func (n *Node) wrap(inner *tree_sitter.Node) *Node {
	if inner == nil {
		return nil
	}
	return &Node{inner: inner, source: n.source}
}

// Walk visits n and then recurses into each child in source order
// (pre-order). Every node is visited, anonymous tokens included.
func Walk(n *Node, fn func(*Node)) {
	fn(n)
	for i := 0; i < n.ChildCount(); i++ {
		Walk(n.Child(i), fn)
	}
}
