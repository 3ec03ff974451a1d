package syntax

import "fmt"

// Node is one node of the syntax tree. Start and End are byte offsets
// into the parsed source, End exclusive. Tokens that have no contiguous
// source range carry Start == -1 and their text in Literal.
type Node struct {
	Kind     Kind
	Children []*Node
	Start    int
	End      int
	Literal  string
}

// Synthetic reports whether the node has no source range.
func (n *Node) Synthetic() bool {
	return n.Start < 0
}

// Text returns the source text covered by n. It panics when the range
// does not fit src, which means the tree was built from another source.
func (n *Node) Text(src string) string {
	if n.Synthetic() {
		return n.Literal
	}
	if n.End < n.Start || n.End > len(src) {
		panic(fmt.Sprintf("syntax: %s range [%d,%d) outside source of length %d", n.Kind, n.Start, n.End, len(src)))
	}
	return src[n.Start:n.End]
}

// FindChild returns the first direct child of kind k.
func (n *Node) FindChild(k Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == k {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first, pre-order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Token returns a leaf node covering src[start:end).
func Token(kind Kind, start, end int) *Node {
	return &Node{Kind: kind, Start: start, End: end}
}

// LiteralToken returns a leaf node without source range.
func LiteralToken(kind Kind, text string) *Node {
	return &Node{Kind: kind, Start: -1, End: -1, Literal: text}
}
