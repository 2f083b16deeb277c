package trie

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Node is a vertex of the compressed suffix trie.
//
// Terminal is copied from the raw trie: it is true when some suffix ends
// exactly here, independent of whether the node has children. Children are
// sorted by label and no two labels share a first byte.
type Node struct {
	Terminal bool
	Children []Branch
}

// Branch is a labeled edge to a child node. Label is never empty.
type Branch struct {
	Label string
	Child *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Compress collapses non-branching chains of r into multi-byte edges.
//
// Starting from each child of a node, bytes are absorbed into the edge label
// while the cursor has exactly one child and is not terminal. The walk uses
// an explicit stack, so deep chains (e.g. a long run of one character) do not
// grow the goroutine stack.
func Compress(r *Raw) *Node {
	type frame struct {
		raw int
		out *Node
	}

	root := &Node{Terminal: r.Terminal(rootID)}
	stack := []frame{{raw: rootID, out: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		keys := slices.Sorted(maps.Keys(r.nodes[f.raw].children))
		f.out.Children = make([]Branch, 0, len(keys))

		for _, key := range keys {
			var label strings.Builder
			label.WriteByte(key)
			cursor := r.nodes[f.raw].children[key]

			for r.Degree(cursor) == 1 && !r.Terminal(cursor) {
				for next, id := range r.nodes[cursor].children {
					label.WriteByte(next)
					cursor = id
				}
			}

			child := &Node{Terminal: r.Terminal(cursor)}
			f.out.Children = append(f.out.Children, Branch{Label: label.String(), Child: child})
			stack = append(stack, frame{raw: cursor, out: child})
		}
	}
	return root
}

// BuildCompressed builds the raw suffix trie of text and compresses it.
func BuildCompressed(text string) *Node {
	return Compress(Build(text))
}

// Walk visits every node in pre-order, children in label order. path is the
// concatenation of labels from the root. Returning false from fn skips the
// node's subtree.
func (n *Node) Walk(fn func(node *Node, path string) bool) {
	type frame struct {
		node *Node
		path string
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.path) {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			b := f.node.Children[i]
			stack = append(stack, frame{node: b.Child, path: f.path + b.Label})
		}
	}
}

// CountNodes returns the number of nodes in the subtree rooted at n.
func (n *Node) CountNodes() int {
	count := 0
	n.Walk(func(*Node, string) bool {
		count++
		return true
	})
	return count
}

// CountLeaves returns the number of childless nodes under n.
func (n *Node) CountLeaves() int {
	count := 0
	n.Walk(func(node *Node, _ string) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Locate finds the highest node whose path has s as a prefix. For the empty
// string it returns n itself. The second result is false when s is not a
// substring of the indexed text.
func (n *Node) Locate(s string) (*Node, bool) {
	cur := n
	for len(s) > 0 {
		b, ok := cur.branch(s[0])
		if !ok {
			return nil, false
		}
		switch {
		case len(s) <= len(b.Label):
			if !strings.HasPrefix(b.Label, s) {
				return nil, false
			}
			return b.Child, true
		case strings.HasPrefix(s, b.Label):
			s = s[len(b.Label):]
			cur = b.Child
		default:
			return nil, false
		}
	}
	return cur, true
}

// branch returns the child edge whose label starts with first.
func (n *Node) branch(first byte) (Branch, bool) {
	i, ok := slices.BinarySearchFunc(n.Children, first, func(b Branch, target byte) int {
		return int(b.Label[0]) - int(target)
	})
	if !ok {
		return Branch{}, false
	}
	return n.Children[i], true
}

// Validate checks the structural invariants of the compressed trie: labels
// are non-empty, siblings are sorted and never share a first byte, and every
// non-root node with a single child is terminal.
func (n *Node) Validate() error {
	var err error
	n.Walk(func(node *Node, path string) bool {
		if err != nil {
			return false
		}
		if path != "" && len(node.Children) == 1 && !node.Terminal {
			err = fmt.Errorf("node %q has a single child but is not terminal", path)
			return false
		}
		for i, b := range node.Children {
			if b.Label == "" {
				err = fmt.Errorf("node %q has an empty edge label", path)
				return false
			}
			if i > 0 && node.Children[i-1].Label[0] >= b.Label[0] {
				err = fmt.Errorf("node %q: siblings %q and %q are not disjoint", path, node.Children[i-1].Label, b.Label)
				return false
			}
		}
		return true
	})
	return err
}
