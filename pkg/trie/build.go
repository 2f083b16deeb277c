package trie

import "unicode/utf8"

// rootID is the arena index of the raw trie's root.
const rootID = 0

// rawNode is a single uncompressed trie vertex.
type rawNode struct {
	children map[byte]int
	terminal bool
}

// Raw is an uncompressed suffix trie stored as an arena of nodes.
// Node 0 is the root. A Raw is only meant to live until [Compress] runs.
type Raw struct {
	nodes []rawNode
}

// Build inserts every suffix of text into a fresh uncompressed trie.
//
// For each start position s the suffix text[s:] is walked one byte at a time
// from the root, creating children as needed, and the node reached after the
// last byte is marked terminal. Empty text yields a root with no children
// that is not terminal.
func Build(text string) *Raw {
	r := &Raw{nodes: make([]rawNode, 1, len(text)+1)}
	r.nodes[rootID] = rawNode{children: map[byte]int{}}

	for start := 0; start < len(text); start++ {
		cur := rootID
		for i := start; i < len(text); i++ {
			cur = r.child(cur, text[i])
		}
		r.nodes[cur].terminal = true
	}
	return r
}

// child returns the child of id keyed by b, creating it when absent.
func (r *Raw) child(id int, b byte) int {
	if next, ok := r.nodes[id].children[b]; ok {
		return next
	}
	next := len(r.nodes)
	r.nodes = append(r.nodes, rawNode{children: map[byte]int{}})
	r.nodes[id].children[b] = next
	return next
}

// Len returns the number of nodes in the raw trie, including the root.
func (r *Raw) Len() int { return len(r.nodes) }

// Terminal reports whether some suffix ends exactly at node id.
func (r *Raw) Terminal(id int) bool { return r.nodes[id].terminal }

// Degree returns the number of children of node id.
func (r *Raw) Degree(id int) int { return len(r.nodes[id].children) }

// Child returns the child of id keyed by b.
func (r *Raw) Child(id int, b byte) (int, bool) {
	next, ok := r.nodes[id].children[b]
	return next, ok
}

// Lookup walks s from the root and returns the node it ends on.
func (r *Raw) Lookup(s string) (int, bool) {
	cur := rootID
	for i := 0; i < len(s); i++ {
		next, ok := r.nodes[cur].children[s[i]]
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// IsASCII reports whether every byte of text is a single-byte character.
// Non-ASCII input is accepted by [Build] but its multi-byte characters can
// be split across edge labels.
func IsASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
