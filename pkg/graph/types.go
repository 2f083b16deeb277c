package graph

import (
	"fmt"
	"html"
	"strings"
)

// Node roles.
const (
	RoleRoot     = "root"
	RoleInternal = "internal"
	RoleLeaf     = "leaf"
)

// Graph is the positioned node/edge description of a compressed suffix trie.
//
// Nodes are listed in post-order (children before their parent), the order
// in which the layout engine finishes them. Guides are decorative and are not
// counted in NodeCount or EdgeCount.
type Graph struct {
	Nodes     []Node  `json:"nodes" bson:"nodes"`
	Edges     []Edge  `json:"edges" bson:"edges"`
	Guides    []Guide `json:"guides" bson:"guides"`
	NodeCount int     `json:"node_count" bson:"node_count"`
	EdgeCount int     `json:"edge_count" bson:"edge_count"`
	MaxDepth  int     `json:"max_depth" bson:"max_depth"`
}

// IsEmpty reports whether g has no trie nodes.
func (g *Graph) IsEmpty() bool { return len(g.Nodes) == 0 }

// Node is a positioned trie vertex.
type Node struct {
	ID        string  `json:"id" bson:"id"`
	Label     string  `json:"label" bson:"label"`           // Display label: depth for leaves, empty otherwise
	Depth     int     `json:"depth" bson:"depth"`           // Sum of edge label lengths from the root
	PathLabel string  `json:"path_label" bson:"path_label"` // Concatenated edge labels from the root
	LeafCount int     `json:"leaf_count" bson:"leaf_count"` // Occurrences of PathLabel in the text
	Leaves    int     `json:"leaves" bson:"leaves"`         // Structural leaves in the subtree
	Terminal  bool    `json:"terminal,omitempty" bson:"terminal,omitempty"`
	Role      string  `json:"role" bson:"role"`
	X         float64 `json:"x" bson:"x"`
	Y         float64 `json:"y" bson:"y"`
}

// IsLeaf returns true if the node has no outgoing edges.
func (n *Node) IsLeaf() bool { return n.Role == RoleLeaf }

// IsRoot returns true if this is the root node.
func (n *Node) IsRoot() bool { return n.Depth == 0 }

// Describe returns a plain-text summary of the node for tooltips and logs.
func (n *Node) Describe() string {
	parts := []string{fmt.Sprintf("Depth: %d", n.Depth)}
	if n.PathLabel != "" {
		parts = append(parts, "Label: "+n.PathLabel)
	}
	parts = append(parts, fmt.Sprintf("Count: %d", n.LeafCount))
	return strings.Join(parts, "\n")
}

// Edge is a labeled trie edge. FullPath always equals ParentPath + Label.
type Edge struct {
	ID         string `json:"id" bson:"id"`
	Source     string `json:"source" bson:"source"`
	Target     string `json:"target" bson:"target"`
	Label      string `json:"label" bson:"label"`
	Length     int    `json:"length" bson:"length"`
	ParentPath string `json:"parent_path" bson:"parent_path"`
	FullPath   string `json:"full_path" bson:"full_path"`
}

// Describe returns a plain-text summary of the edge for tooltips and logs.
func (e *Edge) Describe() string {
	return fmt.Sprintf("String: %s\nLength: %d", e.FullPath, e.Length)
}

// DescribeHTML returns the edge summary as escaped markup, with the parent
// path and the edge's own label in separate spans so a renderer can style
// them differently.
func (e *Edge) DescribeHTML() string {
	var b strings.Builder
	b.WriteString(`<div class="tooltip-title">Edge</div><div>String: `)
	if e.ParentPath != "" {
		fmt.Fprintf(&b, `<span class="tooltip-parent">%s</span>`, html.EscapeString(e.ParentPath))
	}
	fmt.Fprintf(&b, `<span class="tooltip-edge">%s</span></div>`, html.EscapeString(e.Label))
	fmt.Fprintf(&b, `<div>Length: <strong>%d</strong></div>`, e.Length)
	return b.String()
}
