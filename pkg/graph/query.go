package graph

import "strings"

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Root returns the root node. It is false only for an empty graph.
func (g *Graph) Root() (Node, bool) {
	for _, n := range g.Nodes {
		if n.Depth == 0 {
			return n, true
		}
	}
	return Node{}, false
}

// Leaves returns the structural leaves in left-to-right order.
func (g *Graph) Leaves() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return out
}

// Children returns the outgoing edges of the node with the given id, in
// label order.
func (g *Graph) Children(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// NodeByPath returns the node whose path label is exactly path.
func (g *Graph) NodeByPath(path string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.PathLabel == path {
			return n, true
		}
	}
	return Node{}, false
}

// Occurrences returns how many times s occurs in the text the graph was
// built from. It finds the shallowest node whose path label has s as a
// prefix and returns its leaf count. Guides are never consulted.
func (g *Graph) Occurrences(s string) int {
	root, ok := g.Root()
	if !ok {
		return 0
	}
	if s == "" {
		return root.LeafCount
	}

	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	bySource := make(map[string][]Edge, len(g.Nodes))
	for _, e := range g.Edges {
		bySource[e.Source] = append(bySource[e.Source], e)
	}

	cur := root.ID
	for {
		var next *Edge
		for i := range bySource[cur] {
			e := bySource[cur][i]
			if strings.HasPrefix(e.FullPath, s) || strings.HasPrefix(s, e.FullPath) {
				next = &e
				break
			}
		}
		if next == nil {
			return 0
		}
		if len(next.FullPath) >= len(s) {
			return byID[next.Target].LeafCount
		}
		cur = next.Target
	}
}
