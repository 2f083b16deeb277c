package layout

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/suffixlens/pkg/graph"
	"github.com/matzehuels/suffixlens/pkg/trie"
)

// frame is one pending node on the traversal stack.
type frame struct {
	node     *trie.Node
	children []trie.Branch // sorted by label
	next     int           // index of the next child to visit

	id    string
	depth int
	path  string
	label string // label of the edge leading here

	childXs   []float64
	leafCount int
	leaves    int
}

// Build lays out the compressed trie rooted at root. A nil root, or a root
// without children (the trie of empty text), yields an empty graph: a lone
// root is not an occurrence of anything.
func Build(root *trie.Node, opts ...Option) graph.Graph {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var g graph.Graph
	if root == nil || len(root.Children) == 0 {
		return g
	}

	var (
		nodeCounter int
		edgeCounter int
		leafCounter int
	)
	push := func(stack []*frame, n *trie.Node, depth int, path, label string) []*frame {
		f := &frame{
			node:     n,
			children: sortedChildren(n),
			id:       fmt.Sprintf("n%d", nodeCounter),
			depth:    depth,
			path:     path,
			label:    label,
		}
		nodeCounter++
		g.MaxDepth = max(g.MaxDepth, depth)
		return append(stack, f)
	}

	stack := push(nil, root, 0, "", "")
	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if f.next < len(f.children) {
			b := f.children[f.next]
			f.next++
			stack = push(stack, b.Child, f.depth+len(b.Label), f.path+b.Label, b.Label)
			continue
		}

		stack = stack[:len(stack)-1]
		n := finish(f, &leafCounter, cfg)
		g.Nodes = append(g.Nodes, n)

		if len(stack) == 0 {
			break
		}
		parent := stack[len(stack)-1]
		parent.childXs = append(parent.childXs, n.X)
		parent.leafCount += n.LeafCount
		parent.leaves += n.Leaves
		g.Edges = append(g.Edges, graph.Edge{
			ID:         fmt.Sprintf("e%d", edgeCounter),
			Source:     parent.id,
			Target:     f.id,
			Label:      f.label,
			Length:     len(f.label),
			ParentPath: parent.path,
			FullPath:   f.path,
		})
		edgeCounter++
	}

	g.NodeCount = len(g.Nodes)
	g.EdgeCount = len(g.Edges)
	g.Guides = buildGuides(g.Nodes, g.MaxDepth, cfg)
	return g
}

// finish computes the position, counts and role of a node whose children
// have all been laid out.
func finish(f *frame, leafCounter *int, cfg config) graph.Node {
	n := graph.Node{
		ID:        f.id,
		Depth:     f.depth,
		PathLabel: f.path,
		Terminal:  f.node.Terminal,
		Y:         float64(f.depth) * cfg.depth,
	}

	if len(f.children) == 0 {
		n.Role = graph.RoleLeaf
		n.Label = strconv.Itoa(f.depth)
		n.X = float64(*leafCounter) * cfg.gap
		*leafCounter++
		n.LeafCount = 1
		n.Leaves = 1
		return n
	}

	if f.depth == 0 {
		n.Role = graph.RoleRoot
	} else {
		n.Role = graph.RoleInternal
	}

	var sum float64
	for _, x := range f.childXs {
		sum += x
	}
	n.X = sum / float64(len(f.childXs))

	// A suffix ending at an inner node is one more occurrence of its path.
	n.LeafCount = f.leafCount
	if f.node.Terminal {
		n.LeafCount++
	}
	n.Leaves = f.leaves
	return n
}

func sortedChildren(n *trie.Node) []trie.Branch {
	children := slices.Clone(n.Children)
	slices.SortStableFunc(children, func(a, b trie.Branch) int {
		return strings.Compare(a.Label, b.Label)
	})
	return children
}

// buildGuides emits one guide per guide step from depth 0 through the first
// multiple of the step at or above maxDepth.
func buildGuides(nodes []graph.Node, maxDepth int, cfg config) []graph.Guide {
	if len(nodes) == 0 {
		return nil
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, n := range nodes {
		minX = min(minX, n.X)
		maxX = max(maxX, n.X)
	}

	startX := minX - cfg.gap*guideMargin
	endX := maxX + cfg.gap*guideMargin
	step := cfg.guideStep
	limit := max(step, int(math.Ceil(float64(maxDepth)/float64(step)))*step)

	guides := make([]graph.Guide, 0, limit/step+1)
	for depth := 0; depth <= limit; depth += step {
		guides = append(guides, graph.Guide{
			Depth:  depth,
			Y:      float64(depth) * cfg.depth,
			StartX: startX,
			EndX:   endX,
		})
	}
	return guides
}
