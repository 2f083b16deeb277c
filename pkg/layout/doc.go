// Package layout turns a compressed suffix trie into a positioned
// [graph.Graph] ready for rendering.
//
// # Algorithm
//
// [Build] walks the trie depth-first, visiting children in lexicographic
// label order so the output is independent of how the trie was built:
//
//   - Node ids (n0, n1, ...) are assigned in visit order; edge ids (e0, ...)
//     in the order each child subtree completes.
//   - Depth is the sum of label lengths from the root; y = depth × depth scale.
//   - Structural leaves get x = ordinal × horizontal gap, left to right.
//     Every other node sits at the mean x of its direct children.
//   - LeafCount is the number of suffixes ending in the subtree, which is the
//     occurrence count of the node's path label in the text.
//
// Roles are purely structural: a node with no children is a leaf, the depth
// 0 node is the root, everything else is internal, whether or not a suffix
// also ends there.
//
// After traversal, horizontal depth guides are added every guide step from
// depth 0 through the first multiple of the step at or above the maximum
// depth. They span the node extent plus 0.6 × gap on both sides.
//
// The traversal uses an explicit stack, so degenerate inputs such as a long
// run of one character lay out without deep recursion.
//
// # Options
//
// Spacing is configured with functional options:
//
//	g := layout.Build(root,
//	    layout.WithHorizontalGap(100),
//	    layout.WithDepthScale(30),
//	    layout.WithGuideStep(10),
//	)
package layout
