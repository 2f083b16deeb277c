// Package nodelink renders a laid-out suffix trie as a node-link diagram.
//
// # Overview
//
// The layout engine has already decided every coordinate, so this package
// does not ask Graphviz to place anything. [ToDOT] pins each node at its
// computed position (neato with pinned pos attributes) and Graphviz only
// draws: circles colored by role, labeled straight edges, and the dashed
// depth guides.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Coordinates
//
// Layout units map one-to-one to points. Graphviz puts y=0 at the bottom,
// so depths are negated and the tree grows downward as in the layout.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No external Graphviz installation is required.
package nodelink
