package graph

import "fmt"

// Guide is a horizontal reference line at a fixed depth. It spans the full
// horizontal extent of the graph and carries no trie data.
type Guide struct {
	Depth  int     `json:"depth" bson:"depth"`
	Y      float64 `json:"y" bson:"y"`
	StartX float64 `json:"start_x" bson:"start_x"`
	EndX   float64 `json:"end_x" bson:"end_x"`
}

// StartID returns the id of the guide's left anchor element.
func (g Guide) StartID() string { return fmt.Sprintf("guide-%d-start", g.Depth) }

// EndID returns the id of the guide's right anchor element.
func (g Guide) EndID() string { return fmt.Sprintf("guide-%d-end", g.Depth) }

// EdgeID returns the id of the line connecting the two anchors.
func (g Guide) EdgeID() string { return fmt.Sprintf("guide-edge-%d", g.Depth) }

// Bounds returns the horizontal and vertical extent of the trie nodes.
// Guides are ignored. An empty graph returns all zeros.
func (g *Graph) Bounds() (minX, maxX, minY, maxY float64) {
	for i, n := range g.Nodes {
		if i == 0 {
			minX, maxX, minY, maxY = n.X, n.X, n.Y, n.Y
			continue
		}
		minX = min(minX, n.X)
		maxX = max(maxX, n.X)
		minY = min(minY, n.Y)
		maxY = max(maxY, n.Y)
	}
	return minX, maxX, minY, maxY
}
