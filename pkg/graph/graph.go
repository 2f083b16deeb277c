package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Marshal serializes a Graph to pretty-printed JSON bytes.
func Marshal(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes into a Graph and checks that the
// summary counts agree with the node and edge lists.
func Unmarshal(data []byte) (Graph, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes g as indented JSON to w.
func Write(g Graph, w io.Writer) error {
	normalize(&g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON graph from r.
func Read(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	normalize(&g)
	if g.NodeCount != len(g.Nodes) {
		return Graph{}, fmt.Errorf("node_count %d does not match %d nodes", g.NodeCount, len(g.Nodes))
	}
	if g.EdgeCount != len(g.Edges) {
		return Graph{}, fmt.Errorf("edge_count %d does not match %d edges", g.EdgeCount, len(g.Edges))
	}
	return g, nil
}

// WriteFile writes a Graph to a JSON file with 0644 permissions.
func WriteFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a Graph from a JSON file.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// normalize replaces nil slices so empty graphs encode as [] rather than null.
func normalize(g *Graph) {
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	if g.Guides == nil {
		g.Guides = []Guide{}
	}
}
