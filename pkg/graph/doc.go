// Package graph provides the renderer-facing types for a positioned suffix
// trie graph.
//
// This package defines the canonical wire format produced by the layout
// engine and consumed by renderers, JSON files, API responses and caches.
//
// # Core Types
//
//   - [Graph]: positioned nodes, edges and depth guides plus summary counts
//   - [Node]: one trie vertex with depth, path label, occurrence count and role
//   - [Edge]: one labeled trie edge with its parent and full path strings
//   - [Guide]: a decorative horizontal line at a fixed depth
//
// # Roles
//
// Node roles are structural:
//
//	graph.RoleRoot      // "root"      depth 0 with children
//	graph.RoleInternal  // "internal"  any other node with children
//	graph.RoleLeaf      // "leaf"      no outgoing edges
//
// A node where a suffix ends may still be internal. That fact is carried
// separately in [Node.Terminal] and never changes the role.
//
// # Guides
//
// Guides are kept out of Nodes and Edges on purpose. They carry no substring
// data and must not take part in counting, occurrence queries or hit tests.
// Renderers that need guide elements as plain nodes/edges can use
// [Guide.StartID], [Guide.EndID] and [Guide.EdgeID].
//
// # Serialization
//
//	data, _ := graph.Marshal(g)            // Graph → []byte
//	g, _ := graph.Unmarshal(data)          // []byte → Graph
//	graph.WriteFile(g, "trie.json")        // Graph → File
//	g, _ := graph.ReadFile("trie.json")    // File → Graph
//
// # Concurrency
//
// A Graph is never mutated after the layout engine returns it and is safe
// for concurrent reads.
package graph
