// Package trie builds the suffix trie of a text and compresses it into a
// radix-style tree whose edges carry multi-byte labels.
//
// # Overview
//
// Construction happens in two stages:
//
//  1. [Build] inserts every suffix text[s:] into an uncompressed trie ([Raw]),
//     marking the node where each suffix ends as terminal.
//  2. [Compress] collapses non-branching chains into single edges, producing
//     an immutable tree of [Node] values.
//
// [BuildCompressed] runs both stages. The raw trie is an arena of nodes
// addressed by integer ids, so nothing depends on map iteration order once
// children are sorted at the compression boundary.
//
// # Compression Rule
//
// A node is absorbed into its parent's edge only when it has exactly one
// child and no suffix ends there. Suffix end points therefore always remain
// explicit nodes, even with a single continuation:
//
//	text "aa", suffixes "aa" and "a":
//
//	root ──a──▶ (terminal) ──a──▶ (terminal)
//
// Sibling labels never share a first byte (see [Node.Validate]).
//
// # Text Units
//
// Text is indexed by byte, Go's native string indexing unit. Multi-byte UTF-8
// characters may be split across edges, which corrupts labels for non-ASCII
// input. Callers that care can check [IsASCII] before building.
//
// # Complexity
//
// Both stages are O(n²) in the text length. This package targets interactive
// input sizes, not bulk corpora.
package trie
