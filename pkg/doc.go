// Package pkg provides the core libraries for suffixlens, a suffix trie and
// substring-complexity explorer.
//
// # Overview
//
// suffixlens takes a piece of text and produces two views of its structure:
// the compressed suffix trie laid out as a node-link diagram, and the
// substring-complexity series S(k)/k over every length k. The pkg directory
// is organized into four areas:
//
//  1. Domain logic: [trie], [layout], [substats]
//  2. Serialization: [graph]
//  3. Orchestration: [pipeline], [render]
//  4. Infrastructure: [cache], [store], [config], [server], [errors],
//     [observability], [buildinfo]
//
// # Architecture
//
// The data flow for one analysis:
//
//	text
//	  ↓
//	[trie] (uncompressed trie → compressed trie)
//	  ↓
//	[layout] (positions, counts, depth guides) → [graph.Graph]
//	  ↓
//	[substats] (distinct substrings per k, peak ratio)
//	  ↓
//	[render] (DOT, SVG, chart) or JSON
//
// # Quick Start
//
//	res, err := pipeline.Analyze("banana", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.StatusLine())  // Length: 6 / Nodes: 7 / Edges: 6
//	fmt.Println(res.Complexity())  // 3.00
//
// # Main Packages
//
// ## Domain Logic
//
// [trie] - Builds the uncompressed suffix trie in an arena and compresses
// unary chains into multi-character edges. Nodes where a suffix ends are
// kept even when they have a single child.
//
// [layout] - Assigns every node a position (leaves evenly spaced, inner
// nodes centered over their children, depth proportional to path length),
// counts suffix occurrences per subtree and emits depth guides.
//
// [substats] - Counts distinct substrings of every length and finds all
// lengths that reach the maximum distinct-per-length ratio.
//
// ## Serialization
//
// [graph] - The node-link graph format shared by the renderers, the HTTP
// API and the stored analyses, plus lookup helpers over it.
//
// ## Orchestration
//
// [pipeline] - Runs the stages with shared defaults and the input guard,
// caches results and rendered artifacts, and coordinates latest-text-wins
// analysis for interactive hosts.
//
// [render] - Renderers for the trie diagram and the complexity chart.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching with file, Redis and null backends.
//
// [store] - Saved analyses with memory, file and MongoDB backends.
//
// [config] - TOML configuration with environment overrides.
//
// [server] - The HTTP API.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/trie/...       # Specific package
//	go test -run Example ./...   # Examples only
//
// [trie]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/trie
// [layout]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/layout
// [substats]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/substats
// [graph]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/graph
// [graph.Graph]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/graph#Graph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/suffixlens/pkg/buildinfo
package pkg
