// Package render groups the renderers for analysis artifacts.
//
// # Overview
//
// Rendering is always the last step: the layout and substring series are
// computed by the [pipeline] package, and the renderers only draw them.
//
//   - [nodelink]: the laid-out suffix trie as DOT or SVG (via Graphviz)
//   - [chart]: the distinct-substring series as an SVG line chart
//
// The JSON forms of both artifacts need no renderer; they are the
// [graph.Graph] and [substats.Result] values encoded as they are.
//
// # Node-Link Diagrams
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Complexity Chart
//
//	svg := chart.RenderSVG(res.Stats)
//
// Most callers go through [pipeline.Runner.Render], which picks the renderer
// by artifact kind and format and caches the output.
//
// [pipeline]: github.com/matzehuels/suffixlens/pkg/pipeline
// [pipeline.Runner.Render]: github.com/matzehuels/suffixlens/pkg/pipeline#Runner.Render
// [nodelink]: github.com/matzehuels/suffixlens/pkg/render/nodelink
// [chart]: github.com/matzehuels/suffixlens/pkg/render/chart
// [graph.Graph]: github.com/matzehuels/suffixlens/pkg/graph#Graph
// [substats.Result]: github.com/matzehuels/suffixlens/pkg/substats#Result
package render
