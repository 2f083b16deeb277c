package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/suffixlens/pkg/graph"
	"github.com/matzehuels/suffixlens/pkg/render/chart"
	"github.com/matzehuels/suffixlens/pkg/render/nodelink"
)

// RenderArtifact renders one artifact of res. Graph artifacts are the graph
// JSON, Graphviz DOT, or an SVG drawn from the DOT; stats artifacts are the
// series JSON or the complexity chart.
func RenderArtifact(ctx context.Context, res *Result, kind, format string) ([]byte, error) {
	if err := ValidateArtifact(kind, format); err != nil {
		return nil, err
	}

	switch kind {
	case KindGraph:
		return renderGraph(ctx, res.Graph, format)
	case KindStats:
		if format == FormatSVG {
			return chart.RenderSVG(res.Stats), nil
		}
		data, err := json.MarshalIndent(res.Stats, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode stats: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported artifact kind %q", kind)
}

func renderGraph(ctx context.Context, g graph.Graph, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return graph.Marshal(g)
	case FormatDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{Tooltips: true})), nil
	case FormatSVG:
		dot := nodelink.ToDOT(g, nodelink.Options{Tooltips: true})
		return nodelink.RenderSVG(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported graph format %q", format)
}
