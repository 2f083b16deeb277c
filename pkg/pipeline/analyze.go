package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/suffixlens/pkg/layout"
	"github.com/matzehuels/suffixlens/pkg/substats"
	"github.com/matzehuels/suffixlens/pkg/trie"
)

// Analyze runs the full analysis on text without caching or cancellation.
func Analyze(text string, opts Options) (*Result, error) {
	return AnalyzeContext(context.Background(), text, opts)
}

// AnalyzeContext runs the trie, layout and stats stages on text. Each stage
// is synchronous; ctx is checked between stages so a superseded run stops
// at the next boundary.
//
// Empty text short-circuits to an empty graph and an empty series.
func AnalyzeContext(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := opts.ValidateText(text); err != nil {
		return nil, err
	}
	logger := opts.Logger

	if text == "" {
		logger.Debug("empty text, skipping analysis")
		return emptyResult(), nil
	}

	res := &Result{Text: text, ASCII: trie.IsASCII(text)}
	if !res.ASCII {
		logger.Debug("text contains multi-byte characters; edge labels may split them", "bytes", len(text))
	}

	start := time.Now()
	root := trie.BuildCompressed(text)
	res.Timing.Trie = time.Since(start)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("trie: %w", err)
	}

	start = time.Now()
	res.Graph = layout.Build(root, opts.LayoutOptions()...)
	res.Timing.Layout = time.Since(start)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	start = time.Now()
	res.Stats = substats.Analyze(text)
	res.Timing.Stats = time.Since(start)

	logger.Debug("analyzed text",
		"bytes", len(text),
		"nodes", res.Graph.NodeCount,
		"edges", res.Graph.EdgeCount,
		"max_depth", res.Graph.MaxDepth,
		"max_ratio", res.Stats.Summary.MaxRatio,
		"duration", res.Timing.Total())

	return res, nil
}
