// Package pipeline provides the analysis pipeline shared by the CLI, the
// watch TUI and the HTTP server.
//
// A single call turns text into both artifacts the rest of the module works
// with: the laid-out compressed suffix trie and the substring-complexity
// series. By centralizing this here, every entry point applies the same
// defaults, input guard and caching.
//
// # Architecture
//
// Analysis runs three stages over the same text:
//
//  1. Trie: build the uncompressed suffix trie and compress it
//  2. Layout: position nodes and edges, add depth guides
//  3. Stats: count distinct substrings per length and find the peak ratio
//
// Rendering (graph JSON, DOT, SVG, stats chart) is a separate step on a
// finished [Result].
//
// # Usage
//
// One-off analysis without caching:
//
//	res, err := pipeline.Analyze("banana", pipeline.Options{})
//	fmt.Println(res.StatusLine())
//
// With a cache and artifact rendering:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, text, pipeline.Options{})
//	svg, err := runner.Render(ctx, res, pipeline.KindGraph, pipeline.FormatSVG)
//
// Interactive hosts that re-analyze on every keystroke use [Latest], which
// cancels superseded work and only delivers the newest result.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/suffixlens/pkg/cache"
	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/graph"
	"github.com/matzehuels/suffixlens/pkg/layout"
	"github.com/matzehuels/suffixlens/pkg/substats"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultMaxLength is the default input guard in bytes. Trie
	// construction is quadratic and the substring series cubic in the
	// worst case, so hosts cap interactive input well below where either
	// becomes noticeable.
	DefaultMaxLength = 4096

	// Unlimited disables the input guard.
	Unlimited = -1
)

// Artifact kinds.
const (
	KindGraph = "graph"
	KindStats = "stats"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats lists the formats each artifact kind supports.
var ValidFormats = map[string][]string{
	KindGraph: {FormatJSON, FormatDOT, FormatSVG},
	KindStats: {FormatJSON, FormatSVG},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for an analysis run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// MaxLength caps the input size in bytes. Zero means DefaultMaxLength,
	// Unlimited disables the check.
	MaxLength int `json:"max_length,omitempty"`

	// Layout options, zero means the layout package default.
	HorizontalGap float64 `json:"horizontal_gap,omitempty"`
	DepthScale    float64 `json:"depth_scale,omitempty"`
	GuideStep     int     `json:"guide_step,omitempty"`

	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks option ranges and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxLength < Unlimited {
		return errors.New(errors.ErrCodeInvalidOptions, "max_length must be -1 (unlimited), 0 (default) or positive")
	}
	if o.HorizontalGap < 0 || o.DepthScale < 0 || o.GuideStep < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "layout spacing cannot be negative")
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	o.SetLayoutDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults fills zero spacing values with the layout defaults.
func (o *Options) SetLayoutDefaults() {
	if o.HorizontalGap == 0 {
		o.HorizontalGap = layout.DefaultHorizontalGap
	}
	if o.DepthScale == 0 {
		o.DepthScale = layout.DefaultDepthScale
	}
	if o.GuideStep == 0 {
		o.GuideStep = layout.DefaultGuideStep
	}
}

// ValidateText applies the input guard.
func (o *Options) ValidateText(text string) error {
	limit := o.MaxLength
	if limit == Unlimited {
		limit = 0
	}
	return errors.ValidateText(text, limit)
}

// LayoutOptions converts the spacing fields to layout options.
func (o *Options) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithHorizontalGap(o.HorizontalGap),
		layout.WithDepthScale(o.DepthScale),
		layout.WithGuideStep(o.GuideStep),
	}
}

// AnalysisKeyOpts returns cache key options for analysis results.
func (o *Options) AnalysisKeyOpts() cache.AnalysisKeyOpts {
	return cache.AnalysisKeyOpts{
		HorizontalGap: o.HorizontalGap,
		DepthScale:    o.DepthScale,
		GuideStep:     o.GuideStep,
	}
}

// ValidateArtifact checks that format is supported for kind.
func ValidateArtifact(kind, format string) error {
	formats, ok := ValidFormats[kind]
	if !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid artifact kind: %q (must be one of: graph, stats)", kind)
	}
	return errors.ValidateFormat(format, formats)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of an analysis run.
type Result struct {
	Text  string          `json:"text" bson:"text"`
	Graph graph.Graph     `json:"graph" bson:"graph"`
	Stats substats.Result `json:"stats" bson:"stats"`

	// ASCII is false when the text contains multi-byte characters, which
	// edge labels may split.
	ASCII bool `json:"ascii" bson:"ascii"`

	// Timing and CacheHit describe this run and are not cached.
	Timing   Timing `json:"-" bson:"-"`
	CacheHit bool   `json:"-" bson:"-"`
}

// Timing records how long each stage took.
type Timing struct {
	Trie   time.Duration
	Layout time.Duration
	Stats  time.Duration
}

// Total returns the summed stage durations.
func (t Timing) Total() time.Duration {
	return t.Trie + t.Layout + t.Stats
}

// IsEmpty reports whether the result is for empty text.
func (r *Result) IsEmpty() bool { return r.Text == "" }

// StatusLine returns a one-line summary of the text and graph size, or a
// prompt when there is no text yet.
func (r *Result) StatusLine() string {
	if r.IsEmpty() {
		return "Type at least one character to draw the suffix tree."
	}
	return fmt.Sprintf("Length: %d / Nodes: %d / Edges: %d", len(r.Text), r.Graph.NodeCount, r.Graph.EdgeCount)
}

// Complexity returns the peak distinct-substring ratio formatted for
// display, or "-" when the series is empty.
func (r *Result) Complexity() string {
	if len(r.Stats.Series) == 0 {
		return "-"
	}
	return substats.FormatRatio(r.Stats.Summary.MaxRatio)
}

// emptyResult is the explicit result for empty input.
func emptyResult() *Result {
	return &Result{
		Graph: graph.Graph{Nodes: []graph.Node{}, Edges: []graph.Edge{}, Guides: []graph.Guide{}},
		Stats: substats.Analyze(""),
		ASCII: true,
	}
}

