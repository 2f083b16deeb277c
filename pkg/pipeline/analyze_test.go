package pipeline

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/suffixlens/pkg/graph"
	"github.com/matzehuels/suffixlens/pkg/substats"
)

func mustAnalyze(t *testing.T, text string) *Result {
	t.Helper()
	res, err := Analyze(text, Options{})
	if err != nil {
		t.Fatalf("Analyze(%q): %v", text, err)
	}
	return res
}

func TestAnalyzeEmpty(t *testing.T) {
	res := mustAnalyze(t, "")

	if !res.IsEmpty() || !res.Graph.IsEmpty() {
		t.Error("empty text should give an empty result")
	}
	if res.Graph.NodeCount != 0 || res.Graph.EdgeCount != 0 || len(res.Graph.Guides) != 0 {
		t.Errorf("empty graph = %+v", res.Graph)
	}
	if len(res.Stats.Series) != 0 || res.Stats.Summary.MaxRatio != 0 || len(res.Stats.Summary.BestPoints) != 0 {
		t.Errorf("empty stats = %+v", res.Stats)
	}
	if res.Complexity() != "-" {
		t.Errorf("Complexity() = %q, want \"-\"", res.Complexity())
	}
	if !strings.HasPrefix(res.StatusLine(), "Type at least one character") {
		t.Errorf("StatusLine() = %q", res.StatusLine())
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		text       string
		nodes      int
		edges      int
		maxRatio   float64
		bestK      []int
		status     string
		complexity string
	}{
		{"a", 2, 1, 1, []int{1}, "Length: 1 / Nodes: 2 / Edges: 1", "1.00"},
		{"aa", 3, 2, 1, []int{1}, "Length: 2 / Nodes: 3 / Edges: 2", "1.00"},
		{"abab", 5, 4, 2, []int{1}, "Length: 4 / Nodes: 5 / Edges: 4", "2.00"},
		{"banana", 7, 6, 3, []int{1}, "Length: 6 / Nodes: 7 / Edges: 6", "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := mustAnalyze(t, tt.text)
			if res.Graph.NodeCount != tt.nodes || res.Graph.EdgeCount != tt.edges {
				t.Errorf("graph = %d nodes / %d edges, want %d / %d",
					res.Graph.NodeCount, res.Graph.EdgeCount, tt.nodes, tt.edges)
			}
			if res.Stats.Summary.MaxRatio != tt.maxRatio {
				t.Errorf("MaxRatio = %v, want %v", res.Stats.Summary.MaxRatio, tt.maxRatio)
			}
			var ks []int
			for _, p := range res.Stats.Summary.BestPoints {
				ks = append(ks, p.K)
			}
			if !reflect.DeepEqual(ks, tt.bestK) {
				t.Errorf("best k = %v, want %v", ks, tt.bestK)
			}
			if got := res.StatusLine(); got != tt.status {
				t.Errorf("StatusLine() = %q, want %q", got, tt.status)
			}
			if got := res.Complexity(); got != tt.complexity {
				t.Errorf("Complexity() = %q, want %q", got, tt.complexity)
			}
			if !res.ASCII {
				t.Error("ASCII = false for ASCII text")
			}
		})
	}
}

func TestAnalyzeSingle(t *testing.T) {
	res := mustAnalyze(t, "a")
	leaves := res.Graph.Leaves()
	if len(leaves) != 1 || leaves[0].Label != "1" || leaves[0].LeafCount != 1 {
		t.Errorf("leaves = %+v, want one leaf labeled 1", leaves)
	}
	if e := res.Graph.Edges[0]; e.Label != "a" || e.FullPath != "a" {
		t.Errorf("edge = %+v", e)
	}
	want := []substats.Stat{{K: 1, Count: 1, Ratio: 1}}
	if !reflect.DeepEqual(res.Stats.Series, want) {
		t.Errorf("series = %+v, want %+v", res.Stats.Series, want)
	}
}

func TestAnalyzeRepeated(t *testing.T) {
	res := mustAnalyze(t, "aa")

	// The node for "a" is a suffix end with one child, so it stays.
	mid, ok := res.Graph.NodeByPath("a")
	if !ok {
		t.Fatal("node for \"a\" missing")
	}
	if mid.Role != graph.RoleInternal || !mid.Terminal || mid.LeafCount != 2 {
		t.Errorf("node a = %+v, want terminal internal with count 2", mid)
	}
	want := []substats.Stat{{K: 1, Count: 1, Ratio: 1}, {K: 2, Count: 1, Ratio: 0.5}}
	if !reflect.DeepEqual(res.Stats.Series, want) {
		t.Errorf("series = %+v, want %+v", res.Stats.Series, want)
	}
}

func TestAnalyzeBanana(t *testing.T) {
	res := mustAnalyze(t, "banana")
	if got := res.Graph.Occurrences("an"); got != 2 {
		t.Errorf("Occurrences(an) = %d, want 2", got)
	}
	if got := len(res.Graph.Children("n0")); got != 3 {
		t.Errorf("root children = %d, want 3", got)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	for _, text := range []string{"abab", "mississippi", "naïve"} {
		a := mustAnalyze(t, text)
		b := mustAnalyze(t, text)
		a.Timing, b.Timing = Timing{}, Timing{}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Analyze(%q) is not deterministic", text)
		}
	}
}

func TestAnalyzeNonASCII(t *testing.T) {
	res := mustAnalyze(t, "naïve")
	if res.ASCII {
		t.Error("ASCII = true for multi-byte text")
	}
	// Byte granularity: ï is two bytes.
	if got := res.Graph.MaxDepth; got != len("naïve") {
		t.Errorf("MaxDepth = %d, want %d", got, len("naïve"))
	}
}

func TestAnalyzeTooLarge(t *testing.T) {
	_, err := Analyze("abcdef", Options{MaxLength: 3})
	if err == nil {
		t.Fatal("Analyze should reject text over MaxLength")
	}
}

func TestAnalyzeContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AnalyzeContext(ctx, "banana", Options{}); err == nil {
		t.Error("AnalyzeContext with canceled context should fail")
	}
	// Empty text never reaches a stage boundary.
	if _, err := AnalyzeContext(ctx, "", Options{}); err != nil {
		t.Errorf("empty text with canceled context: %v", err)
	}
}

func TestAnalyzeLayoutOptions(t *testing.T) {
	res, err := Analyze("ab", Options{HorizontalGap: 100, DepthScale: 10})
	if err != nil {
		t.Fatal(err)
	}
	n, _ := res.Graph.NodeByPath("b")
	if n.X != 100 || n.Y != 10 {
		t.Errorf("node b at (%v, %v), want (100, 10)", n.X, n.Y)
	}
}

func TestRenderArtifact(t *testing.T) {
	res := mustAnalyze(t, "abab")
	ctx := context.Background()

	tests := []struct {
		kind, format string
		contains     string
	}{
		{KindGraph, FormatJSON, `"node_count": 5`},
		{KindGraph, FormatDOT, `digraph suffixtrie`},
		{KindStats, FormatJSON, `"max_ratio": 2`},
		{KindStats, FormatSVG, `<polyline`},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.format, func(t *testing.T) {
			data, err := RenderArtifact(ctx, res, tt.kind, tt.format)
			if err != nil {
				t.Fatalf("RenderArtifact: %v", err)
			}
			if !strings.Contains(string(data), tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, data)
			}
		})
	}

	if _, err := RenderArtifact(ctx, res, KindStats, FormatDOT); err == nil {
		t.Error("stats DOT should be rejected")
	}
}
