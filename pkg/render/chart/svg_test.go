package chart

import (
	"strings"
	"testing"

	"github.com/matzehuels/suffixlens/pkg/substats"
)

func TestRenderSVG_Empty(t *testing.T) {
	svg := string(RenderSVG(substats.Analyze("")))
	if !strings.Contains(svg, "Type text to render the graph") {
		t.Errorf("empty chart should show placeholder:\n%s", svg)
	}
	if strings.Contains(svg, "<polyline") {
		t.Error("empty chart should not draw a series")
	}
}

func TestRenderSVG_Abab(t *testing.T) {
	svg := string(RenderSVG(substats.Analyze("abab")))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 520 260" width="520" height="260">`) {
		t.Errorf("unexpected svg header:\n%s", svg)
	}
	// maxK=5, maxCount=3: k=1,count=2 lands at (148, 89.33).
	if !strings.Contains(svg, `points="60,228 148,89.33 `) {
		t.Errorf("polyline should start at the origin:\n%s", svg)
	}
	if got := strings.Count(svg, `class="point best"`); got != 1 {
		t.Errorf("best points = %d, want 1", got)
	}
	if got := strings.Count(svg, `<circle`); got != 4 {
		t.Errorf("points = %d, want 4", got)
	}
	// slope 2 exits through the top edge at k=1.5.
	if !strings.Contains(svg, `x1="60" y1="228" x2="192" y2="20"`) {
		t.Errorf("best-ratio ray missing or misplaced:\n%s", svg)
	}
	if !strings.Contains(svg, "<title>k=3 count=2 ratio=0.67</title>") {
		t.Error("point titles should carry formatted ratios")
	}
}

func TestRenderSVG_WithSize(t *testing.T) {
	svg := string(RenderSVG(substats.Analyze("ab"), WithSize(800, 0)))
	if !strings.Contains(svg, `viewBox="0 0 800 260"`) {
		t.Errorf("WithSize should override width only:\n%s", svg[:120])
	}
}

func TestRayEnd(t *testing.T) {
	tests := []struct {
		name    string
		summary substats.Summary
		want    point
		wantOK  bool
	}{
		{"NoBest", substats.Summary{BestPoints: []substats.Stat{}}, point{}, false},
		{"ExitsRight", substats.Summary{BestPoints: []substats.Stat{{K: 1, Count: 1, Ratio: 0.5}}}, point{10, 5}, true},
		{"ExitsTop", substats.Summary{BestPoints: []substats.Stat{{K: 1, Count: 4, Ratio: 4}}}, point{2.5, 10}, true},
		{"ZeroSlope", substats.Summary{BestPoints: []substats.Stat{{K: 1}}}, point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rayEnd(tt.summary, 10, 10)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("rayEnd() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{228, "228"},
		{89.33333, "89.33"},
		{1.5, "1.5"},
		{-0.001, "0"},
		{-6, "-6"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
