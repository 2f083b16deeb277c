package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/suffixlens/pkg/graph"
	"github.com/matzehuels/suffixlens/pkg/layout"
	"github.com/matzehuels/suffixlens/pkg/trie"
)

func TestToDOT_Basic(t *testing.T) {
	g := layout.Build(trie.BuildCompressed("abab"))
	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph suffixtrie {") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, want := range []string{
		`"n0" [id="n0", pos="70,0!", fillcolor="#f97316"]`,
		`"n2" [id="n2", pos="0,-160!", fillcolor="#f43f5e", label="4"]`,
		`"n1" [id="n1", pos="0,-80!", fillcolor="#2563eb"]`,
		`"n0" -> "n1" [id="e1", label="ab"]`,
		`"n0" -> "n3" [id="e3", label="b"]`,
		`"guide-5-start" -> "guide-5-end" [id="guide-edge-5"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, dot)
		}
	}
}

func TestToDOT_Options(t *testing.T) {
	g := layout.Build(trie.BuildCompressed("aa"))

	dot := ToDOT(g, Options{HideGuides: true})
	if strings.Contains(dot, "guide-") {
		t.Error("HideGuides should omit guides")
	}
	if strings.Contains(dot, "tooltip=") {
		t.Error("tooltips should be off by default")
	}

	dot = ToDOT(g, Options{Tooltips: true})
	if !strings.Contains(dot, `tooltip="Depth: 1\nLabel: a\nCount: 2"`) {
		t.Errorf("ToDOT() missing node tooltip:\n%s", dot)
	}
	if !strings.Contains(dot, `tooltip="String: aa\nLength: 1"`) {
		t.Errorf("ToDOT() missing edge tooltip:\n%s", dot)
	}
}

func TestToDOT_Empty(t *testing.T) {
	dot := ToDOT(graph.Graph{}, Options{})
	if strings.Contains(dot, "->") || strings.Contains(dot, "pos=") {
		t.Errorf("empty graph should have no elements:\n%s", dot)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"a\tb", `"a\\x09b"`},
		{"\xff", `"\\xFF"`},
		{"naïve", `"naïve"`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFmtPos(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		{0, 0, "0,0!"},
		{70, 40, "70,-40!"},
		{-84, 0, "-84,0!"},
		{46.666666666666664, 120, "46.666666666666664,-120!"},
	}
	for _, tt := range tests {
		if got := fmtPos(tt.x, tt.y); got != tt.want {
			t.Errorf("fmtPos(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="300pt" height="200pt" viewBox="0.00 0.00 300.00 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300.00 200.00" width="300" height="200"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
