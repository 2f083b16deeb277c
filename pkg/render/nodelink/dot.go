package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/suffixlens/pkg/graph"
)

// Role fill colors.
const (
	ColorRoot     = "#f97316"
	ColorInternal = "#2563eb"
	ColorLeaf     = "#f43f5e"
	ColorEdge     = "#94a3b8"
	ColorGuide    = "#94a3b866"
)

// nodeSize is the node diameter in points.
const nodeSize = 42.0

// Options configures node-link diagram rendering.
type Options struct {
	// HideGuides omits the dashed depth guides.
	HideGuides bool

	// Tooltips adds node and edge summaries as SVG titles.
	Tooltips bool
}

// ToDOT converts a laid-out graph to Graphviz DOT with every node pinned at
// its layout position. The result can be rendered with [RenderSVG].
func ToDOT(g graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph suffixtrie {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, width=%s, color=\"#0f172a\", penwidth=2, fontsize=12, fontcolor=\"#0f172a\", label=\"\"];\n",
		fmtFloat(nodeSize/72))
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=3, arrowsize=0.8, fontsize=12, fontcolor=\"#e2e8f0\"];\n", ColorEdge)
	buf.WriteString("\n")

	if !opts.HideGuides {
		for _, gd := range g.Guides {
			writeGuide(&buf, gd)
		}
		if len(g.Guides) > 0 {
			buf.WriteString("\n")
		}
	}

	for _, n := range g.Nodes {
		attrs := []string{
			"id=" + quote(n.ID),
			"pos=" + quote(fmtPos(n.X, n.Y)),
			"fillcolor=" + quote(roleColor(n.Role)),
		}
		if n.Label != "" {
			attrs = append(attrs, "label="+quote(n.Label))
		}
		if opts.Tooltips {
			attrs = append(attrs, "tooltip="+quote(n.Describe()))
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := []string{
			"id=" + quote(e.ID),
			"label=" + quote(e.Label),
		}
		if opts.Tooltips {
			attrs = append(attrs, "tooltip="+quote(e.Describe()))
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(e.Source), quote(e.Target), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeGuide(buf *bytes.Buffer, gd graph.Guide) {
	const anchor = "shape=point, width=0.01, style=invis"
	fmt.Fprintf(buf, "  %s [%s, pos=%s];\n", quote(gd.StartID()), anchor, quote(fmtPos(gd.StartX, gd.Y)))
	fmt.Fprintf(buf, "  %s [%s, pos=%s];\n", quote(gd.EndID()), anchor, quote(fmtPos(gd.EndX, gd.Y)))
	fmt.Fprintf(buf, "  %s -> %s [id=%s, style=dashed, color=%q, penwidth=1.6, arrowhead=none];\n",
		quote(gd.StartID()), quote(gd.EndID()), quote(gd.EdgeID()), ColorGuide)
}

func roleColor(role string) string {
	switch role {
	case graph.RoleRoot:
		return ColorRoot
	case graph.RoleLeaf:
		return ColorLeaf
	default:
		return ColorInternal
	}
}

// fmtPos formats a pinned position, flipping y so depth grows downward.
func fmtPos(x, y float64) string {
	return fmtFloat(x) + "," + fmtFloat(-y) + "!"
}

func fmtFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quote returns s as a DOT double-quoted string. Edge labels are slices of
// arbitrary input, so control characters and invalid UTF-8 bytes are shown
// as visible \xNN escapes instead of reaching Graphviz raw.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\\x%02X`, s[i])
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\\x%02X`, r)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz. Node positions come
// from the pinned pos attributes written by [ToDOT].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's fixed-size svg element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
