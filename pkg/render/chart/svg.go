package chart

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/suffixlens/pkg/substats"
)

// Default chart geometry.
const (
	DefaultWidth  = 520.0
	DefaultHeight = 260.0
	tickCount     = 6
)

// Colors.
const (
	colorBackground = "rgba(15,23,42,0.6)"
	colorGrid       = "rgba(148,163,184,0.2)"
	colorAxis       = "#94a3b8"
	colorTickLabel  = "#cbd5f5"
	colorLine       = "#38bdf8"
	colorBest       = "#f87171"
	colorRay        = "#fda4af"
)

type padding struct{ top, right, bottom, left float64 }

var chartPadding = padding{top: 20, right: 20, bottom: 32, left: 60}

// Option configures chart rendering.
type Option func(*renderer)

type renderer struct {
	width, height float64
}

// WithSize overrides the chart's view box size. Non-positive values are
// ignored.
func WithSize(width, height float64) Option {
	return func(r *renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

type point struct{ x, y float64 }

// RenderSVG draws the series in res as a standalone SVG document.
func RenderSVG(res substats.Result, opts ...Option) []byte {
	r := renderer{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(r.width), num(r.height), r.width, r.height)

	if len(res.Series) == 0 {
		fmt.Fprintf(&buf, `  <text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" fill="%s" font-size="14">Type text to render the graph</text>`+"\n", colorAxis)
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	r.renderSeries(&buf, res)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r renderer) renderSeries(buf *bytes.Buffer, res substats.Result) {
	series := res.Series
	p := chartPadding
	innerWidth := r.width - p.left - p.right
	innerHeight := r.height - p.top - p.bottom

	// One extra unit of headroom on both axes keeps the last point off the frame.
	maxK := math.Max(float64(series[len(series)-1].K+1), 1)
	maxCount := 1.0
	for _, s := range series {
		maxCount = math.Max(maxCount, float64(s.Count+1))
	}

	scaleX := func(v float64) float64 { return p.left + v/maxK*innerWidth }
	scaleY := func(v float64) float64 { return p.top + innerHeight - v/maxCount*innerHeight }
	origin := point{scaleX(0), scaleY(0)}
	bottom := p.top + innerHeight
	right := p.left + innerWidth

	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s" />`+"\n", num(r.width), num(r.height), colorBackground)

	xTicks := substats.Ticks(maxK, tickCount)
	yTicks := substats.Ticks(maxCount, tickCount)

	buf.WriteString("  <g>\n")
	for _, v := range xTicks {
		if v == 0 {
			continue
		}
		x := scaleX(v)
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1" />`+"\n",
			num(x), num(p.top), num(x), num(bottom), colorGrid)
	}
	for _, v := range yTicks {
		if v == 0 {
			continue
		}
		y := scaleY(v)
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1" />`+"\n",
			num(p.left), num(y), num(right), num(y), colorGrid)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <g stroke="%s" stroke-width="1.2">`+"\n", colorAxis)
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" />`+"\n", num(p.left), num(bottom), num(right), num(bottom))
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" />`+"\n", num(p.left), num(p.top), num(p.left), num(bottom))
	buf.WriteString("  </g>\n")

	points := make([]string, 0, len(series)+1)
	points = append(points, num(origin.x)+","+num(origin.y))
	for _, s := range series {
		points = append(points, num(scaleX(float64(s.K)))+","+num(scaleY(float64(s.Count))))
	}
	fmt.Fprintf(buf, `  <polyline class="series" points="%s" fill="none" stroke="%s" stroke-width="2.4" />`+"\n",
		strings.Join(points, " "), colorLine)

	if end, ok := rayEnd(res.Summary, maxK, maxCount); ok {
		fmt.Fprintf(buf, `  <line class="best-ray" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2" stroke-dasharray="4 4" />`+"\n",
			num(origin.x), num(origin.y), num(scaleX(end.x)), num(scaleY(end.y)), colorRay)
	}

	for _, s := range series {
		radius, fill, class := 4, colorLine, "point"
		if res.Summary.IsBest(s.K) {
			radius, fill, class = 5, colorBest, "point best"
		}
		fmt.Fprintf(buf, `  <circle class="%s" cx="%s" cy="%s" r="%d" fill="%s"><title>k=%d count=%d ratio=%s</title></circle>`+"\n",
			class, num(scaleX(float64(s.K))), num(scaleY(float64(s.Count))), radius, fill,
			s.K, s.Count, substats.FormatRatio(s.Ratio))
	}

	for _, v := range xTicks {
		fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="middle" fill="%s" font-size="11">%s</text>`+"\n",
			num(scaleX(v)), num(bottom+18), colorTickLabel, num(v))
	}
	for _, v := range yTicks {
		fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="end" fill="%s" font-size="11">%s</text>`+"\n",
			num(p.left-6), num(scaleY(v)+4), colorTickLabel, num(v))
	}

	fmt.Fprintf(buf, `  <text x="%s" y="%s" fill="%s" font-size="12">k</text>`+"\n", num(right), num(bottom+30), colorAxis)
	fmt.Fprintf(buf, `  <text x="%s" y="%s" fill="%s" font-size="12">S(k)</text>`+"\n", num(p.left-36), num(p.top+10), colorAxis)
}

// rayEnd returns where the best-ratio ray leaves the plot area, in data
// coordinates. The ray is anchored on the first best point.
func rayEnd(s substats.Summary, maxK, maxCount float64) (point, bool) {
	if len(s.BestPoints) == 0 {
		return point{}, false
	}
	slope := s.BestPoints[0].Ratio
	if math.IsNaN(slope) || math.IsInf(slope, 0) || slope <= 0 {
		return point{}, false
	}
	end := point{maxK, slope * maxK}
	if end.y > maxCount {
		end = point{maxCount / slope, maxCount}
	}
	return end, true
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
