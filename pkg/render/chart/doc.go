// Package chart renders the substring-complexity series as an SVG line
// chart.
//
// The chart plots the distinct-substring count S(k) against the length k,
// starting from the origin. Every point at the maximum ratio is highlighted,
// and a dashed ray from the origin with slope equal to that ratio shows the
// line all other points stay under.
//
//	svg := chart.RenderSVG(substats.Analyze(text))
//
// An empty series renders a placeholder message instead of axes.
package chart
