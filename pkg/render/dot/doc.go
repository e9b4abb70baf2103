// Package dot exports org charts as traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// each box appears as a node and each reporting line as an arrow. It's an
// alternative to the positioned chart SVG for cases where a compact
// auto-laid-out diagram is preferred, such as embedding in documentation.
//
// # Usage
//
// Convert a shape list to DOT format, then render to SVG:
//
//	src := dot.ToDOT(c.ToShapes(), dot.Options{Detailed: false})
//	svg, err := dot.RenderSVG(src)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := dot.RenderPDF(src)
//	png, err := dot.RenderPNG(src, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include level and stacking metadata
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes, matching the chart's top-down reporting orientation. Box
// positions from the editor are intentionally discarded: this view answers
// "who reports to whom", not "where did I put the box".
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package dot
