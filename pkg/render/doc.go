// Package render provides output rendering for org charts.
//
// # Overview
//
// This package contains the renderers that transform a laid-out chart
// into final outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Chart SVG rendering (in [svg] subpackage)
//   - Graphviz node-link export (in [dot] subpackage)
//   - Terminal box-drawing output (in [term] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are shared by the
// svg and dot renderers.
//
//	out := svg.Render(c, svg.WithStyle(styles.Simple{}))
//	pdf, err := render.ToPDF(out)
//	png, err := render.ToPNG(out, 2.0)  // 2x scale
//
// # Chart SVG
//
// The [svg] subpackage is the primary renderer. It draws the chart's
// shapes in document order (the shape array doubles as z-order), routing
// connectors through the same geometry the editor uses.
//
// # Node-Link Export
//
// The [dot] subpackage exports the reporting hierarchy as a Graphviz
// digraph, discarding positions and letting Graphviz lay the tree out.
// Useful for piping charts into existing graph tooling.
//
// # Terminal Output
//
// The [term] subpackage renders charts with box-drawing characters for
// in-terminal preview.
//
// [svg]: github.com/matzehuels/orgflow/pkg/render/svg
// [dot]: github.com/matzehuels/orgflow/pkg/render/dot
// [term]: github.com/matzehuels/orgflow/pkg/render/term
package render
