// Package svg renders charts as standalone SVG documents.
//
// # Overview
//
// [Render] produces the primary visual output for a chart:
//
//	out := svg.Render(c, svg.WithStyle(styles.Blueprint{}), svg.WithGrid())
//
// The renderer walks the chart's shape array in document order, so
// later shapes draw on top of earlier ones, matching the editor's
// z-order. Each connector is routed with [route.Path] at render time;
// the SVG therefore shows the same elbows and vertical-stack spine jogs
// the editor computes.
//
// # Styles
//
// Visual appearance is delegated entirely to a [styles.Style]. The
// renderer resolves geometry (positions, routed paths, arrowhead
// orientations) into plain view structs and hands them to the style,
// which decides stroke, fill, and lettering. See the [styles] package
// for the built-in styles and the custom style recipe.
//
// # Output
//
// The result is a self-contained SVG with a fixed viewBox matching the
// chart canvas. A small CSS block adds hover feedback for boxes and
// connectors when viewed in a browser; it has no effect on PDF or PNG
// conversion via [render.ToPDF] and [render.ToPNG].
//
// [route.Path]: github.com/matzehuels/orgflow/pkg/route.Path
// [styles]: github.com/matzehuels/orgflow/pkg/render/svg/styles
// [render.ToPDF]: github.com/matzehuels/orgflow/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/orgflow/pkg/render.ToPNG
package svg
