// Package styles defines visual styles for chart SVG rendering.
//
// # Overview
//
// Orgflow supports multiple visual styles that control how the canvas,
// boxes, triangles, text, and connectors are drawn. This package provides:
//
//   - [Style]: The interface that all styles implement
//   - [Simple]: The editor's clean white-on-white appearance (default)
//   - [Blueprint]: A technical-drawing look on a deep blue canvas
//
// # The Style Interface
//
// All styles implement [Style], which provides one method per visual
// element:
//
//   - RenderDefs: SVG <defs> section (markers, patterns, filters)
//   - RenderCanvas: Background and optional alignment grid
//   - RenderBox: Box outlines (rectangle or ellipse)
//   - RenderTriangle: Decorative triangles
//   - RenderText: Box labels and free-standing text
//   - RenderConnector: Routed polylines with arrowheads
//
// # View Data
//
// Styles receive plain view structs ([BoxView], [TextView],
// [ConnectorView]) already resolved to canvas coordinates. Connector
// views carry the full routed point list plus arrowhead kinds and
// orientations, so styles only decide stroke, fill, and lettering, never
// geometry.
//
// Arrowheads are drawn as explicit rotated paths rather than SVG
// markers. Marker auto-orientation misbehaves on the zero-length
// segments that routed paths can legitimately contain; the renderer
// already computes stable headings for those, and [RenderArrowhead]
// applies them directly.
//
// # Creating Custom Styles
//
// To create a custom style:
//
//  1. Implement the [Style] interface
//  2. Use the provided view structs for positioning
//  3. Write SVG elements to the provided bytes.Buffer
//
// The shared helpers [RenderGrid], [RenderArrowhead], [PolylinePoints],
// [FitFontSize], and [EscapeXML] cover the element geometry common to
// all styles.
package styles
