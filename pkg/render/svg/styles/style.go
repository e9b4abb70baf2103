package styles

import (
	"bytes"

	"github.com/matzehuels/orgflow/pkg/geom"
)

// Style defines the visual appearance for chart rendering.
// Implementations control how the canvas, boxes, triangles, text, and
// connectors are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (markers, patterns, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderCanvas writes the canvas background, with grid lines when
	// grid is set.
	RenderCanvas(buf *bytes.Buffer, width, height float64, grid bool)
	// RenderBox writes the SVG for a single box outline.
	RenderBox(buf *bytes.Buffer, b BoxView)
	// RenderTriangle writes the SVG for a triangle shape.
	RenderTriangle(buf *bytes.Buffer, v TriangleView)
	// RenderText writes the SVG for a box label or free-standing text.
	RenderText(buf *bytes.Buffer, v TextView)
	// RenderConnector writes the SVG for a connector path and its
	// arrowheads.
	RenderConnector(buf *bytes.Buffer, v ConnectorView)
}

// BoxView contains all data needed to render a single box.
type BoxView struct {
	ID         string  // Box identifier
	Label      string  // Display text
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates
	Ellipse    bool    // Draw as ellipse instead of rectangle
}

// TriangleView contains positioning data for a triangle shape.
type TriangleView struct {
	ID         string
	X, Y, W, H float64
}

// TextView carries text centered at (CX, CY). W and H bound the text; a
// FontSize of zero asks the style to fit the text to those bounds.
type TextView struct {
	ID       string
	Text     string
	CX, CY   float64
	W, H     float64
	FontSize float64
}

// Arrow identifies the decoration drawn at a connector end.
type Arrow int

const (
	// ArrowNone draws nothing.
	ArrowNone Arrow = iota
	// ArrowChevron draws a two-stroke chevron pointing at the endpoint.
	ArrowChevron
	// ArrowBar draws a short tick across the final segment.
	ArrowBar
)

// ConnectorView contains the routed polyline for a connector together
// with the arrowhead kinds and orientations at each end. Angles are in
// degrees: 0 points right, 90 points down.
type ConnectorView struct {
	ID         string
	Points     []geom.Point
	StartArrow Arrow
	EndArrow   Arrow
	StartAngle float64
	EndAngle   float64
}
