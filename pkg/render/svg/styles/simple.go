package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/orgflow/pkg/fonts"
)

// Simple is a clean, minimal style: white shapes with dark strokes on a
// white canvas. This is the default style and matches the editor's own
// appearance.
type Simple struct{}

const (
	simpleStroke = "#333"
	simpleGrid   = "#e8e8e8"
)

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderCanvas draws a white background and, when grid is set, the
// editor's alignment grid.
func (Simple) RenderCanvas(buf *bytes.Buffer, width, height float64, grid bool) {
	fmt.Fprintf(buf, `  <rect class="canvas" width="%.1f" height="%.1f" fill="white"/>`+"\n", width, height)
	if grid {
		RenderGrid(buf, width, height, simpleGrid)
	}
}

// RenderBox draws the box outline as a rounded rectangle or an ellipse
// inscribed in its bounds.
func (Simple) RenderBox(buf *bytes.Buffer, b BoxView) {
	if b.Ellipse {
		fmt.Fprintf(buf, `  <ellipse id="box-%s" class="box" cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="white" stroke="%s" stroke-width="1.5"/>`+"\n",
			EscapeXML(b.ID), b.CX, b.CY, b.W/2, b.H/2, simpleStroke)
		return
	}
	r := cornerRadius(b)
	fmt.Fprintf(buf, `  <rect id="box-%s" class="box" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill="white" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H, r, r, simpleStroke)
}

func cornerRadius(b BoxView) float64 {
	return min(4.0, b.W/8, b.H/8)
}

// RenderTriangle draws the triangle with its apex at the top center of
// the bounds.
func (Simple) RenderTriangle(buf *bytes.Buffer, v TriangleView) {
	fmt.Fprintf(buf, `  <path id="shape-%s" class="shape" d="M%.2f,%.2f L%.2f,%.2f L%.2f,%.2f Z" fill="white" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(v.ID), v.X+v.W/2, v.Y, v.X+v.W, v.Y+v.H, v.X, v.Y+v.H, simpleStroke)
}

// RenderText draws text centered on (CX, CY), fitting the font size to
// the bounds unless the view pins one.
func (Simple) RenderText(buf *bytes.Buffer, v TextView) {
	if v.Text == "" {
		return
	}
	size := v.FontSize
	if size == 0 {
		size = FitFontSize(v)
	}
	fmt.Fprintf(buf, `  <g class="box-text" data-box="%s"><text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s">%s</text></g>`+"\n",
		EscapeXML(v.ID), v.CX, v.CY, fonts.SansFamily, size, simpleStroke, EscapeXML(v.Text))
}

// RenderConnector draws the routed polyline and its arrowheads.
func (Simple) RenderConnector(buf *bytes.Buffer, v ConnectorView) {
	if len(v.Points) < 2 {
		return
	}
	fmt.Fprintf(buf, `  <polyline id="conn-%s" class="connector" points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(v.ID), PolylinePoints(v.Points), simpleStroke)
	RenderArrowhead(buf, v.Points[0], v.StartAngle, v.StartArrow, simpleStroke)
	RenderArrowhead(buf, v.Points[len(v.Points)-1], v.EndAngle, v.EndArrow, simpleStroke)
}
