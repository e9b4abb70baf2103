package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/orgflow/pkg/fonts"
)

// Blueprint renders the chart as a technical drawing: light strokes and
// monospace lettering on a deep blue canvas. Boxes are filled with the
// canvas color so connectors never show through them.
type Blueprint struct{}

const (
	blueprintCanvas = "#0a3055"
	blueprintStroke = "#dce9f7"
	blueprintGrid   = "#16416f"
)

// RenderDefs writes nothing; the blueprint style needs no defs.
func (Blueprint) RenderDefs(buf *bytes.Buffer) {}

// RenderCanvas draws the blue background. The grid is always drawn;
// the grid flag only switches it from faint to full strength.
func (Blueprint) RenderCanvas(buf *bytes.Buffer, width, height float64, grid bool) {
	fmt.Fprintf(buf, `  <rect class="canvas" width="%.1f" height="%.1f" fill="%s"/>`+"\n", width, height, blueprintCanvas)
	stroke := blueprintGrid
	if !grid {
		stroke = "#0e3a63"
	}
	RenderGrid(buf, width, height, stroke)
}

// RenderBox draws the box outline in blueprint ink.
func (Blueprint) RenderBox(buf *bytes.Buffer, b BoxView) {
	if b.Ellipse {
		fmt.Fprintf(buf, `  <ellipse id="box-%s" class="box" cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			EscapeXML(b.ID), b.CX, b.CY, b.W/2, b.H/2, blueprintCanvas, blueprintStroke)
		return
	}
	fmt.Fprintf(buf, `  <rect id="box-%s" class="box" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H, blueprintCanvas, blueprintStroke)
}

// RenderTriangle draws the triangle with its apex at the top center of
// the bounds.
func (Blueprint) RenderTriangle(buf *bytes.Buffer, v TriangleView) {
	fmt.Fprintf(buf, `  <path id="shape-%s" class="shape" d="M%.2f,%.2f L%.2f,%.2f L%.2f,%.2f Z" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(v.ID), v.X+v.W/2, v.Y, v.X+v.W, v.Y+v.H, v.X, v.Y+v.H, blueprintCanvas, blueprintStroke)
}

// RenderText draws monospace text centered on (CX, CY).
func (Blueprint) RenderText(buf *bytes.Buffer, v TextView) {
	if v.Text == "" {
		return
	}
	size := v.FontSize
	if size == 0 {
		size = FitFontSize(v)
	}
	fmt.Fprintf(buf, `  <g class="box-text" data-box="%s"><text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s">%s</text></g>`+"\n",
		EscapeXML(v.ID), v.CX, v.CY, fonts.MonoFamily, size, blueprintStroke, EscapeXML(v.Text))
}

// RenderConnector draws the routed polyline and its arrowheads.
func (Blueprint) RenderConnector(buf *bytes.Buffer, v ConnectorView) {
	if len(v.Points) < 2 {
		return
	}
	fmt.Fprintf(buf, `  <polyline id="conn-%s" class="connector" points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(v.ID), PolylinePoints(v.Points), blueprintStroke)
	RenderArrowhead(buf, v.Points[0], v.StartAngle, v.StartArrow, blueprintStroke)
	RenderArrowhead(buf, v.Points[len(v.Points)-1], v.EndAngle, v.EndArrow, blueprintStroke)
}
