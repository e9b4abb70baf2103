package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/orgflow/pkg/geom"
)

// gridStep is the editor's alignment grid spacing in canvas units.
const gridStep = 20

// RenderGrid draws the alignment grid as a repeating pattern covering the
// canvas. Styles call this from RenderCanvas with their own grid color.
func RenderGrid(buf *bytes.Buffer, width, height float64, stroke string) {
	fmt.Fprintf(buf, `  <defs><pattern id="grid" width="%d" height="%d" patternUnits="userSpaceOnUse"><path d="M %d 0 L 0 0 0 %d" fill="none" stroke="%s" stroke-width="1"/></pattern></defs>`+"\n",
		gridStep, gridStep, gridStep, gridStep, stroke)
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="url(#grid)"/>`+"\n", width, height)
}

// RenderArrowhead writes the terminal decoration for a connector end.
// Shapes are drawn in local coordinates with the tip at the origin
// pointing along +x, then rotated into the segment heading.
func RenderArrowhead(buf *bytes.Buffer, p geom.Point, angle float64, kind Arrow, stroke string) {
	switch kind {
	case ArrowChevron:
		fmt.Fprintf(buf, `  <path class="arrowhead" d="M-8,-5 L0,0 L-8,5" transform="translate(%.2f,%.2f) rotate(%.0f)" fill="none" stroke="%s" stroke-width="1.5" stroke-linecap="round"/>`+"\n",
			p.X, p.Y, angle, stroke)
	case ArrowBar:
		fmt.Fprintf(buf, `  <path class="arrowhead" d="M-4,-6 L-4,6" transform="translate(%.2f,%.2f) rotate(%.0f)" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			p.X, p.Y, angle, stroke)
	}
}

// PolylinePoints formats a point list for the SVG points attribute.
func PolylinePoints(pts []geom.Point) string {
	var buf bytes.Buffer
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.2f,%.2f", p.X, p.Y)
	}
	return buf.String()
}
