package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/orgflow/pkg/chart"
	"github.com/matzehuels/orgflow/pkg/render/svg/styles"
	"github.com/matzehuels/orgflow/pkg/route"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

const interactionCSS = `
    .box { transition: stroke-width 0.15s ease; }
    .box:hover { stroke-width: 3; }
    .connector { transition: stroke-width 0.15s ease; }
    .connector:hover { stroke-width: 2.5; }`

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	style styles.Style
	grid  bool
}

// WithStyle selects the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) Option { return func(r *renderer) { r.style = s } }

// WithGrid draws the editor's alignment grid behind the shapes.
func WithGrid() Option { return func(r *renderer) { r.grid = true } }

// Render draws the chart as a standalone SVG document. Shapes are drawn
// in document order, so the shape array doubles as z-order exactly as in
// the editor. Connector paths are routed with [route.Path], giving the
// same elbows and spine jogs the editor shows.
func Render(c *chart.Chart, opts ...Option) []byte {
	r := newRenderer(opts...)

	list := c.ToShapes()
	boxes := shapes.BoxIndex(list)
	width, height := canvasSize(c)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	r.style.RenderDefs(&buf)
	r.style.RenderCanvas(&buf, width, height, r.grid)

	for _, s := range list {
		switch v := s.(type) {
		case *shapes.Box:
			r.style.RenderBox(&buf, boxView(v))
			if v.Label != "" {
				r.style.RenderText(&buf, boxTextView(v))
			}
		case *shapes.Triangle:
			r.style.RenderTriangle(&buf, styles.TriangleView{ID: v.ID, X: v.X, Y: v.Y, W: v.Width, H: v.Height})
		case *shapes.Label:
			r.style.RenderText(&buf, labelView(v))
		case *shapes.Connector:
			r.style.RenderConnector(&buf, connectorView(v, boxes))
		}
	}

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", interactionCSS)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newRenderer(opts ...Option) renderer {
	r := renderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func canvasSize(c *chart.Chart) (float64, float64) {
	w, h := c.Canvas.Width, c.Canvas.Height
	if w <= 0 {
		w = chart.DefaultCanvasWidth
	}
	if h <= 0 {
		h = chart.DefaultCanvasHeight
	}
	return w, h
}

func boxView(b *shapes.Box) styles.BoxView {
	return styles.BoxView{
		ID:    b.ID,
		Label: b.Label,
		X:     b.X, Y: b.Y, W: b.Width, H: b.Height,
		CX:      b.X + b.Width/2,
		CY:      b.Y + b.Height/2,
		Ellipse: b.Kind == shapes.BoxKindEllipse,
	}
}

func boxTextView(b *shapes.Box) styles.TextView {
	return styles.TextView{
		ID:   b.ID,
		Text: b.Label,
		CX:   b.X + b.Width/2,
		CY:   b.Y + b.Height/2,
		W:    b.Width,
		H:    b.Height,
	}
}

func labelView(l *shapes.Label) styles.TextView {
	return styles.TextView{
		ID:       l.ID,
		Text:     l.Text,
		CX:       l.X + l.Width/2,
		CY:       l.Y + l.Height/2,
		W:        l.Width,
		H:        l.Height,
		FontSize: l.FontSize,
	}
}

func connectorView(c *shapes.Connector, boxes map[string]*shapes.Box) styles.ConnectorView {
	path := route.Path(c, boxes)
	start, end := route.ApproachHeadings(path)
	return styles.ConnectorView{
		ID:         c.ID,
		Points:     path,
		StartArrow: arrowOf(c.StartArrow),
		EndArrow:   arrowOf(c.EndArrow),
		StartAngle: start.Angle(),
		EndAngle:   end.Angle(),
	}
}

func arrowOf(k shapes.ArrowKind) styles.Arrow {
	switch k {
	case shapes.ArrowKindArrow:
		return styles.ArrowChevron
	case shapes.ArrowKindBar:
		return styles.ArrowBar
	default:
		return styles.ArrowNone
	}
}
