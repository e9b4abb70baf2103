// Package shapes defines the shape model operated on by the layout engine
// and the connector router.
//
// The shape union is closed: a diagram consists of boxes (rectangles and
// ellipses), triangles, free-standing labels, and elbow connectors, and
// nothing else. Code that needs per-kind behavior switches exhaustively on
// the concrete types. Adding a new shape kind means touching every such
// switch, which is intentional - the engine's guarantees only hold for
// shapes it knows how to position.
//
// All shape types are plain data. Operations that "modify" a diagram
// ([layout.Apply], [route.ResolveAll], hierarchy constraint enforcement)
// clone their input with [CloneAll] and return new slices; the caller's
// shapes are never touched.
package shapes

import "github.com/matzehuels/orgflow/pkg/geom"

// =============================================================================
// Enumerations
// =============================================================================

// BoxKind distinguishes the two box outlines. Both kinds behave identically
// during layout; the kind only changes how the shape is drawn.
type BoxKind int

const (
	// BoxKindRectangle draws the box with straight edges.
	BoxKindRectangle BoxKind = iota
	// BoxKindEllipse draws the box as an ellipse inscribed in its bounds.
	BoxKindEllipse
)

// String returns the lower-case name of the kind.
func (k BoxKind) String() string {
	if k == BoxKindEllipse {
		return "ellipse"
	}
	return "rectangle"
}

// ChildLayout controls how a box arranges its direct children.
type ChildLayout int

const (
	// ChildLayoutHorizontal places children side by side in a centered row
	// below the parent. This is the default.
	ChildLayoutHorizontal ChildLayout = iota
	// ChildLayoutVertical stacks children top to bottom, indented to the
	// right of the parent's center line.
	ChildLayoutVertical
)

// String returns the lower-case name of the layout mode.
func (l ChildLayout) String() string {
	if l == ChildLayoutVertical {
		return "vertical"
	}
	return "horizontal"
}

// Side identifies an attachment point on a box's outline.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
	SideCenter
)

// String returns the lower-case name of the side.
func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideCenter:
		return "center"
	default:
		return "top"
	}
}

// Vertical reports whether a connector leaving through this side travels
// vertically first. Top and bottom exits are vertical; left, right, and
// center exits are horizontal.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Direction is the axis a connector's first segment travels along.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if d == DirectionVertical {
		return "vertical"
	}
	return "horizontal"
}

// ArrowKind selects the decoration drawn at a connector end.
type ArrowKind int

const (
	// ArrowKindNone draws nothing.
	ArrowKindNone ArrowKind = iota
	// ArrowKindArrow draws a two-stroke chevron pointing at the endpoint.
	ArrowKindArrow
	// ArrowKindBar draws a short tick perpendicular to the final segment.
	ArrowKindBar
)

// String returns the lower-case name of the arrow kind.
func (a ArrowKind) String() string {
	switch a {
	case ArrowKindArrow:
		return "arrow"
	case ArrowKindBar:
		return "bar"
	default:
		return "none"
	}
}

// =============================================================================
// Shape - Closed Union
// =============================================================================

// Shape is the closed union over all diagram shapes. The only
// implementations are [*Box], [*Triangle], [*Label], and [*Connector].
type Shape interface {
	// ShapeID returns the shape's unique identifier.
	ShapeID() string
	// Bounds returns the shape's axis-aligned bounding rectangle.
	Bounds() geom.Rect
	// Clone returns an independent deep copy of the shape.
	Clone() Shape

	// isShape restricts implementations to this package.
	isShape()
}

// =============================================================================
// Box
// =============================================================================

// Box is a rectangle or ellipse participating in the hierarchy. Position
// (X, Y) and Level are owned by the layout engine; everything else is owned
// by the caller.
type Box struct {
	ID          string
	Kind        BoxKind
	Label       string  // Display text (may be empty)
	X, Y        float64 // Top-left corner, set by layout
	Width       float64
	Height      float64
	Level       int // Depth rank, recomputed by layout from the final y
	ChildLayout ChildLayout
}

// ShapeID returns the box identifier.
func (b *Box) ShapeID() string { return b.ID }

// Bounds returns the box rectangle.
func (b *Box) Bounds() geom.Rect { return geom.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height} }

// Clone returns an independent copy of the box.
func (b *Box) Clone() Shape {
	c := *b
	return &c
}

// VerticalStack reports whether the box stacks its children vertically.
func (b *Box) VerticalStack() bool { return b.ChildLayout == ChildLayoutVertical }

// AnchorPoint returns the attachment point for the given side: the midpoint
// of the named edge, or the box center for [SideCenter]. Ellipses use the
// same anchor points as rectangles.
func (b *Box) AnchorPoint(s Side) geom.Point {
	r := b.Bounds()
	switch s {
	case SideTop:
		return geom.Point{X: r.CenterX(), Y: r.Top()}
	case SideRight:
		return geom.Point{X: r.Right(), Y: r.CenterY()}
	case SideBottom:
		return geom.Point{X: r.CenterX(), Y: r.Bottom()}
	case SideLeft:
		return geom.Point{X: r.Left(), Y: r.CenterY()}
	default:
		return r.Center()
	}
}

func (*Box) isShape() {}

// =============================================================================
// Triangle
// =============================================================================

// Triangle is a decorative shape. It takes no part in the hierarchy and is
// passed through by the layout engine unchanged.
type Triangle struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
}

// ShapeID returns the triangle identifier.
func (t *Triangle) ShapeID() string { return t.ID }

// Bounds returns the triangle's bounding rectangle.
func (t *Triangle) Bounds() geom.Rect { return geom.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height} }

// Clone returns an independent copy of the triangle.
func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

func (*Triangle) isShape() {}

// =============================================================================
// Label
// =============================================================================

// Label is free-standing text. Like triangles, labels are never moved by
// the layout engine.
type Label struct {
	ID       string
	Text     string
	X, Y     float64
	Width    float64
	Height   float64
	FontSize float64
}

// ShapeID returns the label identifier.
func (l *Label) ShapeID() string { return l.ID }

// Bounds returns the label's bounding rectangle.
func (l *Label) Bounds() geom.Rect { return geom.Rect{X: l.X, Y: l.Y, W: l.Width, H: l.Height} }

// Clone returns an independent copy of the label.
func (l *Label) Clone() Shape {
	c := *l
	return &c
}

func (*Label) isShape() {}

// =============================================================================
// Connector
// =============================================================================

// Binding attaches a connector end to a box side. A nil binding leaves the
// end free-floating at whatever point the caller set.
type Binding struct {
	BoxID string
	Side  Side
}

// Connector is an orthogonal elbow line between two points, each optionally
// bound to a box side. StartPoint, EndPoint, StartDirection, and the
// bounding origin (X, Y) are computed by the router for bound ends; for
// unbound ends the points are caller-owned and only the direction and
// bounds are derived.
type Connector struct {
	ID             string
	Start          *Binding // nil when the start is unbound
	End            *Binding // nil when the end is unbound
	X, Y           float64  // Bounding origin: per-axis minimum of the endpoints
	StartPoint     geom.Point
	EndPoint       geom.Point
	StartDirection Direction
	StartArrow     ArrowKind
	EndArrow       ArrowKind
}

// ShapeID returns the connector identifier.
func (c *Connector) ShapeID() string { return c.ID }

// Bounds returns the rectangle spanned by the two endpoints.
func (c *Connector) Bounds() geom.Rect {
	left := min(c.StartPoint.X, c.EndPoint.X)
	top := min(c.StartPoint.Y, c.EndPoint.Y)
	return geom.Rect{
		X: left,
		Y: top,
		W: max(c.StartPoint.X, c.EndPoint.X) - left,
		H: max(c.StartPoint.Y, c.EndPoint.Y) - top,
	}
}

// Clone returns an independent copy of the connector, including its
// bindings.
func (c *Connector) Clone() Shape {
	d := *c
	if c.Start != nil {
		s := *c.Start
		d.Start = &s
	}
	if c.End != nil {
		e := *c.End
		d.End = &e
	}
	return &d
}

// Bound reports whether both ends are bound to boxes.
func (c *Connector) Bound() bool { return c.Start != nil && c.End != nil }

func (*Connector) isShape() {}

// =============================================================================
// Slice Helpers
// =============================================================================

// CloneAll deep-copies a shape slice. The result shares nothing with the
// input; mutating one side never affects the other.
func CloneAll(list []Shape) []Shape {
	out := make([]Shape, len(list))
	for i, s := range list {
		out[i] = s.Clone()
	}
	return out
}

// BoxesOf returns the boxes from list in input order. The returned pointers
// alias the shapes in list.
func BoxesOf(list []Shape) []*Box {
	var out []*Box
	for _, s := range list {
		if b, ok := s.(*Box); ok {
			out = append(out, b)
		}
	}
	return out
}

// ConnectorsOf returns the connectors from list in input order. The
// returned pointers alias the shapes in list.
func ConnectorsOf(list []Shape) []*Connector {
	var out []*Connector
	for _, s := range list {
		if c, ok := s.(*Connector); ok {
			out = append(out, c)
		}
	}
	return out
}

// BoxIndex returns the boxes from list keyed by ID. On duplicate IDs the
// first occurrence wins. The returned pointers alias the shapes in list.
func BoxIndex(list []Shape) map[string]*Box {
	idx := make(map[string]*Box)
	for _, b := range BoxesOf(list) {
		if _, exists := idx[b.ID]; !exists {
			idx[b.ID] = b
		}
	}
	return idx
}
