// Package route computes connector geometry: endpoint resolution from box
// bindings, orthogonal elbow paths, and the cardinal headings arrowheads
// are drawn at. Like the layout pass it is pure and never fails; bindings
// that point at missing boxes are treated as absent.
package route

import (
	"math"

	"github.com/matzehuels/orgflow/pkg/geom"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

// Jogged-spine constants in canvas units. The drop pushes the path below
// the parent before it runs sideways, and the offset keeps the spine clear
// of the child boxes it passes.
const (
	verticalDrop = 20.0
	spineOffset  = 20.0
)

// ResolveAll recomputes every connector's endpoints, start direction, and
// bounding position from the current box geometry, returning a new slice
// in the original order. Boxes and other shapes pass through unchanged.
// Resolving an already-resolved list is a no-op as long as box geometry
// has not moved in between.
func ResolveAll(list []shapes.Shape) []shapes.Shape {
	out := shapes.CloneAll(list)
	boxes := shapes.BoxIndex(out)
	for _, c := range shapes.ConnectorsOf(out) {
		resolve(c, boxes)
	}
	return out
}

func resolve(c *shapes.Connector, boxes map[string]*shapes.Box) {
	if box, side, ok := boundBox(c.End, boxes); ok {
		c.EndPoint = box.AnchorPoint(side)
	}

	if box, side, ok := boundBox(c.Start, boxes); ok {
		c.StartPoint = box.AnchorPoint(side)
		if side.Vertical() {
			c.StartDirection = shapes.DirectionVertical
		} else {
			c.StartDirection = shapes.DirectionHorizontal
		}
	} else {
		// Unbound start: route along the dominant axis between the
		// endpoints, horizontal on ties.
		dx := math.Abs(c.EndPoint.X - c.StartPoint.X)
		dy := math.Abs(c.EndPoint.Y - c.StartPoint.Y)
		if dy > dx {
			c.StartDirection = shapes.DirectionVertical
		} else {
			c.StartDirection = shapes.DirectionHorizontal
		}
	}

	c.X = min(c.StartPoint.X, c.EndPoint.X)
	c.Y = min(c.StartPoint.Y, c.EndPoint.Y)
}

// boundBox resolves a binding against the box index, reporting false for
// nil bindings and bindings whose box is missing.
func boundBox(b *shapes.Binding, boxes map[string]*shapes.Box) (*shapes.Box, shapes.Side, bool) {
	if b == nil {
		return nil, 0, false
	}
	box, ok := boxes[b.BoxID]
	if !ok {
		return nil, 0, false
	}
	return box, b.Side, true
}

// Path returns the orthogonal polyline for a resolved connector. Two
// families exist: connectors leaving a vertical-stack box for a child's
// left or right side get the four-segment jogged spine; everything else
// gets the standard elbow through a single midpoint. Sibling connectors
// under one stack share the spine's x, which is what makes the stack read
// as one continuous rail.
func Path(c *shapes.Connector, boxes map[string]*shapes.Box) []geom.Point {
	if path, ok := spinePath(c, boxes); ok {
		return path
	}
	return elbowPath(c.StartPoint, c.EndPoint, c.StartDirection)
}

func spinePath(c *shapes.Connector, boxes map[string]*shapes.Box) ([]geom.Point, bool) {
	start, _, ok := boundBox(c.Start, boxes)
	if !ok || !start.VerticalStack() {
		return nil, false
	}
	end, side, ok := boundBox(c.End, boxes)
	if !ok || (side != shapes.SideLeft && side != shapes.SideRight) {
		return nil, false
	}

	spineX := end.X - spineOffset
	if side == shapes.SideRight {
		spineX = end.X + end.Width + spineOffset
	}

	jogY := c.StartPoint.Y + verticalDrop
	return []geom.Point{
		c.StartPoint,
		{X: c.StartPoint.X, Y: jogY},
		{X: spineX, Y: jogY},
		{X: spineX, Y: c.EndPoint.Y},
		c.EndPoint,
	}, true
}

func elbowPath(a, b geom.Point, dir shapes.Direction) []geom.Point {
	if dir == shapes.DirectionVertical {
		midY := (a.Y + b.Y) / 2
		return []geom.Point{a, {X: a.X, Y: midY}, {X: b.X, Y: midY}, b}
	}
	midX := (a.X + b.X) / 2
	return []geom.Point{a, {X: midX, Y: a.Y}, {X: midX, Y: b.Y}, b}
}

// =============================================================================
// Arrowhead Headings
// =============================================================================

// Heading is one of the four cardinal directions an arrowhead can face.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "right"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingUp:
		return "up"
	default:
		return "unknown"
	}
}

// Angle returns the rotation in degrees for artwork drawn facing right.
func (h Heading) Angle() float64 {
	switch h {
	case HeadingDown:
		return 90
	case HeadingLeft:
		return 180
	case HeadingUp:
		return 270
	default:
		return 0
	}
}

// Opposite returns the reversed heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingRight:
		return HeadingLeft
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingDown
	}
}

// ApproachHeadings reports the directions arrowheads face at the two ends
// of a path: at the end, the direction of travel of the final segment; at
// the start, the reverse of the opening segment so the head points back
// into the origin. Zero-length segments are skipped; a fully degenerate
// path defaults to right.
func ApproachHeadings(path []geom.Point) (start, end Heading) {
	start, end = HeadingRight, HeadingRight
	for i := 1; i < len(path); i++ {
		if h, ok := headingOf(path[i-1], path[i]); ok {
			start = h.Opposite()
			break
		}
	}
	for i := len(path) - 1; i > 0; i-- {
		if h, ok := headingOf(path[i-1], path[i]); ok {
			end = h
			break
		}
	}
	return start, end
}

// headingOf classifies a segment's direction, reporting false for
// zero-length segments. Orthogonal paths only move along one axis per
// segment; should a diagonal sneak in, the horizontal component wins.
func headingOf(from, to geom.Point) (Heading, bool) {
	switch {
	case to.X > from.X:
		return HeadingRight, true
	case to.X < from.X:
		return HeadingLeft, true
	case to.Y > from.Y:
		return HeadingDown, true
	case to.Y < from.Y:
		return HeadingUp, true
	default:
		return HeadingRight, false
	}
}
