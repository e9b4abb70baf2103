package chart

import (
	"github.com/matzehuels/orgflow/pkg/geom"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

var childLayoutFromString = map[string]shapes.ChildLayout{
	LayoutHorizontal: shapes.ChildLayoutHorizontal,
	LayoutVertical:   shapes.ChildLayoutVertical,
}

var childLayoutToString = map[shapes.ChildLayout]string{
	shapes.ChildLayoutVertical: LayoutVertical,
}

var sideFromString = map[string]shapes.Side{
	SideTop:    shapes.SideTop,
	SideRight:  shapes.SideRight,
	SideBottom: shapes.SideBottom,
	SideLeft:   shapes.SideLeft,
	SideCenter: shapes.SideCenter,
}

var sideToString = map[shapes.Side]string{
	shapes.SideTop:    SideTop,
	shapes.SideRight:  SideRight,
	shapes.SideBottom: SideBottom,
	shapes.SideLeft:   SideLeft,
	shapes.SideCenter: SideCenter,
}

var arrowFromString = map[string]shapes.ArrowKind{
	ArrowNone:  shapes.ArrowKindNone,
	ArrowArrow: shapes.ArrowKindArrow,
	ArrowBar:   shapes.ArrowKindBar,
}

var arrowToString = map[shapes.ArrowKind]string{
	shapes.ArrowKindArrow: ArrowArrow,
	shapes.ArrowKindBar:   ArrowBar,
}

var directionFromString = map[string]shapes.Direction{
	DirectionHorizontal: shapes.DirectionHorizontal,
	DirectionVertical:   shapes.DirectionVertical,
}

// Defaults (horizontal direction, no arrowhead, horizontal child layout)
// map to the empty string so omitempty keeps documents minimal.
var directionToString = map[shapes.Direction]string{
	shapes.DirectionVertical: DirectionVertical,
}

// ToShapes converts the document's shape array to engine shapes,
// preserving order. Unknown enum strings fall back to their zero values
// and shapes with unknown types are dropped; run
// [Chart.ValidateAndSetDefaults] first when strictness matters.
func (c *Chart) ToShapes() []shapes.Shape {
	out := make([]shapes.Shape, 0, len(c.Shapes))
	for i := range c.Shapes {
		s := &c.Shapes[i]
		switch s.Type {
		case TypeRectangle, TypeEllipse:
			kind := shapes.BoxKindRectangle
			if s.Type == TypeEllipse {
				kind = shapes.BoxKindEllipse
			}
			out = append(out, &shapes.Box{
				ID:          s.ID,
				Kind:        kind,
				Label:       s.Text,
				X:           s.X,
				Y:           s.Y,
				Width:       s.Width,
				Height:      s.Height,
				Level:       s.Level,
				ChildLayout: childLayoutFromString[s.ChildLayout],
			})
		case TypeTriangle:
			out = append(out, &shapes.Triangle{
				ID:     s.ID,
				X:      s.X,
				Y:      s.Y,
				Width:  s.Width,
				Height: s.Height,
			})
		case TypeText:
			out = append(out, &shapes.Label{
				ID:       s.ID,
				Text:     s.Text,
				X:        s.X,
				Y:        s.Y,
				Width:    s.Width,
				Height:   s.Height,
				FontSize: s.FontSize,
			})
		case TypeConnector:
			conn := &shapes.Connector{
				ID:             s.ID,
				X:              s.X,
				Y:              s.Y,
				StartDirection: directionFromString[s.StartDirection],
				StartArrow:     arrowFromString[s.StartArrow],
				EndArrow:       arrowFromString[s.EndArrow],
			}
			if s.Start != nil {
				conn.Start = &shapes.Binding{BoxID: s.Start.BoxID, Side: sideFromString[s.Start.Side]}
			}
			if s.End != nil {
				conn.End = &shapes.Binding{BoxID: s.End.BoxID, Side: sideFromString[s.End.Side]}
			}
			if s.StartPoint != nil {
				conn.StartPoint = *s.StartPoint
			}
			if s.EndPoint != nil {
				conn.EndPoint = *s.EndPoint
			}
			out = append(out, conn)
		}
	}
	return out
}

// FromShapes replaces the document's shape array with the wire form of
// the given engine shapes, preserving order. Canvas, params, and document
// metadata are left as they are.
func (c *Chart) FromShapes(list []shapes.Shape) {
	out := make([]Shape, 0, len(list))
	for _, s := range list {
		switch v := s.(type) {
		case *shapes.Box:
			typ := TypeRectangle
			if v.Kind == shapes.BoxKindEllipse {
				typ = TypeEllipse
			}
			out = append(out, Shape{
				Type:        typ,
				ID:          v.ID,
				Text:        v.Label,
				X:           v.X,
				Y:           v.Y,
				Width:       v.Width,
				Height:      v.Height,
				Level:       v.Level,
				ChildLayout: childLayoutToString[v.ChildLayout],
			})
		case *shapes.Triangle:
			out = append(out, Shape{
				Type:   TypeTriangle,
				ID:     v.ID,
				X:      v.X,
				Y:      v.Y,
				Width:  v.Width,
				Height: v.Height,
			})
		case *shapes.Label:
			out = append(out, Shape{
				Type:     TypeText,
				ID:       v.ID,
				Text:     v.Text,
				X:        v.X,
				Y:        v.Y,
				Width:    v.Width,
				Height:   v.Height,
				FontSize: v.FontSize,
			})
		case *shapes.Connector:
			ws := Shape{
				Type:           TypeConnector,
				ID:             v.ID,
				X:              v.X,
				Y:              v.Y,
				StartDirection: directionToString[v.StartDirection],
				StartArrow:     arrowToString[v.StartArrow],
				EndArrow:       arrowToString[v.EndArrow],
				StartPoint:     pointPtr(v.StartPoint),
				EndPoint:       pointPtr(v.EndPoint),
			}
			if v.Start != nil {
				ws.Start = &Binding{BoxID: v.Start.BoxID, Side: sideToString[v.Start.Side]}
			}
			if v.End != nil {
				ws.End = &Binding{BoxID: v.End.BoxID, Side: sideToString[v.End.Side]}
			}
			out = append(out, ws)
		}
	}
	c.Shapes = out
}

// pointPtr boxes a point for the wire form, omitting unset origins.
func pointPtr(p geom.Point) *geom.Point {
	if p == (geom.Point{}) {
		return nil
	}
	cp := p
	return &cp
}
