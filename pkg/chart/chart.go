package chart

import (
	"github.com/matzehuels/orgflow/pkg/errors"
	"github.com/matzehuels/orgflow/pkg/geom"
	"github.com/matzehuels/orgflow/pkg/layout"
)

// SchemaVersion is the current document format version. Documents without
// a version are treated as current.
const SchemaVersion = 1

// Default sizes for shapes and canvases that omit them.
const (
	DefaultBoxWidth     = 140.0
	DefaultBoxHeight    = 50.0
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 600.0
)

// Shape type discriminators.
type Type string

const (
	TypeRectangle Type = "rectangle"
	TypeEllipse   Type = "ellipse"
	TypeTriangle  Type = "triangle"
	TypeText      Type = "text"
	TypeConnector Type = "elbow_connector"
)

// Wire values for box child layouts. An empty string means horizontal.
const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

// Wire values for binding sides.
const (
	SideTop    = "top"
	SideRight  = "right"
	SideBottom = "bottom"
	SideLeft   = "left"
	SideCenter = "center"
)

// Wire values for arrowheads. An empty string means none.
const (
	ArrowNone  = "none"
	ArrowArrow = "arrow"
	ArrowBar   = "bar"
)

// Wire values for connector start directions.
const (
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
)

// Chart is a complete org-chart document.
type Chart struct {
	Version int     `json:"version,omitempty" bson:"version,omitempty"`
	Name    string  `json:"name,omitempty" bson:"name,omitempty"`
	Canvas  Canvas  `json:"canvas" bson:"canvas"`
	Params  Params  `json:"params" bson:"params"`
	Shapes  []Shape `json:"shapes" bson:"shapes"`
}

// Canvas is the drawing surface the layout centers content on.
type Canvas struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Params mirrors the layout spacing knobs in wire form.
type Params struct {
	LevelHeight    float64 `json:"level_height" bson:"level_height"`
	ShapeGap       float64 `json:"shape_gap" bson:"shape_gap"`
	VerticalIndent float64 `json:"vertical_indent" bson:"vertical_indent"`
}

// Shape is the flat wire form of any shape kind; Type selects which
// fields are meaningful. Unused fields stay zero and are omitted from
// JSON output.
type Shape struct {
	Type Type   `json:"type" bson:"type"`
	ID   string `json:"id" bson:"id"`

	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`

	// Box fields.
	Text        string `json:"text,omitempty" bson:"text,omitempty"`
	Level       int    `json:"level,omitempty" bson:"level,omitempty"`
	ChildLayout string `json:"child_layout,omitempty" bson:"child_layout,omitempty"`

	// Text fields.
	FontSize float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`

	// Connector fields.
	Start          *Binding    `json:"start,omitempty" bson:"start,omitempty"`
	End            *Binding    `json:"end,omitempty" bson:"end,omitempty"`
	StartArrow     string      `json:"start_arrow,omitempty" bson:"start_arrow,omitempty"`
	EndArrow       string      `json:"end_arrow,omitempty" bson:"end_arrow,omitempty"`
	StartPoint     *geom.Point `json:"start_point,omitempty" bson:"start_point,omitempty"`
	EndPoint       *geom.Point `json:"end_point,omitempty" bson:"end_point,omitempty"`
	StartDirection string      `json:"start_direction,omitempty" bson:"start_direction,omitempty"`
}

// Binding attaches a connector end to a box side.
type Binding struct {
	BoxID string `json:"box_id" bson:"box_id"`
	Side  string `json:"side" bson:"side"`
}

// New returns an empty chart with default canvas, params, and version.
func New() *Chart {
	c := &Chart{}
	c.setDefaults()
	return c
}

// IsBox reports whether the shape participates in the hierarchy.
func (s *Shape) IsBox() bool {
	return s.Type == TypeRectangle || s.Type == TypeEllipse
}

// ValidateAndSetDefaults fills zero-valued fields with defaults, mints
// IDs for shapes that lack one, and validates the document. It returns
// the first problem found as an error with an INVALID_* code.
func (c *Chart) ValidateAndSetDefaults() error {
	c.setDefaults()

	if c.Version > SchemaVersion {
		return errors.New(errors.ErrCodeUnsupported, "unsupported chart version %d (newest is %d)", c.Version, SchemaVersion)
	}
	if c.Name != "" {
		if err := errors.ValidateChartName(c.Name); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Shapes))
	for i := range c.Shapes {
		s := &c.Shapes[i]

		switch s.Type {
		case TypeRectangle, TypeEllipse, TypeTriangle, TypeText, TypeConnector:
		case "":
			return errors.New(errors.ErrCodeInvalidShape, "shape %d: missing type", i)
		default:
			return errors.New(errors.ErrCodeInvalidShape, "shape %d: unknown type %q", i, s.Type)
		}

		if s.ID == "" {
			s.ID = NewID()
		}
		if err := errors.ValidateShapeID(s.ID); err != nil {
			return err
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeInvalidChart, "duplicate shape id %q", s.ID)
		}
		seen[s.ID] = true

		if err := s.validateEnums(i); err != nil {
			return err
		}
	}

	return nil
}

func (s *Shape) validateEnums(i int) error {
	if s.IsBox() {
		switch s.ChildLayout {
		case "", LayoutHorizontal, LayoutVertical:
		default:
			return errors.New(errors.ErrCodeInvalidShape, "shape %d: unknown child_layout %q", i, s.ChildLayout)
		}
	}

	if s.Type != TypeConnector {
		return nil
	}

	for _, b := range []*Binding{s.Start, s.End} {
		if b == nil {
			continue
		}
		if b.BoxID == "" {
			return errors.New(errors.ErrCodeInvalidShape, "shape %d: binding without box_id", i)
		}
		switch b.Side {
		case SideTop, SideRight, SideBottom, SideLeft, SideCenter:
		default:
			return errors.New(errors.ErrCodeInvalidShape, "shape %d: unknown side %q", i, b.Side)
		}
	}

	for _, a := range []string{s.StartArrow, s.EndArrow} {
		switch a {
		case "", ArrowNone, ArrowArrow, ArrowBar:
		default:
			return errors.New(errors.ErrCodeInvalidShape, "shape %d: unknown arrowhead %q", i, a)
		}
	}

	switch s.StartDirection {
	case "", DirectionHorizontal, DirectionVertical:
	default:
		return errors.New(errors.ErrCodeInvalidShape, "shape %d: unknown start_direction %q", i, s.StartDirection)
	}

	return nil
}

func (c *Chart) setDefaults() {
	if c.Version == 0 {
		c.Version = SchemaVersion
	}
	if c.Canvas.Width == 0 {
		c.Canvas.Width = DefaultCanvasWidth
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = DefaultCanvasHeight
	}
	if c.Params.LevelHeight == 0 {
		c.Params.LevelHeight = layout.DefaultLevelHeight
	}
	if c.Params.ShapeGap == 0 {
		c.Params.ShapeGap = layout.DefaultShapeGap
	}
	if c.Params.VerticalIndent == 0 {
		c.Params.VerticalIndent = layout.DefaultVerticalIndent
	}

	for i := range c.Shapes {
		s := &c.Shapes[i]
		if !s.IsBox() {
			continue
		}
		if s.Width == 0 {
			s.Width = DefaultBoxWidth
		}
		if s.Height == 0 {
			s.Height = DefaultBoxHeight
		}
	}
}

// LayoutParams converts the wire params to engine params.
func (c *Chart) LayoutParams() layout.Params {
	return layout.Params{
		LevelHeight:    c.Params.LevelHeight,
		ShapeGap:       c.Params.ShapeGap,
		VerticalIndent: c.Params.VerticalIndent,
	}
}

// BoxCount returns the number of hierarchy boxes in the document.
func (c *Chart) BoxCount() int {
	n := 0
	for i := range c.Shapes {
		if c.Shapes[i].IsBox() {
			n++
		}
	}
	return n
}

// ConnectorCount returns the number of connectors in the document.
func (c *Chart) ConnectorCount() int {
	n := 0
	for i := range c.Shapes {
		if c.Shapes[i].Type == TypeConnector {
			n++
		}
	}
	return n
}
