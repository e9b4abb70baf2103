package shapes

import (
	"testing"

	"github.com/matzehuels/orgflow/pkg/geom"
)

func TestAnchorPoint(t *testing.T) {
	b := &Box{ID: "a", X: 100, Y: 200, Width: 140, Height: 50}

	tests := []struct {
		name string
		side Side
		want geom.Point
	}{
		{"Top", SideTop, geom.Point{X: 170, Y: 200}},
		{"Right", SideRight, geom.Point{X: 240, Y: 225}},
		{"Bottom", SideBottom, geom.Point{X: 170, Y: 250}},
		{"Left", SideLeft, geom.Point{X: 100, Y: 225}},
		{"Center", SideCenter, geom.Point{X: 170, Y: 225}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.AnchorPoint(tt.side); got != tt.want {
				t.Errorf("AnchorPoint(%v) = %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestAnchorPointEllipseMatchesRectangle(t *testing.T) {
	rect := &Box{ID: "r", Kind: BoxKindRectangle, X: 10, Y: 10, Width: 80, Height: 40}
	ell := &Box{ID: "e", Kind: BoxKindEllipse, X: 10, Y: 10, Width: 80, Height: 40}

	for _, side := range []Side{SideTop, SideRight, SideBottom, SideLeft, SideCenter} {
		if rect.AnchorPoint(side) != ell.AnchorPoint(side) {
			t.Errorf("side %v: ellipse anchor differs from rectangle anchor", side)
		}
	}
}

func TestSideVertical(t *testing.T) {
	vertical := map[Side]bool{
		SideTop:    true,
		SideBottom: true,
		SideLeft:   false,
		SideRight:  false,
		SideCenter: false,
	}
	for side, want := range vertical {
		if got := side.Vertical(); got != want {
			t.Errorf("%v.Vertical() = %v, want %v", side, got, want)
		}
	}
}

func TestConnectorBounds(t *testing.T) {
	c := &Connector{
		ID:         "c1",
		StartPoint: geom.Point{X: 50, Y: 120},
		EndPoint:   geom.Point{X: 20, Y: 80},
	}

	got := c.Bounds()
	want := geom.Rect{X: 20, Y: 80, W: 30, H: 40}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestCloneAllIndependence(t *testing.T) {
	orig := []Shape{
		&Box{ID: "a", X: 1, Y: 2, Width: 140, Height: 50},
		&Connector{
			ID:    "c",
			Start: &Binding{BoxID: "a", Side: SideBottom},
			End:   &Binding{BoxID: "b", Side: SideTop},
		},
		&Label{ID: "t", Text: "hello"},
		&Triangle{ID: "tri", Width: 30, Height: 30},
	}

	clones := CloneAll(orig)
	if len(clones) != len(orig) {
		t.Fatalf("CloneAll returned %d shapes, want %d", len(clones), len(orig))
	}

	// Mutating a cloned box must not affect the original.
	clones[0].(*Box).X = 999
	if orig[0].(*Box).X != 1 {
		t.Error("mutating cloned box changed the original")
	}

	// Bindings must be deep-copied, not aliased.
	clones[1].(*Connector).Start.BoxID = "z"
	if orig[1].(*Connector).Start.BoxID != "a" {
		t.Error("mutating cloned binding changed the original")
	}
}

func TestSliceFilters(t *testing.T) {
	list := []Shape{
		&Box{ID: "b1"},
		&Connector{ID: "c1"},
		&Box{ID: "b2"},
		&Label{ID: "l1"},
		&Connector{ID: "c2"},
	}

	boxes := BoxesOf(list)
	if len(boxes) != 2 || boxes[0].ID != "b1" || boxes[1].ID != "b2" {
		t.Errorf("BoxesOf returned %v", boxes)
	}

	conns := ConnectorsOf(list)
	if len(conns) != 2 || conns[0].ID != "c1" || conns[1].ID != "c2" {
		t.Errorf("ConnectorsOf returned %v", conns)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{BoxKindRectangle.String(), "rectangle"},
		{BoxKindEllipse.String(), "ellipse"},
		{ChildLayoutHorizontal.String(), "horizontal"},
		{ChildLayoutVertical.String(), "vertical"},
		{DirectionHorizontal.String(), "horizontal"},
		{DirectionVertical.String(), "vertical"},
		{ArrowKindNone.String(), "none"},
		{ArrowKindArrow.String(), "arrow"},
		{ArrowKindBar.String(), "bar"},
		{SideTop.String(), "top"},
		{SideCenter.String(), "center"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
