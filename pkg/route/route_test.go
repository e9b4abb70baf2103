package route

import (
	"testing"

	"github.com/matzehuels/orgflow/pkg/geom"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

func box(id string, x, y float64) *shapes.Box {
	return &shapes.Box{ID: id, X: x, Y: y, Width: 140, Height: 50}
}

func TestResolveAllBoundEnds(t *testing.T) {
	list := []shapes.Shape{
		box("p", 100, 100),
		box("c", 100, 240),
		&shapes.Connector{
			ID:    "pc",
			Start: &shapes.Binding{BoxID: "p", Side: shapes.SideBottom},
			End:   &shapes.Binding{BoxID: "c", Side: shapes.SideTop},
		},
	}

	out := ResolveAll(list)
	c := shapes.ConnectorsOf(out)[0]

	if want := (geom.Point{X: 170, Y: 150}); c.StartPoint != want {
		t.Errorf("StartPoint = %v, want %v", c.StartPoint, want)
	}
	if want := (geom.Point{X: 170, Y: 240}); c.EndPoint != want {
		t.Errorf("EndPoint = %v, want %v", c.EndPoint, want)
	}
	if c.StartDirection != shapes.DirectionVertical {
		t.Errorf("StartDirection = %v, want vertical", c.StartDirection)
	}
	if c.X != 170 || c.Y != 150 {
		t.Errorf("bounding pos = (%v,%v), want (170,150)", c.X, c.Y)
	}
}

func TestResolveAllSideDirections(t *testing.T) {
	tests := []struct {
		side shapes.Side
		want shapes.Direction
	}{
		{shapes.SideTop, shapes.DirectionVertical},
		{shapes.SideBottom, shapes.DirectionVertical},
		{shapes.SideLeft, shapes.DirectionHorizontal},
		{shapes.SideRight, shapes.DirectionHorizontal},
		{shapes.SideCenter, shapes.DirectionHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			list := []shapes.Shape{
				box("a", 0, 0),
				&shapes.Connector{
					ID:    "c",
					Start: &shapes.Binding{BoxID: "a", Side: tt.side},
				},
			}
			out := ResolveAll(list)
			if got := shapes.ConnectorsOf(out)[0].StartDirection; got != tt.want {
				t.Errorf("StartDirection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveAllUnboundStart(t *testing.T) {
	tests := []struct {
		name       string
		start, end geom.Point
		want       shapes.Direction
	}{
		{"vertical delta dominates", geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 60}, shapes.DirectionVertical},
		{"horizontal delta dominates", geom.Point{X: 0, Y: 0}, geom.Point{X: 60, Y: 10}, shapes.DirectionHorizontal},
		{"tie stays horizontal", geom.Point{X: 0, Y: 0}, geom.Point{X: 30, Y: 30}, shapes.DirectionHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := []shapes.Shape{
				&shapes.Connector{ID: "c", StartPoint: tt.start, EndPoint: tt.end},
			}
			out := ResolveAll(list)
			c := shapes.ConnectorsOf(out)[0]
			if c.StartDirection != tt.want {
				t.Errorf("StartDirection = %v, want %v", c.StartDirection, tt.want)
			}
			if c.StartPoint != tt.start || c.EndPoint != tt.end {
				t.Error("unbound endpoints must not move")
			}
		})
	}
}

func TestResolveAllMissingBoxTreatedAsUnbound(t *testing.T) {
	list := []shapes.Shape{
		&shapes.Connector{
			ID:         "c",
			Start:      &shapes.Binding{BoxID: "ghost", Side: shapes.SideBottom},
			StartPoint: geom.Point{X: 0, Y: 0},
			EndPoint:   geom.Point{X: 5, Y: 100},
		},
	}

	out := ResolveAll(list)
	c := shapes.ConnectorsOf(out)[0]

	if c.StartPoint != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("StartPoint moved to %v", c.StartPoint)
	}
	if c.StartDirection != shapes.DirectionVertical {
		t.Errorf("StartDirection = %v, want vertical (inferred)", c.StartDirection)
	}
}

func TestResolveAllBoundingPosition(t *testing.T) {
	list := []shapes.Shape{
		&shapes.Connector{
			ID:         "c",
			StartPoint: geom.Point{X: 200, Y: 10},
			EndPoint:   geom.Point{X: 50, Y: 90},
		},
	}
	out := ResolveAll(list)
	c := shapes.ConnectorsOf(out)[0]
	if c.X != 50 || c.Y != 10 {
		t.Errorf("bounding pos = (%v,%v), want (50,10)", c.X, c.Y)
	}
}

func TestResolveAllIdempotent(t *testing.T) {
	list := []shapes.Shape{
		box("p", 100, 100),
		box("c", 300, 240),
		&shapes.Connector{
			ID:    "pc",
			Start: &shapes.Binding{BoxID: "p", Side: shapes.SideBottom},
			End:   &shapes.Binding{BoxID: "c", Side: shapes.SideLeft},
		},
		&shapes.Connector{
			ID:         "floating",
			StartPoint: geom.Point{X: 1, Y: 2},
			EndPoint:   geom.Point{X: 30, Y: 4},
		},
	}

	once := ResolveAll(list)
	twice := ResolveAll(once)

	a := shapes.ConnectorsOf(once)
	b := shapes.ConnectorsOf(twice)
	for i := range a {
		if a[i].StartPoint != b[i].StartPoint || a[i].EndPoint != b[i].EndPoint ||
			a[i].StartDirection != b[i].StartDirection ||
			a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Errorf("connector %q changed on second resolve", a[i].ID)
		}
	}
}

func TestResolveAllDoesNotMutateInput(t *testing.T) {
	c := &shapes.Connector{
		ID:    "pc",
		Start: &shapes.Binding{BoxID: "p", Side: shapes.SideBottom},
		End:   &shapes.Binding{BoxID: "c", Side: shapes.SideTop},
	}
	list := []shapes.Shape{box("p", 100, 100), box("c", 100, 240), c}

	ResolveAll(list)

	if c.StartPoint != (geom.Point{}) || c.EndPoint != (geom.Point{}) {
		t.Error("input connector was mutated")
	}
}

func TestPathElbow(t *testing.T) {
	tests := []struct {
		name string
		dir  shapes.Direction
		want []geom.Point
	}{
		{
			name: "horizontal start",
			dir:  shapes.DirectionHorizontal,
			want: []geom.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 60}, {X: 100, Y: 60}},
		},
		{
			name: "vertical start",
			dir:  shapes.DirectionVertical,
			want: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 30}, {X: 100, Y: 30}, {X: 100, Y: 60}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &shapes.Connector{
				ID:             "c",
				StartPoint:     geom.Point{X: 0, Y: 0},
				EndPoint:       geom.Point{X: 100, Y: 60},
				StartDirection: tt.dir,
			}
			got := Path(c, nil)
			assertPath(t, got, tt.want)
		})
	}
}

func TestPathJoggedSpine(t *testing.T) {
	parent := box("p", 100, 100)
	parent.ChildLayout = shapes.ChildLayoutVertical
	child := box("c", 190, 240)

	mk := func(side shapes.Side) *shapes.Connector {
		return &shapes.Connector{
			ID:    "pc",
			Start: &shapes.Binding{BoxID: "p", Side: shapes.SideBottom},
			End:   &shapes.Binding{BoxID: "c", Side: side},
		}
	}

	t.Run("end bound left", func(t *testing.T) {
		out := ResolveAll([]shapes.Shape{parent, child, mk(shapes.SideLeft)})
		c := shapes.ConnectorsOf(out)[0]
		got := Path(c, shapes.BoxIndex(out))

		// Down 20, across to 20 left of the child, down to the child row,
		// then in to the child's left side.
		want := []geom.Point{
			{X: 170, Y: 150},
			{X: 170, Y: 170},
			{X: 170, Y: 170},
			{X: 170, Y: 265},
			{X: 190, Y: 265},
		}
		assertPath(t, got, want)
	})

	t.Run("end bound right", func(t *testing.T) {
		out := ResolveAll([]shapes.Shape{parent, child, mk(shapes.SideRight)})
		c := shapes.ConnectorsOf(out)[0]
		got := Path(c, shapes.BoxIndex(out))

		want := []geom.Point{
			{X: 170, Y: 150},
			{X: 170, Y: 170},
			{X: 350, Y: 170},
			{X: 350, Y: 265},
			{X: 330, Y: 265},
		}
		assertPath(t, got, want)
	})

	t.Run("end bound top falls back to elbow", func(t *testing.T) {
		out := ResolveAll([]shapes.Shape{parent, child, mk(shapes.SideTop)})
		c := shapes.ConnectorsOf(out)[0]
		if got := Path(c, shapes.BoxIndex(out)); len(got) != 4 {
			t.Errorf("path has %d points, want 4 (standard elbow)", len(got))
		}
	})

	t.Run("horizontal parent falls back to elbow", func(t *testing.T) {
		flat := box("p", 100, 100)
		out := ResolveAll([]shapes.Shape{flat, child, mk(shapes.SideLeft)})
		c := shapes.ConnectorsOf(out)[0]
		if got := Path(c, shapes.BoxIndex(out)); len(got) != 4 {
			t.Errorf("path has %d points, want 4 (standard elbow)", len(got))
		}
	})
}

func TestPathSiblingsShareSpine(t *testing.T) {
	parent := box("p", 100, 100)
	parent.ChildLayout = shapes.ChildLayoutVertical
	// Stacked siblings share their left edge, as the layout pass pins it.
	c1 := box("c1", 190, 240)
	c2 := box("c2", 190, 310)

	mk := func(id, to string) *shapes.Connector {
		return &shapes.Connector{
			ID:    id,
			Start: &shapes.Binding{BoxID: "p", Side: shapes.SideBottom},
			End:   &shapes.Binding{BoxID: to, Side: shapes.SideLeft},
		}
	}

	out := ResolveAll([]shapes.Shape{parent, c1, c2, mk("a", "c1"), mk("b", "c2")})
	boxes := shapes.BoxIndex(out)
	conns := shapes.ConnectorsOf(out)

	p1 := Path(conns[0], boxes)
	p2 := Path(conns[1], boxes)

	// Both jog segments run down the same x, forming one visual rail.
	if p1[2].X != p2[2].X || p1[3].X != p2[3].X {
		t.Errorf("spine x differs: %v vs %v", p1[2].X, p2[2].X)
	}
}

func TestApproachHeadings(t *testing.T) {
	tests := []struct {
		name      string
		path      []geom.Point
		wantStart Heading
		wantEnd   Heading
	}{
		{
			name:      "rightward elbow",
			path:      []geom.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 60}, {X: 100, Y: 60}},
			wantStart: HeadingLeft,
			wantEnd:   HeadingRight,
		},
		{
			name:      "downward elbow",
			path:      []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 30}, {X: 100, Y: 30}, {X: 100, Y: 60}},
			wantStart: HeadingUp,
			wantEnd:   HeadingDown,
		},
		{
			name:      "leading zero segment skipped",
			path:      []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 40}},
			wantStart: HeadingUp,
			wantEnd:   HeadingDown,
		},
		{
			name:      "degenerate path defaults right",
			path:      []geom.Point{{X: 5, Y: 5}, {X: 5, Y: 5}},
			wantStart: HeadingRight,
			wantEnd:   HeadingRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ApproachHeadings(tt.path)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("headings = %v, %v, want %v, %v", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestHeadingAngle(t *testing.T) {
	tests := []struct {
		h    Heading
		want float64
	}{
		{HeadingRight, 0},
		{HeadingDown, 90},
		{HeadingLeft, 180},
		{HeadingUp, 270},
	}
	for _, tt := range tests {
		if got := tt.h.Angle(); got != tt.want {
			t.Errorf("%v.Angle() = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func assertPath(t *testing.T, got, want []geom.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
