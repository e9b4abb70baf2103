package hierarchy

import (
	"testing"

	"github.com/matzehuels/orgflow/pkg/shapes"
)

func box(id string) *shapes.Box {
	return &shapes.Box{ID: id, Width: 140, Height: 50}
}

func conn(start, end string) *shapes.Connector {
	return &shapes.Connector{
		ID:    start + "-" + end,
		Start: &shapes.Binding{BoxID: start, Side: shapes.SideBottom},
		End:   &shapes.Binding{BoxID: end, Side: shapes.SideTop},
	}
}

func TestBuildEdges(t *testing.T) {
	tests := []struct {
		name       string
		list       []shapes.Shape
		wantRoots  []string
		wantParent map[string]string
	}{
		{
			name: "simple chain",
			list: []shapes.Shape{
				box("a"), box("b"), box("c"),
				conn("a", "b"), conn("b", "c"),
			},
			wantRoots:  []string{"a"},
			wantParent: map[string]string{"b": "a", "c": "b"},
		},
		{
			name: "half-bound connector ignored",
			list: []shapes.Shape{
				box("a"), box("b"),
				&shapes.Connector{ID: "half", Start: &shapes.Binding{BoxID: "a", Side: shapes.SideBottom}},
			},
			wantRoots:  []string{"a", "b"},
			wantParent: map[string]string{},
		},
		{
			name: "binding to missing box ignored",
			list: []shapes.Shape{
				box("a"), box("b"),
				conn("a", "ghost"), conn("ghost", "b"),
			},
			wantRoots:  []string{"a", "b"},
			wantParent: map[string]string{},
		},
		{
			name: "last connector wins on duplicate child",
			list: []shapes.Shape{
				box("a"), box("b"), box("c"),
				conn("a", "c"), conn("b", "c"),
			},
			wantRoots:  []string{"a", "b"},
			wantParent: map[string]string{"c": "b"},
		},
		{
			name: "no connectors",
			list: []shapes.Shape{
				box("a"), box("b"),
			},
			wantRoots:  []string{"a", "b"},
			wantParent: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Build(tt.list)

			roots := tree.Roots()
			if len(roots) != len(tt.wantRoots) {
				t.Fatalf("Roots() = %v, want %v", roots, tt.wantRoots)
			}
			for i, id := range tt.wantRoots {
				if roots[i] != id {
					t.Errorf("Roots()[%d] = %q, want %q", i, roots[i], id)
				}
			}

			for child, wantParent := range tt.wantParent {
				got, ok := tree.Parent(child)
				if !ok || got != wantParent {
					t.Errorf("Parent(%q) = %q, %v, want %q, true", child, got, ok, wantParent)
				}
			}
			for _, id := range tree.BoxIDs() {
				if _, expected := tt.wantParent[id]; expected {
					continue
				}
				if p, ok := tree.Parent(id); ok {
					t.Errorf("Parent(%q) = %q, want none", id, p)
				}
			}
		})
	}
}

func TestBuildChildOrder(t *testing.T) {
	list := []shapes.Shape{
		box("root"), box("x"), box("y"), box("z"),
		conn("root", "y"),
		conn("root", "x"),
		conn("root", "z"),
	}
	tree := Build(list)

	got := tree.Children("root")
	want := []string{"y", "x", "z"}
	if len(got) != len(want) {
		t.Fatalf("Children(root) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Children(root)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildSyntheticRoot(t *testing.T) {
	// a -> b -> c -> a leaves no natural root.
	list := []shapes.Shape{
		box("a"), box("b"), box("c"),
		conn("a", "b"), conn("b", "c"), conn("c", "a"),
	}
	tree := Build(list)

	if !tree.HasSyntheticRoot() {
		t.Fatal("HasSyntheticRoot() = false, want true")
	}
	roots := tree.Roots()
	if len(roots) != 1 || roots[0] != "a" {
		t.Fatalf("Roots() = %v, want [a]", roots)
	}
}

func TestBuildEmpty(t *testing.T) {
	tree := Build(nil)
	if tree.BoxCount() != 0 {
		t.Errorf("BoxCount() = %d, want 0", tree.BoxCount())
	}
	if len(tree.Roots()) != 0 {
		t.Errorf("Roots() = %v, want empty", tree.Roots())
	}
	if tree.HasSyntheticRoot() {
		t.Error("HasSyntheticRoot() = true, want false")
	}
}

func TestHasGrandchildren(t *testing.T) {
	list := []shapes.Shape{
		box("ceo"), box("vp"), box("eng"), box("intern"),
		conn("ceo", "vp"), conn("vp", "eng"), conn("eng", "intern"),
	}

	tests := []struct {
		id   string
		want bool
	}{
		{"ceo", true},
		{"vp", true},
		{"eng", false},
		{"intern", false},
		{"ghost", false},
	}

	for _, tt := range tests {
		if got := HasGrandchildren(tt.id, list); got != tt.want {
			t.Errorf("HasGrandchildren(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestEnforceHorizontalAncestors(t *testing.T) {
	vbox := func(id string) *shapes.Box {
		b := box(id)
		b.ChildLayout = shapes.ChildLayoutVertical
		return b
	}

	list := []shapes.Shape{
		vbox("ceo"), vbox("vp"), vbox("lead"), box("dev"),
		conn("ceo", "vp"), conn("vp", "lead"), conn("lead", "dev"),
	}

	out := EnforceHorizontalAncestors("dev", list)

	tree := Build(out)
	for _, tt := range []struct {
		id   string
		want shapes.ChildLayout
	}{
		{"ceo", shapes.ChildLayoutHorizontal},
		{"vp", shapes.ChildLayoutHorizontal},
		{"lead", shapes.ChildLayoutHorizontal},
		{"dev", shapes.ChildLayoutHorizontal},
	} {
		b, ok := tree.Box(tt.id)
		if !ok {
			t.Fatalf("box %q missing from result", tt.id)
		}
		if b.ChildLayout != tt.want {
			t.Errorf("box %q ChildLayout = %v, want %v", tt.id, b.ChildLayout, tt.want)
		}
	}

	// Input list must be untouched.
	orig := Build(list)
	for _, id := range []string{"ceo", "vp", "lead"} {
		b, _ := orig.Box(id)
		if !b.VerticalStack() {
			t.Errorf("input box %q was mutated", id)
		}
	}
}

func TestEnforceHorizontalAncestorsKeepsChangedBox(t *testing.T) {
	list := []shapes.Shape{
		box("root"), box("mid"), box("leaf"),
		conn("root", "mid"), conn("mid", "leaf"),
	}
	root := list[0].(*shapes.Box)
	mid := list[1].(*shapes.Box)
	root.ChildLayout = shapes.ChildLayoutVertical
	mid.ChildLayout = shapes.ChildLayoutVertical

	out := EnforceHorizontalAncestors("mid", list)
	tree := Build(out)

	// The walk starts at mid's parent: root flips, mid keeps its mode.
	if b, _ := tree.Box("root"); b.VerticalStack() {
		t.Error("root should be flipped to horizontal")
	}
	if b, _ := tree.Box("mid"); !b.VerticalStack() {
		t.Error("mid should keep its vertical layout")
	}
}

func TestEnforceHorizontalAncestorsCycle(t *testing.T) {
	list := []shapes.Shape{
		box("a"), box("b"), box("c"),
		conn("a", "b"), conn("b", "c"), conn("c", "a"),
	}
	for _, s := range list[:3] {
		s.(*shapes.Box).ChildLayout = shapes.ChildLayoutVertical
	}

	// Must terminate despite the parent chain looping forever.
	out := EnforceHorizontalAncestors("a", list)
	if len(out) != len(list) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(list))
	}
}

func TestBuildDuplicateBoxIDs(t *testing.T) {
	first := box("dup")
	first.X = 1
	second := box("dup")
	second.X = 2

	tree := Build([]shapes.Shape{first, second})
	if tree.BoxCount() != 1 {
		t.Fatalf("BoxCount() = %d, want 1", tree.BoxCount())
	}
	b, _ := tree.Box("dup")
	if b.X != 1 {
		t.Errorf("Box(dup).X = %v, want 1 (first occurrence wins)", b.X)
	}
}
