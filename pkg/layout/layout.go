// Package layout positions org-chart boxes with a two-pass subtree
// algorithm: a post-order sizing pass computes the extent of every
// subtree, then a pre-order placement pass assigns absolute coordinates,
// centering each box within the width allocated to its subtree. Multiple
// roots are composed into a horizontally centered forest.
//
// Apply is a pure function of (shapes, canvas size, params). It clones its
// input, never fails, and carries no state between calls.
package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/orgflow/pkg/hierarchy"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

// Default spacing in canvas units, matching the editor's values.
const (
	DefaultLevelHeight    = 40.0
	DefaultShapeGap       = 20.0
	DefaultVerticalIndent = 20.0
)

// topMargin is the minimum distance between the canvas top edge and the
// tallest tree, applied when vertical centering would push content higher.
const topMargin = 40.0

// Params holds the spacing knobs of the layout algorithm. All values are
// caller-owned and passed into every call; they are not validated, so
// negative values produce overlapping rows rather than an error.
type Params struct {
	// LevelHeight is the vertical gap between a box's bottom edge and the
	// top edge of its children's row.
	LevelHeight float64

	// ShapeGap is the horizontal gap between sibling subtrees (and between
	// stacked siblings in a vertical stack).
	ShapeGap float64

	// VerticalIndent is the horizontal offset of a vertical-stack child's
	// left edge from the spine through its parent's center.
	VerticalIndent float64
}

// DefaultParams returns the spacing used by the editor out of the box.
func DefaultParams() Params {
	return Params{
		LevelHeight:    DefaultLevelHeight,
		ShapeGap:       DefaultShapeGap,
		VerticalIndent: DefaultVerticalIndent,
	}
}

// Apply recomputes the position of every box reachable from a root and
// returns the shapes as a new slice in the original order. Connectors and
// decorative shapes pass through untouched; so do boxes on cyclic islands
// not reachable from any root. Box levels are renumbered from the final
// vertical positions. The input slice is never modified.
func Apply(list []shapes.Shape, canvasWidth, canvasHeight float64, params Params) []shapes.Shape {
	out := shapes.CloneAll(list)
	tree := hierarchy.Build(out)
	if tree.BoxCount() == 0 {
		return out
	}

	e := &engine{
		tree:    tree,
		params:  params,
		extents: make(map[string]extent, tree.BoxCount()),
		kids:    make(map[string][]string, tree.BoxCount()),
		placed:  make(map[string]bool, tree.BoxCount()),
	}

	// Resolve the effective forest first: every box belongs to the first
	// traversal that reaches it, which breaks cycles behind a synthetic
	// root into a plain tree.
	for _, root := range tree.Roots() {
		e.claim(root)
	}
	for _, root := range tree.Roots() {
		e.measure(root)
	}

	// Order roots by their current x so repeated layouts stay visually
	// stable; ID breaks ties deterministically.
	roots := slices.Clone(tree.Roots())
	slices.SortFunc(roots, func(a, b string) int {
		ba, _ := tree.Box(a)
		bb, _ := tree.Box(b)
		if c := cmp.Compare(ba.X, bb.X); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	var totalWidth, tallest float64
	for _, root := range roots {
		totalWidth += e.extents[root].w
		tallest = max(tallest, e.extents[root].h)
	}
	totalWidth += float64(len(roots)-1) * params.ShapeGap

	x := (canvasWidth - totalWidth) / 2
	y := max(topMargin, (canvasHeight-tallest)/2)
	for _, root := range roots {
		e.place(root, x, y, e.extents[root].w)
		x += e.extents[root].w + params.ShapeGap
	}

	e.assignLevels()
	return out
}

// extent is the bounding size of a laid-out subtree.
type extent struct {
	w, h float64
}

type engine struct {
	tree    *hierarchy.Tree
	params  Params
	extents map[string]extent
	kids    map[string][]string // effective children after cycle breaking
	placed  map[string]bool
}

// claim walks the subtree pre-order and records, per box, the children it
// actually keeps: a box already claimed by an earlier path is dropped from
// every later parent. Sizing and placement both use this pruned forest so
// the two passes agree on shape.
func (e *engine) claim(id string) {
	if e.placed[id] {
		return
	}
	e.placed[id] = true
	for _, child := range e.tree.Children(id) {
		if e.placed[child] {
			continue
		}
		e.kids[id] = append(e.kids[id], child)
		e.claim(child)
	}
}

// measure computes subtree extents bottom-up.
//
// Horizontal children sit side by side, so width is the greater of the box
// and the child run, and height adds one level plus the tallest child.
// Vertical children stack to the right of a spine through the box center,
// so width doubles the wider half to keep the spine centered, and height
// adds half a level plus the full stack.
func (e *engine) measure(id string) extent {
	box, _ := e.tree.Box(id)
	children := e.kids[id]
	if len(children) == 0 {
		ext := extent{w: box.Width, h: box.Height}
		e.extents[id] = ext
		return ext
	}

	gaps := float64(len(children)-1) * e.params.ShapeGap

	var ext extent
	if box.VerticalStack() {
		var widest, stack float64
		for _, child := range children {
			c := e.measure(child)
			widest = max(widest, c.w)
			stack += c.h
		}
		ext.w = 2 * max(box.Width/2, e.params.VerticalIndent+widest)
		ext.h = box.Height + e.params.LevelHeight/2 + stack + gaps
	} else {
		var run, tallest float64
		for _, child := range children {
			c := e.measure(child)
			run += c.w
			tallest = max(tallest, c.h)
		}
		ext.w = max(box.Width, run+gaps)
		ext.h = box.Height + e.params.LevelHeight + tallest
	}

	e.extents[id] = ext
	return ext
}

// place assigns the box's absolute position inside its allocation and
// recurses into the effective children.
func (e *engine) place(id string, allocX, y, allocWidth float64) {
	box, _ := e.tree.Box(id)
	box.X = allocX + (allocWidth-box.Width)/2
	box.Y = y

	children := e.kids[id]
	if len(children) == 0 {
		return
	}

	childY := box.Y + box.Height + e.params.LevelHeight
	if box.VerticalStack() {
		// Every stacked child pins its left edge VerticalIndent right of
		// the spine, forming the visual rail the connectors follow.
		pin := box.X + box.Width/2 + e.params.VerticalIndent
		for _, child := range children {
			ext := e.extents[child]
			cb, _ := e.tree.Box(child)
			e.place(child, pin-(ext.w-cb.Width)/2, childY, ext.w)
			childY += ext.h + e.params.ShapeGap
		}
	} else {
		var block float64
		for _, child := range children {
			block += e.extents[child].w
		}
		block += float64(len(children)-1) * e.params.ShapeGap

		childX := allocX + (allocWidth-block)/2
		for _, child := range children {
			ext := e.extents[child]
			e.place(child, childX, childY, ext.w)
			childX += ext.w + e.params.ShapeGap
		}
	}
}

// assignLevels renumbers box levels by ranking the distinct final y
// coordinates of the boxes this pass placed. Untouched boxes keep the
// level they came in with.
func (e *engine) assignLevels() {
	ys := make([]float64, 0, len(e.placed))
	for id := range e.placed {
		box, _ := e.tree.Box(id)
		ys = append(ys, box.Y)
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	for id := range e.placed {
		box, _ := e.tree.Box(id)
		box.Level, _ = slices.BinarySearch(ys, box.Y)
	}
}
