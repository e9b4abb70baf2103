// Package hierarchy derives the parent/child tree that the layout engine
// walks from a flat shape list.
//
// The tree is rebuilt from scratch on every call to [Build]; nothing is
// cached between passes. A connector contributes an edge only when both of
// its ends are bound and both bindings resolve to boxes present in the
// input: the start box becomes the parent and the end box the child.
// Half-bound and dangling connectors are ignored.
//
// Malformed inputs degrade instead of failing. When several connectors
// claim the same child, the last one processed wins. When every box has a
// parent (the chart is one big cycle), the first box in input order is
// promoted to a synthetic root so that a downstream traversal always
// terminates.
package hierarchy

import "github.com/matzehuels/orgflow/pkg/shapes"

// Tree is the derived hierarchy over the boxes of one shape list. It holds
// pointers into the slice it was built from, so mutations made through
// accessor results are visible to the owner of that slice.
//
// The zero value is not usable - use [Build].
type Tree struct {
	boxes         map[string]*shapes.Box
	order         []string            // box IDs in input order
	parents       map[string]string   // child ID -> parent ID
	children      map[string][]string // parent ID -> child IDs, first-bound order
	roots         []string
	syntheticRoot bool
}

// Build derives the hierarchy from a shape list. It never fails: inputs
// the builder cannot make sense of (unbound connectors, bindings to
// missing boxes, duplicate parent claims, cycles) are resolved silently
// per the package rules.
func Build(list []shapes.Shape) *Tree {
	t := &Tree{
		boxes:    make(map[string]*shapes.Box),
		parents:  make(map[string]string),
		children: make(map[string][]string),
	}

	for _, b := range shapes.BoxesOf(list) {
		if _, exists := t.boxes[b.ID]; exists {
			continue // first box with an ID wins
		}
		t.boxes[b.ID] = b
		t.order = append(t.order, b.ID)
	}

	// Parent assignment: last connector to claim a child wins.
	conns := shapes.ConnectorsOf(list)
	for _, c := range conns {
		parent, child, ok := t.edgeOf(c)
		if !ok {
			continue
		}
		t.parents[child] = parent
	}

	// Child ordering: a child appears under its winning parent at the
	// position of the first connector that named that pairing.
	placed := make(map[string]bool, len(t.parents))
	for _, c := range conns {
		parent, child, ok := t.edgeOf(c)
		if !ok || placed[child] || t.parents[child] != parent {
			continue
		}
		placed[child] = true
		t.children[parent] = append(t.children[parent], child)
	}

	for _, id := range t.order {
		if _, hasParent := t.parents[id]; !hasParent {
			t.roots = append(t.roots, id)
		}
	}
	if len(t.roots) == 0 && len(t.order) > 0 {
		t.roots = []string{t.order[0]}
		t.syntheticRoot = true
	}

	return t
}

// edgeOf extracts the (parent, child) pair from a connector, reporting
// false unless both ends are bound to boxes present in the tree.
func (t *Tree) edgeOf(c *shapes.Connector) (parent, child string, ok bool) {
	if !c.Bound() {
		return "", "", false
	}
	if _, exists := t.boxes[c.Start.BoxID]; !exists {
		return "", "", false
	}
	if _, exists := t.boxes[c.End.BoxID]; !exists {
		return "", "", false
	}
	return c.Start.BoxID, c.End.BoxID, true
}

// Box returns the box with the given ID and true, or nil and false.
func (t *Tree) Box(id string) (*shapes.Box, bool) {
	b, ok := t.boxes[id]
	return b, ok
}

// BoxCount returns the number of boxes in the tree.
func (t *Tree) BoxCount() int { return len(t.order) }

// BoxIDs returns all box IDs in input order. The returned slice must not
// be modified.
func (t *Tree) BoxIDs() []string { return t.order }

// Parent returns the parent ID of the box and true, or "" and false for
// roots and unknown IDs.
func (t *Tree) Parent(id string) (string, bool) {
	p, ok := t.parents[id]
	return p, ok
}

// Children returns the ordered child IDs of the box. Returns nil for
// leaves and unknown IDs. The returned slice must not be modified.
func (t *Tree) Children(id string) []string { return t.children[id] }

// Roots returns the root box IDs in input order. When the chart is fully
// cyclic this is the single synthetic root.
func (t *Tree) Roots() []string { return t.roots }

// HasSyntheticRoot reports whether the root set was empty and the first
// box was promoted to keep traversal well-defined.
func (t *Tree) HasSyntheticRoot() bool { return t.syntheticRoot }

// HasGrandchildren reports whether any child of the box has children of
// its own. Callers use this to refuse switching a box to a vertical stack,
// which cannot represent a third level.
func (t *Tree) HasGrandchildren(id string) bool {
	for _, child := range t.children[id] {
		if len(t.children[child]) > 0 {
			return true
		}
	}
	return false
}

// =============================================================================
// Shape-List Operations
// =============================================================================

// HasGrandchildren reports whether the box with the given ID has at least
// one grandchild in the hierarchy derived from list. Unknown IDs report
// false.
func HasGrandchildren(boxID string, list []shapes.Shape) bool {
	return Build(list).HasGrandchildren(boxID)
}

// EnforceHorizontalAncestors returns a copy of list in which every
// vertical-stack ancestor of the changed box has been flipped to the
// horizontal child layout. The walk starts at the changed box's parent,
// not at the box itself, so the box's own layout mode is preserved.
//
// Flipping ancestors keeps the invariant that a vertical stack never has
// grandchildren: after a subtree gains depth below a box, every vertical
// ancestor above it would otherwise be in violation.
func EnforceHorizontalAncestors(changedID string, list []shapes.Shape) []shapes.Shape {
	out := shapes.CloneAll(list)
	t := Build(out)

	seen := make(map[string]bool)
	id, ok := t.Parent(changedID)
	for ok && !seen[id] {
		seen[id] = true
		if b, found := t.Box(id); found && b.VerticalStack() {
			b.ChildLayout = shapes.ChildLayoutHorizontal
		}
		id, ok = t.Parent(id)
	}
	return out
}
