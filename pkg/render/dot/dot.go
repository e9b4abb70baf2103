package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/orgflow/pkg/hierarchy"
	"github.com/matzehuels/orgflow/pkg/render"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

// Options configures node-link diagram generation.
type Options struct {
	// Detailed includes level and child-layout info in node labels.
	// When false, only the box's display text is shown.
	Detailed bool
}

// ToDOT converts a chart's reporting hierarchy to Graphviz DOT format.
// Positions are discarded: Graphviz lays the tree out itself during
// rendering. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG], or piped into external Graphviz tooling.
//
// Ellipse boxes keep their shape in the diagram. Triangles, labels, and
// unbound connectors have no place in a node-link view and are skipped.
func ToDOT(list []shapes.Shape, opts Options) string {
	tree := hierarchy.Build(list)

	var buf bytes.Buffer
	buf.WriteString("digraph org {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, id := range tree.BoxIDs() {
		b, ok := tree.Box(id)
		if !ok {
			continue
		}
		label := fmtLabel(b, opts.Detailed)
		attrs := fmtAttrs(b, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, id := range tree.BoxIDs() {
		for _, child := range tree.Children(id) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", id, child)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(b *shapes.Box, detailed bool) string {
	label := b.Label
	if label == "" {
		label = b.ID
	}
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("level: %d", b.Level)}
	if b.VerticalStack() {
		parts = append(parts, "stack: vertical")
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(b *shapes.Box, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if b.Kind == shapes.BoxKindEllipse {
		attrs = append(attrs, "shape=ellipse")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// Graphviz emits translated viewBoxes and physical units, which trips up
// some SVG viewers and the rsvg conversion path. Rewrite the root tag to
// a plain origin-anchored viewBox with pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
