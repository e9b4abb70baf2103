package pipeline

import (
	"github.com/matzehuels/orgflow/pkg/chart"
	"github.com/matzehuels/orgflow/pkg/layout"
	"github.com/matzehuels/orgflow/pkg/route"
)

// =============================================================================
// Layout Generation
// =============================================================================

// Layout computes positions for every box and connector in the chart and
// returns a new chart with the results written back. The input chart is
// not modified.
//
// The work happens in engine space: the document's shapes convert to
// engine shapes, the subtree layout positions the boxes, the router
// resolves connector endpoints, and the repositioned shapes convert back
// into a copy of the document. Canvas size and spacing come from the
// options where set and from the chart otherwise.
func Layout(c *chart.Chart, opts Options) (*chart.Chart, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}

	width, height := effectiveCanvas(c, opts)
	params := effectiveParams(c, opts)

	list := c.ToShapes()
	list = layout.Apply(list, width, height, params)
	list = route.ResolveAll(list)

	laid := *c
	laid.FromShapes(list)
	return &laid, nil
}

// effectiveCanvas resolves the canvas size: a nonzero option wins, then
// the chart's canvas, then the editor defaults.
func effectiveCanvas(c *chart.Chart, opts Options) (width, height float64) {
	width = opts.Width
	if width == 0 {
		width = c.Canvas.Width
	}
	if width == 0 {
		width = chart.DefaultCanvasWidth
	}

	height = opts.Height
	if height == 0 {
		height = c.Canvas.Height
	}
	if height == 0 {
		height = chart.DefaultCanvasHeight
	}
	return width, height
}

// effectiveParams resolves the spacing knobs with the same precedence as
// the canvas: options, then chart params, then engine defaults.
func effectiveParams(c *chart.Chart, opts Options) layout.Params {
	params := c.LayoutParams()
	if opts.LevelHeight != 0 {
		params.LevelHeight = opts.LevelHeight
	}
	if opts.ShapeGap != 0 {
		params.ShapeGap = opts.ShapeGap
	}
	if opts.VerticalIndent != 0 {
		params.VerticalIndent = opts.VerticalIndent
	}

	defaults := layout.DefaultParams()
	if params.LevelHeight == 0 {
		params.LevelHeight = defaults.LevelHeight
	}
	if params.ShapeGap == 0 {
		params.ShapeGap = defaults.ShapeGap
	}
	if params.VerticalIndent == 0 {
		params.VerticalIndent = defaults.VerticalIndent
	}
	return params
}
