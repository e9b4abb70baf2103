package pipeline

import (
	"fmt"
	"slices"

	"github.com/matzehuels/orgflow/pkg/chart"
	"github.com/matzehuels/orgflow/pkg/render"
	"github.com/matzehuels/orgflow/pkg/render/dot"
	"github.com/matzehuels/orgflow/pkg/render/svg"
	"github.com/matzehuels/orgflow/pkg/render/svg/styles"
	"github.com/matzehuels/orgflow/pkg/render/term"
)

// Render generates output artifacts in the requested formats. The chart
// is rendered with the positions it carries; run [Layout] first when
// fresh positions are wanted.
//
// Graphic formats (svg, png, pdf) honor the View option: the chart view
// draws boxes at their laid-out positions, the nodelink view hands the
// DOT graph to Graphviz and lets dot place the nodes. Data formats
// (json, dot, txt) are the same in either view.
func Render(c *chart.Chart, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	var dotSrc string
	if opts.View == ViewNodelink || slices.Contains(opts.Formats, FormatDOT) {
		dotSrc = dot.ToDOT(c.ToShapes(), dot.Options{Detailed: opts.Detailed})
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			if opts.View == ViewNodelink {
				data, err = dot.RenderSVG(dotSrc)
			} else {
				data = svg.Render(c, svgOpts...)
			}
		case FormatPNG:
			if opts.View == ViewNodelink {
				data, err = dot.RenderPNG(dotSrc, opts.Scale)
			} else {
				data, err = render.ToPNG(svg.Render(c, svgOpts...), opts.Scale)
			}
		case FormatPDF:
			if opts.View == ViewNodelink {
				data, err = dot.RenderPDF(dotSrc)
			} else {
				data, err = render.ToPDF(svg.Render(c, svgOpts...))
			}
		case FormatJSON:
			data, err = chart.Marshal(c)
		case FormatDOT:
			data = []byte(dotSrc)
		case FormatTXT:
			data = []byte(term.Render(c.ToShapes()))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options from pipeline options.
func buildSVGOptions(opts Options) []svg.Option {
	var svgOpts []svg.Option

	switch opts.Style {
	case StyleBlueprint:
		svgOpts = append(svgOpts, svg.WithStyle(styles.Blueprint{}))
	case StyleSimple:
		svgOpts = append(svgOpts, svg.WithStyle(styles.Simple{}))
	}

	if opts.Grid {
		svgOpts = append(svgOpts, svg.WithGrid())
	}

	return svgOpts
}
