// Package pkg provides the core libraries for Orgflow org chart layout
// and rendering.
//
// # Overview
//
// Orgflow turns org chart documents into tidy tree layouts with
// orthogonally routed connectors. The pkg directory is organized into
// three main areas:
//
//  1. Engine - Pure layout logic (shapes, hierarchy, layout, route, geom)
//  2. Documents - Chart serialization and persistence (chart, store)
//  3. Output - Rendering and delivery (render, pipeline, cache)
//
// # Architecture
//
// The typical data flow through Orgflow:
//
//	Chart JSON document
//	         ↓
//	    [chart] package (parse + validate + defaults)
//	         ↓
//	    [hierarchy] package (reporting tree from connectors)
//	         ↓
//	    [layout] package (box positions, level by level)
//	         ↓
//	    [route] package (orthogonal connector paths)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT/TXT output
//
// # Quick Start
//
// Lay out a chart and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/orgflow/pkg/chart"
//	    "github.com/matzehuels/orgflow/pkg/layout"
//	    "github.com/matzehuels/orgflow/pkg/route"
//	    "github.com/matzehuels/orgflow/pkg/render/svg"
//	)
//
//	// 1. Load the chart document
//	c, _ := chart.Read("team.json")
//
//	// 2. Compute box positions
//	list := layout.Apply(c.ToShapes(), c.Canvas.Width, c.Canvas.Height, c.LayoutParams())
//
//	// 3. Route the connectors
//	list = route.ResolveAll(list)
//
//	// 4. Render to SVG
//	c.FromShapes(list)
//	out := svg.Render(c)
//
// Most callers go through [pipeline] instead, which runs the same steps
// with caching and consistent option handling:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//	result, _ := runner.Execute(ctx, c, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// ## Engine
//
// [shapes] - The closed shape union the engine operates on: boxes
// (rectangles and ellipses), triangles, free-standing labels, and elbow
// connectors. All shape types are plain data.
//
// [hierarchy] - Derives the parent/child reporting tree from a flat
// shape list. Connector direction defines the edge: start box is the
// parent, end box the child. Malformed inputs degrade instead of
// failing.
//
// [layout] - Two-pass subtree layout: a post-order sizing pass computes
// every subtree's extent, then a pre-order placement pass assigns
// absolute coordinates. Deep single chains stack vertically with an
// indent instead of spreading out.
//
// [route] - Connector geometry: endpoint resolution from box bindings,
// orthogonal elbow paths, and the cardinal headings arrowheads are
// drawn at.
//
// [geom] - Shared 2D primitives. Coordinates follow screen convention:
// x grows right, y grows down.
//
// ## Documents
//
// [chart] - The JSON document format: parsing, validation, defaults,
// and the conversion to and from engine shapes. [chart.Sample] returns
// a small org chart for demos and tests.
//
// [store] - Chart persistence for the HTTP server, with memory and
// MongoDB backends.
//
// ## Output
//
// [render/svg] - The primary renderer, drawing shapes in document order
// with simple and blueprint styles.
//
// [render/dot] - Graphviz export of the reporting hierarchy, plus
// SVG/PNG/PDF rasterization through the graphviz library.
//
// [render/term] - Box-drawing terminal output used by the view command.
//
// [render] - Top-level format conversion (SVG to PDF/PNG via
// rsvg-convert).
//
// [pipeline] - The layout → render pipeline shared by CLI and API, with
// content-addressed caching of both stages.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching with file, Redis, and null
// backends, plus the retry helpers used when connecting to backends.
//
// [httputil] - Fetches charts over HTTP so commands accept URLs
// wherever they accept file paths.
//
// [errors] - Structured error codes shared by CLI and API responses.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// [fonts] - Font stacks referenced by the SVG renderers.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [shapes]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/shapes
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/hierarchy
// [layout]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/layout
// [route]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/route
// [geom]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/geom
// [chart]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/chart
// [store]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/store
// [render]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/render/svg
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/render/dot
// [render/term]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/render/term
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/observability
// [fonts]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/buildinfo
// [chart.Sample]: https://pkg.go.dev/github.com/matzehuels/orgflow/pkg/chart#Sample
package pkg
