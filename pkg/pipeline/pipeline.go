// Package pipeline provides the core chart-processing pipeline for Orgflow.
//
// This package implements the complete layout → render pipeline that can be
// used by CLI, API, and worker components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute positions for every box and connector in the chart
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT, TXT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg"},
//	    Style:   "simple",
//	}
//	result, err := runner.Execute(ctx, c, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	laid, err := runner.Layout(ctx, c, layoutOpts)
//
//	// Render with an already laid-out chart
//	artifacts, err := runner.Render(ctx, laid, renderOpts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgflow/pkg/cache"
	"github.com/matzehuels/orgflow/pkg/chart"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultScale is the default raster scale for PNG rendering. A scale
	// of 2.0 produces 2x resolution images suitable for high-DPI displays.
	DefaultScale = 2.0
)

// DefaultStyle is the default visual style.
const DefaultStyle = StyleSimple

// Style constants for visual styles.
const (
	StyleSimple    = "simple"
	StyleBlueprint = "blueprint"
)

// DefaultView is the default rendering view.
const DefaultView = ViewChart

// View constants for rendering views. The chart view draws boxes at their
// laid-out positions; the nodelink view hands the reporting structure to
// Graphviz and lets dot place the nodes instead.
const (
	ViewChart    = "chart"
	ViewNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTXT  = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatTXT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple:    true,
	StyleBlueprint: true,
}

// ValidViews is the set of supported rendering views.
var ValidViews = map[string]bool{
	ViewChart:    true,
	ViewNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
//
// Spacing and canvas fields follow a per-field fallback: a nonzero option
// wins, then the chart's own canvas and params, then the engine defaults.
// A zero value therefore means "use what the chart says".
type Options struct {
	// Layout options
	Width          float64 `json:"width,omitempty"`
	Height         float64 `json:"height,omitempty"`
	LevelHeight    float64 `json:"level_height,omitempty"`
	ShapeGap       float64 `json:"shape_gap,omitempty"`
	VerticalIndent float64 `json:"vertical_indent,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	View     string   `json:"view,omitempty"`     // "chart" draws laid-out positions, "nodelink" lets Graphviz place nodes
	Style    string   `json:"style,omitempty"`
	Grid     bool     `json:"grid,omitempty"`     // Draw the background grid in SVG output
	Detailed bool     `json:"detailed,omitempty"` // Include level/stack metadata in DOT labels
	Scale    float64  `json:"scale,omitempty"`    // Raster scale for PNG output

	// Refresh bypasses cache reads so results are recomputed.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the laid-out chart document.
	Chart *chart.Chart

	// ChartHash is the content hash of the laid-out chart.
	ChartHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BoxCount       int
	ConnectorCount int
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the laid-out chart came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json, dot, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: simple, blueprint)", style)
	}
	return nil
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return fmt.Errorf("invalid view: %q (must be one of: chart, nodelink)", view)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateView(o.View); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation. Canvas and
// spacing fields are left alone: their zero values defer to the chart.
func (o *Options) SetLayoutDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"width", o.Width},
		{"height", o.Height},
		{"level_height", o.LevelHeight},
		{"shape_gap", o.ShapeGap},
		{"vertical_indent", o.VerticalIndent},
	} {
		if p.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", p.name, p.value)
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return ValidateView(o.View)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:          o.Width,
		Height:         o.Height,
		LevelHeight:    o.LevelHeight,
		ShapeGap:       o.ShapeGap,
		VerticalIndent: o.VerticalIndent,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		View:     o.View,
		Style:    o.Style,
		Grid:     o.Grid,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}
