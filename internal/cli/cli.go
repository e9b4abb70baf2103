// Package cli implements the orgflow command-line interface.
//
// The CLI wraps the chart pipeline: it reads org chart documents from
// JSON files or HTTP URLs, computes layouts, renders artifacts in
// multiple formats, and manages the local result cache. Commands are
// built with cobra and log through charmbracelet/log; --verbose (-v)
// switches to debug level.
//
// The main commands are:
//   - init: write a sample chart to get started
//   - layout: compute box positions and connector routes
//   - render: produce svg, png, pdf, json, dot, or txt artifacts
//   - view: interactive terminal preview of the laid-out chart
//   - serve: run the HTTP API
//   - cache: manage the local result cache
package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgflow/internal/config"
	"github.com/matzehuels/orgflow/pkg/buildinfo"
	"github.com/matzehuels/orgflow/pkg/cache"
	"github.com/matzehuels/orgflow/pkg/chart"
	"github.com/matzehuels/orgflow/pkg/httputil"
	"github.com/matzehuels/orgflow/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "orgflow"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Orgflow lays out and renders org charts",
		Long:         `Orgflow turns org chart documents into tidy tree layouts with orthogonal connector routing, rendered as SVG, PNG, PDF, DOT, or plain text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.initCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

// newCache returns the file cache in the user cache directory, or the
// null cache when caching is disabled.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(config.CacheDir())
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadChart reads a chart from a local path, or fetches it over HTTP
// when the input is a URL. The layout, render, and view commands all
// accept either form.
func loadChart(ctx context.Context, input string) (*chart.Chart, error) {
	if httputil.IsURL(input) {
		data, err := httputil.Fetch(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", input, err)
		}
		return chart.Unmarshal(data)
	}
	return chart.Read(input)
}

// inputBase reduces a URL input to its last path segment so derived
// output paths land in the working directory. File inputs pass through.
func inputBase(input string) string {
	if !httputil.IsURL(input) {
		return input
	}
	if u, err := url.Parse(input); err == nil {
		return path.Base(u.Path)
	}
	return input
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
