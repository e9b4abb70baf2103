package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgflow/pkg/chart"
	apperrors "github.com/matzehuels/orgflow/pkg/errors"
	"github.com/matzehuels/orgflow/pkg/httputil"
	"github.com/matzehuels/orgflow/pkg/pipeline"
)

// watchDebounce coalesces rapid file events (editors often fire several
// per save) into a single re-render.
const watchDebounce = 200 * time.Millisecond

// renderCommand creates the render command for producing chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		watch      bool
	)
	opts := pipeline.Options{
		View:  pipeline.DefaultView,
		Style: pipeline.DefaultStyle,
		Scale: pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [chart.json]",
		Short: "Lay out a chart and render it to files",
		Long: `Lay out a chart and render it to files.

The render command runs the full pipeline: it reads the chart from a
file or URL, computes the layout, and writes one artifact per requested
format. PNG and PDF rasterization of the chart view requires
rsvg-convert on PATH; the other formats have no external dependencies.

With --view nodelink the graphic formats show a Graphviz node-link
diagram of the reporting structure instead of the laid-out chart.

With --watch the command keeps running and re-renders whenever the
input file changes, which pairs well with an SVG viewer that reloads
on change. Watching only works with file inputs.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			if err := pipeline.ValidateView(opts.View); err != nil {
				return err
			}
			if output != "" {
				if err := apperrors.ValidateOutputPath(output); err != nil {
					return err
				}
			}
			if watch {
				if httputil.IsURL(args[0]) {
					return fmt.Errorf("cannot watch a URL: %s", args[0])
				}
				return c.runWatch(cmd.Context(), args[0], opts, output, noCache)
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-render whenever the input file changes")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, txt (comma-separated)")
	cmd.Flags().StringVar(&opts.View, "view", opts.View, "rendering view: chart (default), nodelink")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: simple (default), blueprint")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "draw the background grid (svg)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include level and stack metadata (dot)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale (png)")

	// Spacing flags
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width (0 = chart value)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height (0 = chart value)")
	cmd.Flags().Float64Var(&opts.LevelHeight, "level-height", 0, "vertical distance between levels (0 = chart value)")
	cmd.Flags().Float64Var(&opts.ShapeGap, "shape-gap", 0, "horizontal gap between sibling boxes (0 = chart value)")
	cmd.Flags().Float64Var(&opts.VerticalIndent, "vertical-indent", 0, "indent for stacked reports (0 = chart value)")

	return cmd
}

// runRender executes the full pipeline once and writes all artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := loadChart(ctx, input)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.BoxCount, result.Stats.ConnectorCount,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)

	return nil
}

// runWatch re-renders the input whenever it changes on disk, until the
// context is cancelled.
func (c *CLI) runWatch(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	render := func() {
		doc, err := chart.Read(input)
		if err != nil {
			printWarning("Skipping render: %v", err)
			return
		}
		prog := newProgress(logger)
		result, err := runner.Execute(ctx, doc, opts)
		if err != nil {
			printWarning("Render failed: %v", err)
			return
		}
		if _, err := writeArtifacts(result.Artifacts, opts.Formats, input, output); err != nil {
			printWarning("%v", err)
			return
		}
		prog.done(fmt.Sprintf("Rendered %s", input))
	}

	render()

	// The parent directory is watched rather than the file itself so
	// atomic saves (write to temp, rename over) keep being seen.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	printInfo("Watching %s (ctrl-c to stop)", input)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	target := filepath.Clean(input)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debugf("Change detected: %s", event.Op)
			debounce.Reset(watchDebounce)
		case <-debounce.C:
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watcher error: %v", err)
		}
	}
}

// basePath derives the base output path from the output and input paths.
// An empty output falls back to the input with its extension stripped.
// An output carrying a known format extension has that extension
// stripped so multi-format runs produce sibling files.
func basePath(output, input string) string {
	if output == "" {
		input = inputBase(input)
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes the rendered artifacts to disk and returns the
// written paths in format order. A single format with an explicit output
// goes exactly there; everything else lands at <base>.<format>.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	single := len(formats) == 1
	base := basePath(output, input)

	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if single && output != "" {
			path = output
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
