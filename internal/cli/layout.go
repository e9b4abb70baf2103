package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgflow/pkg/chart"
	"github.com/matzehuels/orgflow/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [chart.json]",
		Short: "Compute box positions and connector routes for a chart",
		Long: `Compute box positions and connector routes for a chart.

The layout command reads a chart from a file or URL, assigns a position
to every box, and routes every connector orthogonally around the placed
boxes. The result is written as a laid-out chart JSON that 'render' and
the HTTP API accept as-is.

Spacing flags override the chart's own parameters; a zero value keeps
what the chart says. Results are cached locally for faster subsequent
runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Spacing flags
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width (0 = chart value)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height (0 = chart value)")
	cmd.Flags().Float64Var(&opts.LevelHeight, "level-height", 0, "vertical distance between levels (0 = chart value)")
	cmd.Flags().Float64Var(&opts.ShapeGap, "shape-gap", 0, "horizontal gap between sibling boxes (0 = chart value)")
	cmd.Flags().Float64Var(&opts.VerticalIndent, "vertical-indent", 0, "indent for stacked reports (0 = chart value)")

	return cmd
}

// runLayout reads the chart, computes the layout, and writes the output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
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

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	laid, cacheHit, err := runner.LayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := layoutOutputPath(input, output)
	if err := chart.Write(laid, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(laid.BoxCount(), laid.ConnectorCount(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// layoutOutputPath derives the output path from the input when no
// explicit output is given. URL inputs derive from the last path
// segment, so the result lands in the working directory.
func layoutOutputPath(input, output string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(inputBase(input), filepath.Ext(input))
	return base + ".layout.json"
}
