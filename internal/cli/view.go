package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgflow/pkg/pipeline"
	"github.com/matzehuels/orgflow/pkg/render/term"
)

// viewCommand creates the view command for previewing charts in the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "view [chart.json]",
		Short: "Preview the laid-out chart in the terminal",
		Long: `Preview the laid-out chart in the terminal.

The view command computes the layout and draws the chart on a rune
canvas inside an interactive pager. Arrow keys or hjkl pan around the
canvas, g/G jump to the top and bottom, r reloads the chart after
edits, and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runView lays out the chart and hands it to the interactive viewer.
func (c *CLI) runView(ctx context.Context, input string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	load := func() (string, string, error) {
		doc, err := loadChart(ctx, input)
		if err != nil {
			return "", "", err
		}
		laid, err := runner.Layout(ctx, doc, pipeline.Options{Logger: c.Logger})
		if err != nil {
			return "", "", err
		}
		return laid.Name, term.Render(laid.ToShapes()), nil
	}

	name, content, err := load()
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	model := newChartViewModel(name, input, content, load)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
