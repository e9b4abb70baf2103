package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgflow/pkg/chart"
)

// initCommand creates the init command that writes a starter chart.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a sample org chart to get started",
		Long: `Write a sample org chart to get started.

The sample is a small company with a CEO, two VPs, and a handful of
reports, including one stacked sub-team. Edit the boxes and connectors,
then run 'orgflow render' to see the result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "chart.json"
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// runInit writes the sample chart to path, refusing to overwrite an
// existing file unless force is set.
func runInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := chart.Write(chart.Sample(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Created sample chart")
	printFile(path)
	printNewline()
	printNextStep("Render", appName+" render "+path)
	return nil
}
