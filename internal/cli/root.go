package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the orgflow CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is also attached to the command context so that
// long-running commands (render --watch) can pick it up via
// loggerFromContext.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	return root.ExecuteContext(ctx)
}
