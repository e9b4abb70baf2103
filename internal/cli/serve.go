package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgflow/internal/config"
	"github.com/matzehuels/orgflow/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		cfgPath string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the orgflow HTTP API",
		Long: `Run the orgflow HTTP API.

The server exposes layout and render endpoints plus chart CRUD backed
by the configured store (memory or mongo). Settings are read from a
TOML config file, with built-in defaults when the file is absent. The
server drains in-flight requests and shuts down cleanly on SIGINT or
SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cfgPath, addr)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address override (e.g. :8080)")

	return cmd
}

// runServe loads the config, builds the server with its store and cache
// backends, and runs it until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, cfgPath, addr string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	srv, err := server.Build(ctx, cfg, c.Logger)
	if err != nil {
		return err
	}

	display := cfg.Server.Addr
	if strings.HasPrefix(display, ":") {
		display = "localhost" + display
	}
	printInfo("API listening on %s", StyleLink.Render("http://"+display))

	return srv.Start(ctx)
}
