package main

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"dissolve/internal/logging"
	"dissolve/internal/mcp"
	"dissolve/internal/store"
)

func (a *app) serveCmd() *cobra.Command {
	var history string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve every dissolution operation as an MCP tool over stdio",
		Long: "Start an MCP server on stdin/stdout. When a history database is configured\n" +
			"(history.path, DISSOLVE_HISTORY or --history) every tool call is recorded\n" +
			"and the get_dissolution_history tool is registered.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("history") {
				a.cfg.History.Path = history
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&history, "history", "", "SQLite history database (empty disables recording)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	log := logging.New("serve")
	opts := []mcp.Option{mcp.WithTaxonomy(a.tax)}
	if path := a.cfg.History.Path; path != "" {
		h, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() {
			if err := h.Close(); err != nil {
				log.Warn("close history", "error", err)
			}
		}()
		opts = append(opts, mcp.WithHistory(h))
	}
	srv := mcp.NewServer(a.cfg, opts...)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	mcp.WatchParent(ctx, cancel)

	return srv.Run(ctx, &sdkmcp.StdioTransport{})
}
