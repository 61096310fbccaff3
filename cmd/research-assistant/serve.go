package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/mcpserver"
	"github.com/pdiddy/research-assistant/internal/research"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deep_research tool and prompt over MCP",
	Long: `Serve starts a Model Context Protocol server exposing the deep_research
tool and the deep_research prompt. By default it speaks MCP over stdin and
stdout; with --http it serves streamable HTTP at /mcp plus /healthz.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("http")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		srv, err := mcpserver.New(research.New(cfg, logger), version, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if addr != "" {
			return srv.RunHTTP(ctx, addr)
		}
		return runStdio(ctx, srv)
	},
}

func runStdio(ctx context.Context, srv *mcpserver.Server) error {
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().String("http", "", "listen address for streamable HTTP (e.g. :8080); empty serves stdio")

	rootCmd.AddCommand(serveCmd)
}
