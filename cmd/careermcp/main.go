// Package main is the entry point for the careermcp server.
//
// Startup sequence:
//
// 1. Initialize logging
// 2. Load configuration (env vars over optional config file)
// 3. Build the MCP server and its tool dispatch gateway
// 4. Serve until SIGINT/SIGTERM, then shut down gracefully
//
// Missing or invalid required configuration (AUTH_TOKEN, MY_NUMBER) makes
// the process exit non-zero before binding the listen address.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"careermcp/internal/config"
	"careermcp/internal/logging"
	"careermcp/internal/mcp"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:           "careermcp",
		Short:         "Career & business intelligence tool server speaking MCP",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewAppLogger()

			cfg, err := config.Load()
			if err != nil {
				logger.Error("Configuration error", "error", err)
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				logger.Error("Configuration error", "error", err)
				return err
			}

			srv, err := mcp.NewServer(cfg, logger)
			if err != nil {
				logger.Error("Failed to build server", "error", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				logger.Error("Server error", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", config.DefaultHost, "listen host")
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "listen port")

	return cmd
}
