package main

import (
	"context"

	"github.com/rgehrsitz/creatorcalc/internal/goal"
	"github.com/rgehrsitz/creatorcalc/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.settings.Server.Addr
			}
			api := server.NewWebAPI(a.logger, server.Config{
				Addr:            addr,
				ShutdownTimeout: a.settings.Server.ShutdownTimeout,
				Defaults:        a.settings.Defaults,
				Dependencies: server.Dependencies{
					Calculator: a.engine,
					Goals:      goal.NewDefaultSolver(a.engine),
				},
			})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			// Start stops on SIGINT or SIGTERM
			return api.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from settings, :8080)")
	return cmd
}
