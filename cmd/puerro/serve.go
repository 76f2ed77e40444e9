package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/puerro-dev/puerro/internal/config"
	"github.com/puerro-dev/puerro/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development server",
		Long: `Run the development server with the built-in demo application.

Browser events post back to the server, mutate the observable state, and
the differ's patches stream to connected browsers over WebSocket. Watch
the patch stream to see exactly what each state change re-renders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			server, err := dev.NewServer(cfg, logger.With("component", "dev"))
			if err != nil {
				return err
			}

			printBanner()
			info("serving demo on http://%s", cfg.Addr())
			if cfg.Metrics.Enabled {
				info("metrics on http://%s/metrics", cfg.Addr())
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides puerro.json)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (overrides puerro.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
