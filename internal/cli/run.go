package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/edgeguard/internal/api"
	"github.com/mcoot/edgeguard/internal/engine"
	"github.com/mcoot/edgeguard/internal/factory"
	"github.com/mcoot/edgeguard/internal/services/strategy"
)

func newRunCmd() *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one game over stdin/stdout",
		Long: `Play one game. The engine writes the game config and turn frames to
stdin; submitted turns are written to stdout. Logs go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyLayoutFlag(cmd, layout)
			if _, err := strategy.LayoutByName(settings.Strategy.Layout); err != nil {
				return err
			}

			logger, err := settings.Log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err := factory.New(factory.Config{
				Settings: settings,
				Logger:   logger,
				Out:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if settings.Status.Addr != "" {
				server, err := startStatusServer(app, logger)
				if err != nil {
					return err
				}
				defer func() {
					if err := server.Shutdown(context.Background()); err != nil {
						logger.Warn("status server shutdown", slog.String("error", err.Error()))
					}
				}()
			}

			if err := engine.Run(ctx, cmd.InOrStdin(), app.AlgoService, logger); err != nil {
				logger.Error("game aborted", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "layout", strategy.LayoutEdges, "Defence layout: edges, line (env: EDGEGUARD_STRATEGY_LAYOUT)")

	return cmd
}

func startStatusServer(app *factory.App, logger *slog.Logger) (*api.Server, error) {
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		History:       app.HistoryService,
		ActiveSession: app.AlgoService.Session,
	})
	server := api.NewServer(router, api.DefaultServerConfig(settings.Status.Addr), logger)
	if err := server.Listen(); err != nil {
		return nil, err
	}

	go func() {
		if err := server.Serve(); err != nil {
			logger.Error("status server failed", slog.String("error", err.Error()))
		}
	}()
	return server, nil
}
