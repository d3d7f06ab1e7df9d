package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kurier/internal/app"
)

// serve: run the relay and REST server until interrupted.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the relay and REST server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.New(cfg).Run(ctx)
		},
	}
}
