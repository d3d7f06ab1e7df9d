package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

func Execute() error {
	root := &cobra.Command{
		Use:   "kurier",
		Short: "End-to-end encrypted social relay server",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (optional)")

	root.AddCommand(serveCmd(), keygenCmd())
	return root.Execute()
}
