package main

import (
	"github.com/spf13/cobra"

	"roastline/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo catalog over HTTP",
	Long: `Exposes the seeded demo store on the same REST surface the storefront
client consumes, plus prometheus metrics on /metrics. Useful for developing
against a local backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			cfg.ListenAddr = listen
		}
		return cli.Serve(cmd.Context(), cfg, logger)
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "Bind address (overrides configuration)")
	rootCmd.AddCommand(serveCmd)
}
