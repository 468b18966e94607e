package main

import (
	"github.com/spf13/cobra"

	"roastline/internal/cli"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the storefront against the built-in demo catalog",
	Long:  `Runs fully offline: the seeded in-memory store replaces the remote backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		// Wipe any configured backend so the factory picks the demo store.
		cfg.BackendURL = ""
		return cli.Run(cmd.Context(), cli.NewSession(cfg, logger))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
