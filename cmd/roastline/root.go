package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"roastline/internal/cli"
	"roastline/internal/config"
	"roastline/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "roastline",
	Short: "roastline is a coffee storefront for your terminal",
	Long:  `Browse the catalog, build a cart and check out without leaving your shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		return cli.Run(cmd.Context(), cli.NewSession(cfg, logger))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "roastline.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// setup loads configuration and builds the logger from the shared flags.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return cfg, logging.New(level), nil
}
