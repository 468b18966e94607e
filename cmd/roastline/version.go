package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roastline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the roastline version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roastline version %s\n", strings.TrimSpace(roastline.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
