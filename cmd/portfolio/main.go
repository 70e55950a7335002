// Package main provides the portfolio binary: the web server plus catalog
// maintenance commands.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Serve and maintain the tj2904.com project portfolio",
		Long: `portfolio serves the project catalog as a website and JSON API.

Configuration is read from the environment (SERVER_ADDR, SITE_URL,
CATALOG_PATH, ...). Flags override the matching variables.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}
