// Package main is the entry point for the rpncalc CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "rpncalc",
		Short:   "RPN scientific calculator for the terminal",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			ratesPath, _ := cmd.Flags().GetString("rates")
			return executeTUI(configPath, ratesPath)
		},
	}
	root.PersistentFlags().String("config", "", "path to rpncalc.toml (default: search up from the working directory)")
	root.PersistentFlags().String("rates", "", "rates table to load (overrides rates.file)")

	root.AddCommand(
		initCmd(),
		keysCmd(),
		ratesCmd(),
		keylogCmd(),
	)

	return root
}
