package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/config"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/keylog"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/rates"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold rpncalc.toml and a sample rates table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatScaffoldResult(created))
			return nil
		},
	}
}

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [query]",
		Short: "List keyboard shortcuts, fuzzy-filtered by query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := engine.New()
			if err != nil {
				return fmt.Errorf("load engine tables: %w", err)
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			fmt.Fprint(cmd.OutOrStdout(), formatShortcuts(searchShortcuts(shortcutTable(eng), query), query))
			return nil
		},
	}
}

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Manage the currency rates table",
	}
	cmd.AddCommand(ratesFetchCmd(), ratesCheckCmd())
	return cmd
}

func ratesFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [url]",
		Short: "Download a rates table and save it to rates.file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			url := cfg.Rates.URL
			if len(args) == 1 {
				url = args[0]
			}
			ctx, cancel := signalContext()
			defer cancel()
			out, err := fetchRates(ctx, cfg, url)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func ratesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a rates table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			path := cfg.Rates.File
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no rates file: pass one or set rates.file")
			}
			_, t, err := rates.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatRatesTable(path, t))
			return nil
		},
	}
}

func keylogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keylog",
		Short: "Inspect session key logs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "summary <file>",
		Short: "Summarize the directives in a key log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, skipped, err := keylog.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatKeylogSummary(keylog.Summarize(entries), skipped))
			return nil
		},
	})
	return cmd
}

// commandConfig loads the config named by the persistent --config flag and
// applies --rates.
func commandConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	ratesPath, _ := cmd.Flags().GetString("rates")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if ratesPath != "" {
		cfg.Rates.File = ratesPath
	}
	return cfg, nil
}

// fetchRates downloads the table at url and saves it to cfg.Rates.File.
func fetchRates(ctx context.Context, cfg *config.Config, url string) (string, error) {
	if url == "" {
		return "", errors.New("no rates url: pass one or set rates.url")
	}
	if cfg.Rates.File == "" {
		return "", errors.New("no rates file: set rates.file or pass --rates")
	}
	data, t, err := rates.NewFetcher(cfg.FetchTimeout(), "rpncalc/"+version).Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if err := rates.Save(cfg.Rates.File, data); err != nil {
		return "", err
	}
	return formatRatesTable(cfg.Rates.File, t), nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
