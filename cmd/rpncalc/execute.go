package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/config"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/dispatch"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/keylog"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/watch"
)

// loadConfig reads the config at path, or searches for rpncalc.toml when
// path is empty. A missing file gives the defaults; an explicit path must
// exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if path == "" && errors.Is(err, config.ErrNotFound) {
		d := config.Defaults()
		cfg, err = &d, nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger opens the log file sink. With no file configured, logs are
// discarded. The returned closer is never nil.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Logging.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.Logging.File, "rpncalc")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

// openKeyLog prunes old session logs and starts a new one. It returns nil
// when the key log is disabled.
func openKeyLog(cfg *config.Config, log *slog.Logger) (*keylog.JSONL, error) {
	dir := cfg.Logging.KeyLogDir
	if dir == "" {
		return nil, nil
	}
	if err := keylog.EnforceRetention(dir, cfg.Logging.KeyLogRetention); err != nil {
		log.Warn("key log retention failed", "dir", dir, "error", err)
	}
	return keylog.NewJSONL(dir)
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// executeTUI wires the engine, dispatcher and TUI together and runs the
// program until the user quits.
func executeTUI(configPath, ratesOverride string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if ratesOverride != "" {
		cfg.Rates.File = ratesOverride
	}
	if !interactive() {
		return errors.New("rpncalc needs an interactive terminal")
	}

	log, logCloser, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	eng, err := engine.New()
	if err != nil {
		return fmt.Errorf("load engine tables: %w", err)
	}

	dopts := dispatch.Options{Logger: log}
	kl, err := openKeyLog(cfg, log)
	if err != nil {
		log.Warn("key log disabled", "error", err)
	}
	if kl != nil {
		defer kl.Close()
		dopts.KeyLog = kl
		log.Info("key log opened", "path", kl.Path())
	}
	disp := dispatch.New(eng, dopts)

	topts := tui.Options{
		AccentColor:    cfg.UI.AccentColor,
		CellAspect:     cfg.UI.CellAspect,
		StackLines:     cfg.UI.StackLines,
		NoticeDuration: cfg.NoticeDuration(),
		RatesFile:      cfg.Rates.File,
		Logger:         log,
	}
	if cfg.Rates.File != "" {
		w, werr := watch.New(cfg.Rates.File, 0, log)
		if werr != nil {
			log.Warn("rates file not watched", "path", cfg.Rates.File, "error", werr)
		} else {
			defer w.Close()
			topts.Watcher = w
		}
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(tui.New(eng, disp, topts), programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if kl != nil {
		log.Info("session finished", "directives", kl.Counts())
	}
	return nil
}
