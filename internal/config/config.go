// Package config parses rpncalc.toml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked for by Load.
const FileName = "rpncalc.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// ErrNotFound is returned by Load when no path is given and no
// rpncalc.toml exists in the working directory or any parent.
var ErrNotFound = errors.New("config: " + FileName + " not found")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level rpncalc.toml configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Notices NoticesConfig `toml:"notices"`
	Logging LoggingConfig `toml:"logging"`
	Rates   RatesConfig   `toml:"rates"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	AccentColor string  `toml:"accent_color"`
	CellAspect  float64 `toml:"cell_aspect"` // terminal cell height / width
	Mouse       bool    `toml:"mouse"`
	StackLines  int     `toml:"stack_lines"`
}

// NoticesConfig controls the transient footer messages.
type NoticesConfig struct {
	DurationMS int `toml:"duration_ms"`
}

// LoggingConfig controls the diagnostic log and the key log.
type LoggingConfig struct {
	File            string `toml:"file"` // empty = disabled
	Level           string `toml:"level"`
	KeyLogDir       string `toml:"key_log_dir"`       // empty = disabled
	KeyLogRetention int    `toml:"key_log_retention"` // number of key logs to keep; 0 = unlimited
}

// RatesConfig locates the currency rates table.
type RatesConfig struct {
	File           string `toml:"file"`
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// NoticeDuration is how long each notice stays on screen.
func (c *Config) NoticeDuration() time.Duration {
	return time.Duration(c.Notices.DurationMS) * time.Millisecond
}

// FetchTimeout bounds a rates download.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Rates.TimeoutSeconds) * time.Second
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the slog level named by logging.level.
func (c *Config) LogLevel() slog.Level {
	if l, ok := levels[strings.ToLower(c.Logging.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.AccentColor != "" && !hexColorRe.MatchString(c.UI.AccentColor) {
		errs = append(errs, fmt.Errorf("ui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if !(c.UI.CellAspect > 0) {
		errs = append(errs, fmt.Errorf("ui.cell_aspect must be > 0"))
	}
	if c.UI.StackLines < 1 {
		errs = append(errs, fmt.Errorf("ui.stack_lines must be >= 1"))
	}

	if c.Notices.DurationMS <= 0 {
		errs = append(errs, fmt.Errorf("notices.duration_ms must be > 0"))
	}

	if _, ok := levels[strings.ToLower(c.Logging.Level)]; !ok {
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error"))
	}
	if c.Logging.KeyLogRetention < 0 {
		errs = append(errs, fmt.Errorf("logging.key_log_retention must be >= 0 (0 = unlimited)"))
	}

	if c.Rates.URL != "" {
		u, parseErr := url.ParseRequestURI(c.Rates.URL)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("rates.url must be a valid http or https URL"))
		}
	}
	if c.Rates.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("rates.timeout_seconds must be > 0"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the built-in defaults.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			AccentColor: DefaultAccentColor,
			CellAspect:  2.0,
			Mouse:       true,
			StackLines:  5,
		},
		Notices: NoticesConfig{DurationMS: 2000},
		Logging: LoggingConfig{
			Level:           "info",
			KeyLogRetention: 20,
		},
		Rates: RatesConfig{TimeoutSeconds: 10},
	}
}

// Load reads rpncalc.toml from the given path. If path is empty, it walks up
// from the current working directory looking for rpncalc.toml and returns
// ErrNotFound when there is none. Unknown keys (likely typos) are an error.
// Relative file paths in the result are resolved against the directory
// holding the config file.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for rpncalc.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched up from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}

// InitFile writes a default rpncalc.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

const configTemplate = `# rpncalc.toml — RPN calculator configuration
# Place this file in your working directory or any parent of it.

[ui]
accent_color = "#7D56F4"  # hex color for the status bar and highlights
cell_aspect = 2.0         # terminal cell height divided by width
mouse = true              # click keys, tabs and picker entries
stack_lines = 5           # stack entries shown above the entry line

[notices]
duration_ms = 2000  # how long each notice stays in the footer

[logging]
file = ""                 # diagnostic log file (empty = disabled)
level = "info"            # debug, info, warn or error
key_log_dir = ""          # JSONL key log directory, e.g. ".rpncalc/keys" (empty = disabled)
key_log_retention = 20    # number of key logs to keep; 0 = unlimited

[rates]
file = "rates.yaml"   # currency table, reloaded when it changes
url = ""              # source for "rpncalc rates fetch"
timeout_seconds = 10
`
