// Package rates reads, fetches and saves external currency rates tables.
// Tables are validated with engine.ParseRates before they are returned or
// written, so a bad download never replaces a good file.
package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
)

// MaxSize bounds a rates table download.
const MaxSize = 1 << 20

// Load reads the rates table at path and validates it.
func Load(path string) ([]byte, engine.RatesTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: read %q: %w", path, err)
	}
	t, err := engine.ParseRates(data)
	if err != nil {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: %s: %w", path, err)
	}
	return data, t, nil
}

// Fetcher downloads rates tables over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = "rpncalc"
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// Fetch downloads and validates the table at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, engine.RatesTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, text/yaml, text/plain")
	req.Header.Set("User-Agent", f.userAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: fetch %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSize+1))
	if err != nil {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: read body: %w", err)
	}
	if len(data) > MaxSize {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: table larger than %d bytes", MaxSize)
	}
	t, err := engine.ParseRates(data)
	if err != nil {
		return nil, engine.RatesTable{}, fmt.Errorf("rates: %s: %w", url, err)
	}
	return data, t, nil
}

// Save writes data to path via a temporary file and rename, creating the
// parent directory if needed.
func Save(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("rates: mkdir %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".rates-*.yaml")
	if err != nil {
		return fmt.Errorf("rates: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("rates: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("rates: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rates: rename: %w", err)
	}
	return nil
}
