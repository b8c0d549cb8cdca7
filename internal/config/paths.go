package config

import "path/filepath"

// resolvePaths makes the file settings absolute relative to dir, the
// directory holding the config file. Empty settings stay empty.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Logging.File, &c.Logging.KeyLogDir, &c.Rates.File} {
		*p = resolve(dir, *p)
	}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
