package config

import (
	"go/token"

	"github.com/teranos/bakein/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return errors.WithHint(errors.New("out_dir cannot be empty"),
			"set BAKEIN_OUT_DIR or out_dir in bakein.toml")
	}

	// Package may be empty for generation runs; assembling an include
	// rejects an empty package with a GOPACKAGE hint
	if c.Package != "" && !token.IsIdentifier(c.Package) {
		return errors.Newf("package must be a Go identifier, got %q", c.Package)
	}

	if c.Hash.MaxAttempts <= 0 {
		return errors.Newf("hash.max_attempts must be > 0, got %d", c.Hash.MaxAttempts)
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
