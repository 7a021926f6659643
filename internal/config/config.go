// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the units toolbox.
//
// Configuration sources, in order of precedence:
//   - UNITS_* environment variables
//   - ~/.units/config.toml
//   - Built-in defaults
//
// Out-of-range values are clamped rather than rejected, so a stale or
// hand-edited config file never prevents startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/liborbenes/units-tui/internal/convert"
	"github.com/liborbenes/units-tui/internal/hashes"
	"github.com/liborbenes/units-tui/internal/history"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds all user-tunable settings.
type Config struct {
	// Precision is the default display precision in decimal places.
	// Clamped to [3,60].
	Precision int `toml:"precision"`

	// Theme selects the color palette: "dark" or "light".
	Theme string `toml:"theme"`

	// HistoryLimit caps the session history length.
	HistoryLimit int `toml:"history_limit"`

	// HashAlgorithm is the digest listed first in the encodings tool.
	HashAlgorithm string `toml:"hash_algorithm"`

	// ExportDir is where history exports are written.
	// Default: current working directory.
	ExportDir string `toml:"export_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Precision:     convert.DefaultPrecision,
		Theme:         "dark",
		HistoryLimit:  history.DefaultCapacity,
		HashAlgorithm: "sha256",
		ExportDir:     ".",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// configPath returns ~/.units/config.toml, or empty if the home
// directory cannot be determined.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".units", "config.toml")
}

// Load reads the config file if present, applies environment overrides,
// and clamps everything into valid ranges. A missing file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.clamp()
	return cfg, nil
}

// applyEnvOverrides applies UNITS_* environment variables over whatever
// the file provided.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("UNITS_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Precision = n
		}
	}
	if v := os.Getenv("UNITS_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("UNITS_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HistoryLimit = n
		}
	}
	if v := os.Getenv("UNITS_HASH_ALGORITHM"); v != "" {
		c.HashAlgorithm = v
	}
	if v := os.Getenv("UNITS_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
}

// clamp forces every field into its valid range.
func (c *Config) clamp() {
	c.Precision = convert.ClampPrecision(c.Precision)

	if c.Theme != "dark" && c.Theme != "light" {
		c.Theme = "dark"
	}

	if c.HistoryLimit < 1 {
		c.HistoryLimit = history.DefaultCapacity
	}

	c.HashAlgorithm = strings.ToLower(c.HashAlgorithm)
	known := false
	for _, a := range hashes.Algorithms() {
		if a == c.HashAlgorithm {
			known = true
			break
		}
	}
	if !known {
		c.HashAlgorithm = "sha256"
	}

	if c.ExportDir == "" {
		c.ExportDir = "."
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalOnce sync.Once
	globalCfg  *Config
)

// Global returns the process-wide configuration, loading it on first
// use. Load errors fall back to defaults; the toolbox must start even
// with a broken config file.
func Global() *Config {
	globalOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
			cfg = DefaultConfig()
		}
		globalCfg = cfg
	})
	return globalCfg
}
