// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/oxidelang/oxide/internal/repl"
)

// Config is the CLI configuration.
//
// Values come from, in increasing priority: built-in defaults, the TOML config
// file, environment variables, and command-line flags.
type Config struct {
	// When to color output: "auto", "always" or "never".
	Color string `toml:"color"`

	// The parser's nesting limit.
	MaxDepth int `toml:"max_depth"`

	// How many files `oxide check` parses at once. Zero means GOMAXPROCS.
	Parallelism int `toml:"parallelism"`

	// The default output format for `oxide parse`.
	Format string `toml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Color:    "auto",
		MaxDepth: 1000,
		Format:   "tree",
	}
}

// DefaultConfigPath returns where the config file is looked for when
// --config is not given.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "oxide", "config.toml")
}

// LoadConfig loads configuration from the TOML file at path and then from the
// environment. If path is empty, the default path is used, and it is not an
// error for that file not to exist.
func LoadConfig(path string) (Config, string, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	loaded := ""
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
			loaded = path
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return cfg, "", fmt.Errorf("failed to load config: %w", err)
		}
	}

	env.Load()
	cfg.Color = env.Str("OXIDE_COLOR", cfg.Color)
	if depth := env.Str("OXIDE_MAX_DEPTH"); depth != "" {
		n, err := strconv.Atoi(depth)
		if err != nil {
			return cfg, loaded, fmt.Errorf("invalid OXIDE_MAX_DEPTH %q: must be an integer", depth)
		}
		cfg.MaxDepth = n
	}

	return cfg, loaded, cfg.validate()
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color setting %q: must be auto, always or never", c.Color)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("invalid max depth %d: must be positive", c.MaxDepth)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("invalid parallelism %d: must not be negative", c.Parallelism)
	}
	return nil
}

// applyFlags overrides cfg with any flags explicitly set on cmd.
func (c *Config) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("color") {
		c.Color, err = flags.GetString("color")
		if err != nil {
			return err
		}
	}
	if flags.Changed("max-depth") {
		c.MaxDepth, err = flags.GetInt("max-depth")
		if err != nil {
			return err
		}
	}
	return c.validate()
}

// colorize resolves the color setting for output to w.
func (c Config) colorize(w io.Writer) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return repl.IsTerminal(w)
	}
}
