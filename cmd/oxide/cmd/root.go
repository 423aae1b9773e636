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

// Package cmd implements the oxide command-line interface.
package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/oxidelang/oxide/parser"
)

var (
	cfgFile string
	verbose bool

	// Resolved by the root command before any subcommand runs.
	cfg    Config
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "oxide",
	Short: "Parser toolkit for the Oxide language",
	Long: `oxide parses programs written in Oxide, a small expression language with
let bindings, blocks and integer arithmetic.

Configuration is read from a TOML file (see --config), then from the
OXIDE_COLOR and OXIDE_MAX_DEPTH environment variables, then from flags.
Set OXIDE_DEBUG=1 to record debugging information in diagnostics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		var (
			loaded string
			err    error
		)
		cfg, loaded, err = LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if loaded != "" {
			logger.Debug("loaded config", "path", loaded)
		}
		return cfg.applyFlags(cmd)
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/oxide/config.toml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debugging information to stderr")
	flags.String("color", "auto", "when to color output: auto, always or never")
	flags.Int("max-depth", parser.DefaultMaxDepth, "maximum nesting of blocks, parentheses and prefix operators")
}

// errReported is returned by commands that have already shown the user why
// they failed, such as by rendering diagnostics.
var errReported = errors.New("oxide: errors were reported")

// IsReported returns whether err has already been shown to the user.
func IsReported(err error) bool {
	return errors.Is(err, errReported)
}

// ExitCode returns the process exit code for an error returned by [Execute]:
// 1 when input had errors, 2 for anything else, such as bad usage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsReported(err):
		return 1
	default:
		return 2
	}
}

func parseOptions() parser.Options {
	return parser.Options{MaxDepth: cfg.MaxDepth}
}
