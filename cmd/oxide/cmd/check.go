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
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/oxidelang/oxide/parser"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/reporter"
	"github.com/oxidelang/oxide/source"
)

var (
	checkFailFast    bool
	checkParallelism int
	checkFormat      string
	checkCompact     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <glob>...",
	Short: "Check that files parse",
	Long: `Parse every file matching the given globs and report all diagnostics.

Globs use doublestar syntax, so "src/**/*.ox" matches recursively. Files are
parsed in parallel. The exit status is 1 if any file has errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	flags := checkCmd.Flags()
	flags.BoolVar(&checkFailFast, "fail-fast", false, "stop at the first error")
	flags.IntVarP(&checkParallelism, "parallelism", "j", 0, "files to parse at once (default from config, else GOMAXPROCS)")
	flags.StringVarP(&checkFormat, "format", "f", "text", "diagnostic format: text or json")
	flags.BoolVar(&checkCompact, "compact", false, "print one line per diagnostic")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFormat != "text" && checkFormat != "json" {
		return fmt.Errorf("unknown format %q", checkFormat)
	}

	paths, err := expandGlobs(args)
	if err != nil {
		return err
	}
	logger.Debug("matched files", "count", len(paths))

	files := make([]*source.File, 0, len(paths))
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, source.NewFile(path, string(text)))
	}

	opts := parseOptions()
	if checkFailFast {
		opts.Reporter = reporter.FailFast()
	}
	parallelism := cfg.Parallelism
	if cmd.Flags().Changed("parallelism") {
		parallelism = checkParallelism
	}

	start := time.Now()
	results, abort := parser.ParseFiles(cmd.Context(), opts, parallelism, files...)
	logger.Debug("parsed files", "count", len(files), "parallelism", parallelism, "elapsed", time.Since(start))

	var all report.Report
	if abort != nil {
		all.Diagnostics = report.Diagnostics(abort)
	} else {
		for _, result := range results {
			if result.Err == nil {
				continue
			}
			diags := report.Diagnostics(result.Err)
			if diags == nil {
				return result.Err
			}
			all.Diagnostics = append(all.Diagnostics, diags...)
			logger.Debug("file has errors", "path", result.File.Path(), "count", len(diags))
		}
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	all.Sort()

	if checkFormat == "json" {
		data, err := all.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	} else {
		stderr := cmd.ErrOrStderr()
		renderer := report.Renderer{
			Compact:   checkCompact,
			Colorize:  cfg.colorize(stderr),
			ShowDebug: verbose,
		}
		if _, _, err := renderer.Render(&all, stderr); err != nil {
			return err
		}
	}

	if all.HasErrors() {
		return errReported
	}
	return nil
}

// expandGlobs returns the sorted, deduplicated files matching any of globs.
func expandGlobs(globs []string) ([]string, error) {
	var paths []string
	for _, glob := range globs {
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("invalid glob %q", glob)
		}
		matches, err := doublestar.FilepathGlob(glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", glob, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", glob)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}
