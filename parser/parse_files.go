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

package parser

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/reporter"
	"github.com/oxidelang/oxide/source"
)

// Result is the outcome of parsing one file with [ParseFiles].
type Result struct {
	File    *source.File
	Program *ast.Program
	Err     error
}

// ParseFiles parses files concurrently, running at most parallelism parses at
// once (zero or less means GOMAXPROCS). Results are returned in the same order
// as files.
//
// opts.Reporter is shared between all parses, so it may be called
// concurrently. If it aborts a parse, the remaining files are not parsed, their
// Err is the context's error, and the abort error is returned.
func ParseFiles(ctx context.Context, opts Options, parallelism int, files ...*source.File) ([]Result, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, file := range files {
		results[i].File = file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			// Keep the handler's abort error separate from ordinary syntax
			// errors, which should not cancel the other parses.
			var aborted error
			fileOpts := opts
			if opts.Reporter != nil {
				fileOpts.Reporter = reporter.NewReporter(func(d *report.Diagnostic) error {
					err := opts.Reporter.Error(d)
					if err != nil {
						aborted = err
					}
					return err
				}, opts.Reporter.Warning)
			}

			prog, err := Parse(file, fileOpts)
			results[i].Program = prog
			results[i].Err = err
			return aborted
		})
	}
	return results, g.Wait()
}
