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
	"github.com/spf13/cobra"

	"github.com/oxidelang/oxide/internal/repl"
	"github.com/oxidelang/oxide/report"
)

var replPlain bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Each line is parsed and shown as a syntax
tree, or as diagnostics if it does not parse.

Commands:
  help, h        show help
  quit, exit, q  leave the session
  clear, cls     clear the screen

When standard input is not a terminal, lines are read without editing or
history, which makes the session scriptable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := repl.Auto
		if replPlain {
			mode = repl.Plain
		}
		out := cmd.OutOrStdout()
		return repl.Run(cmd.Context(), repl.Config{
			In:    cmd.InOrStdin(),
			Out:   out,
			Mode:  mode,
			Color: cfg.colorize(out),
			Evaluator: repl.Evaluator{
				Options:  parseOptions(),
				Renderer: report.Renderer{ShowDebug: verbose},
			},
		})
	},
}

func init() {
	replCmd.Flags().BoolVar(&replPlain, "plain", false, "read plain lines even on a terminal")
	rootCmd.AddCommand(replCmd)
}
