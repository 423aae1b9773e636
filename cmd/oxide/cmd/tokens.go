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

	"github.com/spf13/cobra"

	"github.com/oxidelang/oxide/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the tokens of a program",
	Long: `Print the tokens of a program, one per line, ending with the end-of-input
token. Lexing never fails: characters that begin no token are printed as
invalid characters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, tok := range lexer.Tokenize(file) {
			if _, err := fmt.Fprintf(out, "%d:%d\t%v\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Text); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
