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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/parser"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/walk"
)

var (
	parseFormat string
	parseAt     string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a program and print its syntax tree",
	Long: `Parse a program and print its syntax tree.

Reads standard input when no file (or "-") is given.

Formats:
  tree   indented tree, one node per line
  sexpr  source-like rendering with every operation parenthesized
  yaml   structured YAML
  json   structured JSON; diagnostics are also printed as JSON

With --at line:col, prints the nodes covering that position instead, from the
outermost to the innermost.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: tree, sexpr, yaml or json (default from config, else tree)")
	parseCmd.Flags().StringVar(&parseAt, "at", "", "print the nodes covering line:col")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format := parseFormat
	if format == "" {
		format = cfg.Format
	}
	switch format {
	case "tree", "sexpr", "yaml", "json":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	file, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prog, err := parser.Parse(file, parseOptions())
	if err != nil {
		return reportParseError(cmd, err, format == "json")
	}

	if parseAt != "" {
		return printCovering(out, file, prog, parseAt)
	}

	switch format {
	case "tree":
		_, err = io.WriteString(out, ast.Dump(prog))
	case "sexpr":
		_, err = io.WriteString(out, ast.Format(prog))
	case "yaml":
		var data []byte
		if data, err = ast.ToYAML(prog); err == nil {
			_, err = out.Write(data)
		}
	case "json":
		var data []byte
		if data, err = astJSON(prog); err == nil {
			_, err = fmt.Fprintf(out, "%s\n", data)
		}
	}
	return err
}

// readInput reads the file named by args, or standard input.
func readInput(cmd *cobra.Command, args []string) (*source.File, error) {
	if len(args) == 0 || args[0] == "-" {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return source.NewFile("<stdin>", string(text)), nil
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return source.NewFile(args[0], string(text)), nil
}

// reportParseError shows the diagnostics behind err and returns errReported.
func reportParseError(cmd *cobra.Command, err error, asJSON bool) error {
	diags := report.Diagnostics(err)
	if diags == nil {
		return err
	}
	r := &report.Report{Diagnostics: diags}

	if asJSON {
		data, err := r.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return errReported
	}

	stderr := cmd.ErrOrStderr()
	_, _, err = report.Renderer{Colorize: cfg.colorize(stderr)}.Render(r, stderr)
	if err != nil {
		return err
	}
	return errReported
}

// astJSON renders prog as JSON, with the same structure as [ast.ToYAML].
func astJSON(prog *ast.Program) ([]byte, error) {
	data, err := ast.ToYAML(prog)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	value, err := structpb.NewValue(tree)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true}.Marshal(value)
}

// printCovering prints every node covering the position given as line:col.
func printCovering(out io.Writer, file *source.File, prog *ast.Program, at string) error {
	var line, col int
	if _, err := fmt.Sscanf(at, "%d:%d", &line, &col); err != nil {
		return fmt.Errorf("invalid position %q: want line:col", at)
	}
	offset, ok := file.Offset(line, col)
	if !ok {
		return fmt.Errorf("position %s is outside of %s", at, file.Path())
	}

	for depth, node := range walk.Covering(prog, offset) {
		span := node.Span()
		start, end := span.StartLoc(), span.EndLoc()
		fmt.Fprintf(out, "%s%s %d:%d-%d:%d\n",
			strings.Repeat("  ", depth),
			strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast."),
			start.Line, start.Column, end.Line, end.Column,
		)
	}
	return nil
}
