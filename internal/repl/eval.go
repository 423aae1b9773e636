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

package repl

import (
	"fmt"
	"strings"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/parser"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/source"
)

// Action tells a front end what to do after evaluating a line.
type Action int

const (
	Continue Action = iota
	Quit
	Clear
)

// Kind classifies the outcome of evaluating a line, for styling.
type Kind int

const (
	Info Kind = iota
	Success
	Failure
)

// Result is the outcome of evaluating one line of input.
type Result struct {
	Action Action
	Kind   Kind

	// A one-line headline and the text below it. Either may be empty.
	Title, Body string
}

// String renders r without any styling.
func (r Result) String() string {
	switch {
	case r.Title == "":
		return r.Body
	case r.Body == "":
		return r.Title
	default:
		return r.Title + "\n" + r.Body
	}
}

// Evaluator interprets REPL input: either a command or oxide source to parse.
type Evaluator struct {
	Options  parser.Options
	Renderer report.Renderer
}

// Eval evaluates a single line of input.
func (e *Evaluator) Eval(line string) Result {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return Result{}
	case "quit", "exit", "q":
		return Result{Action: Quit, Title: "Goodbye!"}
	case "help", "h":
		return Result{Body: helpText}
	case "clear", "cls":
		return Result{Action: Clear}
	}

	prog, err := parser.Parse(source.NewFile("<repl>", line), e.Options)
	if err != nil {
		return Result{Kind: Failure, Title: "✗ Parse failed:", Body: e.failure(err)}
	}
	if len(prog.Stmts) == 0 {
		return Result{Title: "No statements parsed"}
	}
	return Result{Kind: Success, Title: "✓ Parsed successfully!", Body: success(prog)}
}

func success(prog *ast.Program) string {
	var out strings.Builder
	out.WriteString("AST:\n")
	if len(prog.Stmts) == 1 {
		out.WriteString(indent(ast.Dump(prog.Stmts[0]), 1))
		return strings.TrimSuffix(out.String(), "\n")
	}
	for i, stmt := range prog.Stmts {
		fmt.Fprintf(&out, "  Statement %d:\n", i+1)
		out.WriteString(indent(ast.Dump(stmt), 2))
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func (e *Evaluator) failure(err error) string {
	diags := report.Diagnostics(err)
	if len(diags) == 0 {
		return "  " + err.Error()
	}

	var out strings.Builder
	for i := range diags {
		if i > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(e.Renderer.Diagnostic(&diags[i]))
	}
	return out.String()
}

// indent prefixes every line of text with n levels of indentation.
func indent(text string, n int) string {
	prefix := strings.Repeat("  ", n)
	lines := strings.SplitAfter(text, "\n")
	var out strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		out.WriteString(prefix)
		out.WriteString(line)
	}
	return out.String()
}

const helpText = `Commands:
  help, h        Show this help message
  quit, exit, q  Exit the REPL
  clear, cls     Clear the screen

Examples:
  let x = 42;
  1 + 2 * 3;
  (1 + 2) * (3 - 4);
  -42;
  { let x = 5; x + 10; }`
