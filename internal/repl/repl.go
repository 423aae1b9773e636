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

// Package repl implements oxide's interactive read-eval-print loop.
//
// Each line of input is either a command (help, quit, clear) or oxide source
// text, which is parsed and shown as an AST tree or as diagnostics. On a
// terminal the loop runs as a bubbletea program with line editing and
// history; otherwise it reads plain lines, which makes it scriptable.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Mode selects the REPL front end.
type Mode int

const (
	// Auto uses the TUI when both input and output are terminals.
	Auto Mode = iota
	Plain
	TUI
)

const (
	banner = `Oxide Language REPL
Type 'help' for commands, 'quit' to exit
Enter Oxide code to parse and see the AST`
	prompt      = "> "
	clearScreen = "\x1b[2J\x1b[1;1H"
)

// Config configures [Run].
type Config struct {
	In  io.Reader
	Out io.Writer

	Mode Mode

	// Whether to style output with color.
	Color bool

	Evaluator Evaluator
}

// Run runs the REPL until the user quits, input ends, or ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	cfg.Evaluator.Renderer.Colorize = cfg.Color

	mode := cfg.Mode
	if mode == Auto {
		mode = Plain
		if IsTerminal(cfg.In) && IsTerminal(cfg.Out) {
			mode = TUI
		}
	}

	if mode == Plain {
		return runPlain(ctx, cfg)
	}

	fmt.Fprintln(cfg.Out, newStyles(cfg.Color).title.Render(banner))
	p := tea.NewProgram(
		newModel(&cfg.Evaluator, cfg.Color),
		tea.WithContext(ctx),
		tea.WithInput(cfg.In),
		tea.WithOutput(cfg.Out),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// IsTerminal returns whether f is an *os.File attached to a terminal.
func IsTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runPlain(ctx context.Context, cfg Config) error {
	fmt.Fprintln(cfg.Out, banner)

	scanner := bufio.NewScanner(cfg.In)
	for ctx.Err() == nil {
		fmt.Fprint(cfg.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(cfg.Out)
			return scanner.Err()
		}

		res := cfg.Evaluator.Eval(scanner.Text())
		if res.Action == Clear {
			fmt.Fprint(cfg.Out, clearScreen)
			continue
		}
		if text := res.String(); text != "" {
			fmt.Fprintln(cfg.Out, text)
			if res.Action == Continue {
				fmt.Fprintln(cfg.Out)
			}
		}
		if res.Action == Quit {
			return nil
		}
	}
	return ctx.Err()
}
