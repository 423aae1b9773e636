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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/oxidelang/oxide/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns how many errors and
// warnings the report contains.
//
// The error return is only ever an error from writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report.Diagnostics {
		diagnostic := &report.Diagnostics[i]
		if !r.ShowRemarks && diagnostic.Level == Remark {
			continue
		}

		if _, err = fmt.Fprintln(out, r.Diagnostic(diagnostic)); err != nil {
			return
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return
			}
		}

		switch diagnostic.Level {
		case Error, ICE:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if r.Compact {
		return
	}

	c := r.colors()
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.bRed, "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.bRed, "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.bYellow, "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := r.colors()

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		path := d.Path()
		if path == "" {
			path = "<unknown>"
		}
		pos := d.Pos()
		if pos.IsZero() {
			return fmt.Sprint(c.BoldForLevel(d.Level), d.Level, ": ", c.reset, path, ": ", d.Message())
		}
		return fmt.Sprintf("%s%s: %s%s:%d:%d: %s",
			c.BoldForLevel(d.Level), d.Level, c.reset, path, pos.Line, pos.Column, d.Message())
	}

	// For the other styles, we imitate the Rust compiler. See
	// https://github.com/rust-lang/rustc-dev-guide/blob/master/src/diagnostics.md
	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(d.Level), d.Level, ": ", d.Message(), c.reset)

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the snippets.
	var greatestLine int
	for _, a := range d.Annotations {
		greatestLine = max(greatestLine, a.StartLoc().Line)
	}
	barWidth := max(2, len(fmt.Sprint(greatestLine)))
	bar := strings.Repeat(" ", barWidth)

	var prev *Annotation
	for i := range d.Annotations {
		a := &d.Annotations[i]
		start := a.StartLoc()
		if prev == nil || prev.File != a.File {
			arrow := "-->"
			if prev != nil {
				arrow = ":::"
			}
			fmt.Fprintf(&out, "\n%s%s%s %s:%d:%d", c.nBlue, bar, arrow, a.Path(), start.Line, start.Column)
			fmt.Fprintf(&out, "\n%s%s |%s", c.nBlue, bar, c.reset)
		}

		if prev == nil || prev.File != a.File || prev.StartLoc().Line != start.Line {
			line := strings.TrimRight(a.Line(start.Line), "\r\n")
			text, _ := source.Expand(0, line)
			fmt.Fprintf(&out, "\n%s%*d |%s %s", c.nBlue, barWidth, start.Line, c.reset, text)
		}

		level := note
		if a.Primary {
			level = d.Level
		}
		fmt.Fprintf(&out, "\n%s%s |%s %s", c.nBlue, bar, c.reset, underline(a, start, level, c))
		prev = a
	}

	// Render a remedial file name for spanless errors.
	if len(d.Annotations) == 0 {
		path := d.InFile
		if path == "" {
			path = "<unknown>"
		}
		fmt.Fprintf(&out, "\n%s%s--> %s%s", c.nBlue, bar, path, c.reset)
	}

	// Render the footers. For simplicity we collect them into an array first.
	var footers [][2]string
	for _, note := range d.Notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, [2]string{"help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.Debug {
			footers = append(footers, [2]string{"debug", debug})
		}
		for i, frame := range d.trace {
			if debugMode < debugFull && i > 0 {
				break
			}
			footers = append(footers,
				[2]string{"debug", fmt.Sprintf("at %s", frame.Function)},
				[2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)},
			)
		}
	}
	for _, footer := range footers {
		fmt.Fprintf(&out, "\n%s%s = %s%s: %s%s", c.nBlue, bar, c.bCyan, footer[0], c.reset, footer[1])
	}

	return out.String()
}

// underline renders the ^^^ or --- marker under a snippet, followed by its
// message. Spans that run past the end of their first line are cut off there.
func underline(a *Annotation, start source.Location, level Level, c color) string {
	lineStart, lineEnd := a.LineOffsets(start.Line)
	text := a.File.Text()
	end := min(a.End, lineEnd)
	prefix := source.Width(0, text[lineStart:a.Start])
	width := source.Width(prefix, strings.TrimRight(text[a.Start:end], "\r\n")) - prefix
	width = max(1, width)

	mark := "^"
	if level == note || level == Remark {
		mark = "-"
	}

	var out strings.Builder
	out.WriteString(strings.Repeat(" ", prefix))
	out.WriteString(c.BoldForLevel(level))
	out.WriteString(strings.Repeat(mark, width))
	if a.Message != "" {
		out.WriteString(" ")
		out.WriteString(a.Message)
	}
	out.WriteString(c.reset)
	return out.String()
}

// color is the colors used for pretty-rendering diagnostics.
type color struct {
	reset string
	// Normal colors.
	nRed, nYellow, nCyan, nBlue string
	// Bold colors.
	bRed, bYellow, bCyan, bBlue string
}

func (r Renderer) colors() color {
	if !r.Colorize {
		return color{}
	}
	return color{
		reset:   "\033[0m",
		nRed:    "\033[0;31m",
		nYellow: "\033[0;33m",
		nCyan:   "\033[0;36m",
		nBlue:   "\033[0;34m",
		bRed:    "\033[1;31m",
		bYellow: "\033[1;33m",
		bCyan:   "\033[1;36m",
		bBlue:   "\033[1;34m",
	}
}

// BoldForLevel returns the bold color escape for l.
func (c color) BoldForLevel(l Level) string {
	switch l {
	case ICE, Error:
		return c.bRed
	case Warning:
		return c.bYellow
	case Remark:
		return c.bCyan
	case note:
		return c.bBlue
	default:
		return ""
	}
}
