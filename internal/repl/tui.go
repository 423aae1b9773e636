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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title, prompt, success, failure, help lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8590C")),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// model is the bubbletea model for the interactive REPL.
type model struct {
	eval   *Evaluator
	styles styles
	input  textinput.Model

	// Previously entered lines, and the position of the line being edited
	// within them; len(history) means a fresh line.
	history []string
	cursor  int
	draft   string

	quitting bool
}

func newModel(eval *Evaluator, color bool) model {
	s := newStyles(color)

	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = s.prompt
	input.Placeholder = "let x = 1 + 2;"
	input.Focus()

	return model{eval: eval, styles: s, input: input}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(+1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current line.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.cursor = len(m.history)
	m.draft = ""

	res := m.eval.Eval(line)
	echo := tea.Println(m.styles.prompt.Render(prompt) + line)
	switch res.Action {
	case Clear:
		return m, tea.ClearScreen
	case Quit:
		m.quitting = true
		return m, tea.Sequence(echo, tea.Println(res.Title), tea.Quit)
	}

	cmds := []tea.Cmd{echo}
	if out := m.render(res); out != "" {
		cmds = append(cmds, tea.Println(out+"\n"))
	}
	return m, tea.Sequence(cmds...)
}

// recall moves through the input history by delta entries.
func (m *model) recall(delta int) {
	next := m.cursor + delta
	if next < 0 || next > len(m.history) {
		return
	}
	if m.cursor == len(m.history) {
		m.draft = m.input.Value()
	}
	m.cursor = next
	if next == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[next])
	}
	m.input.CursorEnd()
}

func (m model) render(res Result) string {
	title := res.Title
	switch res.Kind {
	case Success:
		title = m.styles.success.Render(title)
	case Failure:
		title = m.styles.failure.Render(title)
	}
	return Result{Title: title, Body: res.Body}.String()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + m.styles.help.Render("enter: parse • ↑/↓: history • ctrl+c: quit")
}
