package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 40

type formField struct {
	label    string
	limit    int
	password bool
}

// form is the labelled input column shared by the login and register pages.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(field.label)
		in.Width = inputWidth
		if field.limit > 0 {
			in.CharLimit = field.limit
		}
		if field.password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = field.label
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

// handleKey moves focus on tab and shift+tab and feeds every other message
// to the focused input.
func (f *form) handleKey(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.moveFocus(1)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.moveFocus(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) moveFocus(step int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + step + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// reset empties every input so typed passwords do not outlive the page.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.submitting = false
	f.errMsg = ""
}

func (f *form) render(title, button string) string {
	labelWidth := 0
	for _, label := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	var b strings.Builder
	for i, label := range f.labels {
		fmt.Fprintf(&b, "%-*s │ [%s]\n", labelWidth, label, f.inputs[i].View())
	}

	if f.submitting {
		button += "..."
	}
	fmt.Fprintf(&b, "\n[%s]", button)

	if f.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+f.errMsg))
	}

	return renderPage(title, b.String(), "esc: back │ tab: next field │ enter: submit")
}
