package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoExportDestination = errors.New("no export destination is configured")

// writeClipboard is swapped in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// statusTTL is how long a one-off status line stays on screen.
var statusTTL = 2 * time.Second

// ExportModel writes the users file to the configured sink or copies it to
// the clipboard.
type ExportModel struct {
	env *env

	spinner  spinner.Model
	busy     bool
	location string
	status   string
	errMsg   string
}

func NewExportModel(e *env) *ExportModel {
	return &ExportModel{
		env:     e,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *ExportModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.location = msg.location
		m.status = "Saved"
		return m, cmdClearStatus()

	case copiedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(msg, keys.enter):
			if m.env.sink == nil {
				m.errMsg = errNoExportDestination.Error()
				return m, nil
			}
			m.busy = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdExport())
		case key.Matches(msg, keys.copy):
			m.busy = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdCopy())
		}
	}
	return m, nil
}

func (m *ExportModel) View() string {
	var b strings.Builder

	b.WriteString("Exports every user on this device as ar-fit-users-data.json.\n")
	b.WriteString("The file holds passwords in plain text, keep it private.\n\n")

	if m.env.sink == nil {
		b.WriteString("Destination: -\n")
	}
	b.WriteString(fmt.Sprintf("Last export: %s\n", valueOrDash(m.location)))

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Exporting...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("EXPORT", strings.TrimRight(b.String(), "\n"), "enter: save │ c: copy to clipboard │ esc: back")
}

func (m *ExportModel) cmdExport() tea.Cmd {
	e := m.env

	return func() tea.Msg {
		location, err := e.services.PortabilityService.ExportTo(e.ctx, e.sink)
		return exportDoneMsg{location: location, err: err}
	}
}

func (m *ExportModel) cmdCopy() tea.Cmd {
	e := m.env

	return func() tea.Msg {
		data, err := e.services.PortabilityService.ExportAll(e.ctx)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err = writeClipboard(string(data)); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
