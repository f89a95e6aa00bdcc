package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the signed-out landing page.
type MenuModel struct {
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Log in", page: pageLogin},
			{title: "Create account", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Email != "" {
			m.status = "Account " + notice.Email + " created, you can log in now"
		} else {
			m.status = "Account created"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.items[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(okStyle.Render("OK: "+m.status) + "\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%d. %s\n", cursor, i+1, item.title)
	}

	return renderPage("AR-FIT", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
