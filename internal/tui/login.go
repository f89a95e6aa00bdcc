// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the login page. A successful login produces a [LoginResult]
// that the [RootModel] answers by opening the dashboard.
type LoginModel struct {
	env *env
	form
}

func NewLoginModel(e *env) *LoginModel {
	return &LoginModel{
		env: e,
		form: newForm(
			formField{label: "Email", limit: 254},
			formField{label: "Password", limit: 256, password: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		if result.Err != nil {
			m.submitting = false
			m.errMsg = m.env.errorText(result.Err)
			return m, nil
		}
		m.reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.handleKey(msg)
}

func (m *LoginModel) View() string {
	return m.render("LOG IN", "Log in")
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.value(loginEmail))
	pass := m.value(loginPassword)
	if email == "" || pass == "" {
		m.errMsg = "Email and password are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth, session := m.env.ctx, m.env.services.AuthService, m.env.services.Session
	return func() tea.Msg {
		user, err := auth.Login(ctx, session, email, pass)
		return LoginResult{User: user, Err: err}
	}
}
