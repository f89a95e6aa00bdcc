package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/ar-fit/models"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the account creation page. After a successful
// registration it returns to the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	env *env
	form
}

func NewRegisterModel(e *env) *RegisterModel {
	return &RegisterModel{
		env: e,
		form: newForm(
			formField{label: "Name"},
			formField{label: "Email", limit: 254},
			formField{label: "Password", password: true},
			formField{label: "Repeat password", password: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		if result.Err != nil {
			m.submitting = false
			m.errMsg = m.env.errorText(result.Err)
			return m, nil
		}

		m.reset()
		notice := RegisterSuccessNotice{Email: result.User.Email}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: notice}
		}
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

func (m *RegisterModel) View() string {
	return m.render("CREATE ACCOUNT", "Create account")
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	user := models.User{
		Name:     strings.TrimSpace(m.value(registerName)),
		Email:    strings.TrimSpace(m.value(registerEmail)),
		Password: m.value(registerPassword),
	}
	switch {
	case user.Email == "" || user.Password == "":
		m.errMsg = "Email and password are required"
		return nil
	case user.Password != m.value(registerRepeat):
		m.errMsg = "Passwords do not match"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth := m.env.ctx, m.env.services.AuthService
	return func() tea.Msg {
		registered, err := auth.Register(ctx, user)
		return RegisterResult{User: registered, Err: err}
	}
}
