package tui

import (
	"github.com/MKhiriev/ar-fit/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in the [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pagePlans     = "plans"
	pageExport    = "export"
)

// NavigateTo asks the [RootModel] to switch the active page. When Payload is
// set it is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the services answered.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult is produced by the register page once the services answered.
type RegisterResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	Email string
}

// LogoutResult is produced by the dashboard after the session was cleared.
type LogoutResult struct {
	Err error
}

type dashboardLoadedMsg struct {
	user     models.User
	tasks    []models.DailyTask
	progress models.DayProgress
	visits   int
	err      error
}

type taskToggledMsg struct {
	progress models.DayProgress
	err      error
}

type languageChangedMsg struct {
	lang string
	err  error
}

type activatedMsg struct {
	user models.User
	plan models.Plan
	err  error
}

type exportDoneMsg struct {
	location string
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
