package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/ar-fit/models"
)

// RootModel owns the page table and routes messages to the active page.
// It also handles quitting, the about overlay and the page changes that
// follow logging in and out.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	about     bool

	quitByUser bool
}

// NewRootModel registers pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.open(msg)
	case LoginResult:
		if msg.Err == nil {
			// the login page clears its form before it is left
			r.forward(msg)
			return r.open(NavigateTo{Page: pageDashboard})
		}
	case LogoutResult:
		if msg.Err == nil {
			return r.open(NavigateTo{Page: pageMenu})
		}
	}

	cmd := r.forward(msg)
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.about:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("AR-FIT", "", "")
	default:
		return r.current.View()
	}
}

// handleKey processes global keys. Keys are swallowed while the about
// overlay is shown.
func (r *RootModel) handleKey(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "v":
		if _, onMenu := r.current.(*MenuModel); onMenu {
			r.about = !r.about
			return true, nil
		}
	case "esc":
		if r.about {
			r.about = false
			return true, nil
		}
	}
	return r.about, nil
}

func (r *RootModel) forward(msg tea.Msg) tea.Cmd {
	if r.current == nil {
		return nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return cmd
}

// open switches to nav.Page. A payload is delivered to the new page in
// place of its Init.
func (r RootModel) open(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.about = false
	r.current = next

	if nav.Payload == nil {
		return r, r.current.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}
