package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/ar-fit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PlansModel lists the purchasable subscription plans and activates the
// selected one for the session user.
type PlansModel struct {
	env *env

	plans  []models.Plan
	idx    int
	busy   bool
	status string
	errMsg string
}

func NewPlansModel(e *env) *PlansModel {
	return &PlansModel{
		env:   e,
		plans: e.services.SubscriptionService.Plans(),
	}
}

func (m *PlansModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *PlansModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activatedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%s plan is active until %s", msg.plan.Type, m.activeUntil(msg.user, msg.plan.Type))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.plans)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if m.busy || len(m.plans) == 0 {
				return m, nil
			}
			m.busy = true
			m.status = ""
			return m, m.cmdActivate(m.plans[m.idx])
		}
	}
	return m, nil
}

func (m *PlansModel) View() string {
	var b strings.Builder

	b.WriteString("  Plan       │ Months │ Price\n")
	b.WriteString("─────────────┼────────┼────────\n")
	for i, plan := range m.plans {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-10s │ %6d │ %6.0f\n", cursor, plan.Type, plan.Duration, plan.Price))
	}

	if m.busy {
		b.WriteString("\nActivating...\n")
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

	return renderPage("PLANS", strings.TrimRight(b.String(), "\n"), "enter: activate │ ↑/↓: move │ esc: back")
}

func (m *PlansModel) activeUntil(user models.User, kind models.SubscriptionType) string {
	sub := user.Subscriptions.Workout
	if kind == models.SubscriptionNutrition {
		sub = user.Subscriptions.Nutrition
	}
	if sub == nil {
		return "-"
	}
	return sub.EndDate.Format("2006-01-02")
}

func (m *PlansModel) cmdActivate(plan models.Plan) tea.Cmd {
	e := m.env

	return func() tea.Msg {
		user, ok := e.services.Session.User()
		if !ok {
			if err := e.services.Session.Load(e.ctx); err != nil {
				return activatedMsg{plan: plan, err: err}
			}
			user, _ = e.services.Session.User()
		}

		updated, err := e.services.SubscriptionService.Activate(e.ctx, e.services.Session, models.ActivationRequest{
			UserID:   user.ID,
			Type:     plan.Type,
			Duration: plan.Duration,
			Price:    plan.Price,
		})
		return activatedMsg{user: updated, plan: plan, err: err}
	}
}
