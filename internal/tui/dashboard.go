package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ar-fit/internal/app"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardFeature is the visit counter key of the dashboard.
const dashboardFeature = "dashboard"

// surveyHintVisits is how many dashboard visits show the survey hint.
const surveyHintVisits = 3

// DashboardModel shows the session user's day: today's tasks, progress,
// streak and subscription status. Tasks are toggled in place.
type DashboardModel struct {
	env *env

	user     models.User
	tasks    []models.DailyTask
	progress models.DayProgress
	visits   int

	idx     int
	loading bool
	busy    bool
	status  string
	errMsg  string
}

func NewDashboardModel(e *env) *DashboardModel {
	return &DashboardModel{env: e}
}

// Init counts the visit and loads the day.
func (m *DashboardModel) Init() tea.Cmd {
	m.user = models.User{}
	m.tasks = nil
	m.idx = 0
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad(true)
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if errors.Is(msg.err, store.ErrNoSession) {
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.tasks = msg.tasks
		m.progress = msg.progress
		if msg.visits > 0 {
			m.visits = msg.visits
		}
		if m.idx >= len(m.tasks) {
			m.idx = max(0, len(m.tasks)-1)
		}
		return m, nil

	case taskToggledMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.progress = msg.progress
		if msg.progress.Total > 0 && msg.progress.Completed == msg.progress.Total {
			m.status = "All tasks done for today!"
		}
		return m, m.cmdLoad(false)

	case languageChangedMsg:
		if msg.err != nil {
			m.errMsg = m.env.errorText(msg.err)
			return m, nil
		}
		m.env.lang = msg.lang
		m.status = "Language: " + msg.lang
		return m, nil

	case LogoutResult:
		if msg.Err != nil {
			m.errMsg = m.env.errorText(msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.tasks)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
		if m.busy || m.loading || len(m.tasks) == 0 {
			return m, nil
		}
		m.busy = true
		m.status = ""
		return m, m.cmdToggle(m.tasks[m.idx].ID)
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad(false)
	case key.Matches(msg, keys.plans):
		return m, func() tea.Msg { return NavigateTo{Page: pagePlans} }
	case key.Matches(msg, keys.export):
		return m, func() tea.Msg { return NavigateTo{Page: pageExport} }
	case key.Matches(msg, keys.language):
		return m, m.cmdSwitchLanguage()
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.user.ID == "" {
		if m.errMsg != "" {
			return renderPage("TODAY", errorStyle.Render("Error: "+m.errMsg), "r: retry │ o: log out")
		}
		return renderPage("TODAY", "Loading...", "")
	}

	name := m.user.Name
	if name == "" {
		name = m.user.Email
	}
	b.WriteString(fmt.Sprintf("Hello, %s\n\n", valueOrDash(name)))

	if m.visits > 0 && m.visits <= surveyHintVisits && len(m.user.BodyProblems) == 0 && len(m.user.DietRestrictions) == 0 {
		b.WriteString(hintStyle.Render("Tip: fill in the body and diet survey to get tasks that fit you"))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Progress   %s  %d/%d\n", progressBar(m.progress.Percentage), m.progress.Completed, m.progress.Total))
	b.WriteString(fmt.Sprintf("Burned     %d kcal\n", m.progress.CaloriesBurned))
	b.WriteString(fmt.Sprintf("Eaten      %d kcal\n", m.env.services.ProfileService.TodayMealCalories(m.user)))
	b.WriteString(fmt.Sprintf("Streak     %d day(s), %d workout(s) total\n", m.user.Stats.Streak, m.user.Stats.WorkoutsCompleted))
	b.WriteString(fmt.Sprintf("Plans      workout: %s, nutrition: %s\n\n",
		m.subscriptionState(models.SubscriptionWorkout),
		m.subscriptionState(models.SubscriptionNutrition)))

	if len(m.tasks) == 0 {
		b.WriteString("No tasks for today\n")
	}
	for i, task := range m.tasks {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		check := "[ ]"
		title := fitText(task.Title, 40)
		if task.Completed {
			check = "[x]"
			title = doneStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%s, %d kcal)\n", cursor, check, title, task.Category, task.Category.CaloriesBurned()))
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

	return renderPage("TODAY", strings.TrimRight(b.String(), "\n"),
		"space: done/undo │ p: plans │ e: export │ g: language │ r: refresh │ o: log out")
}

func (m *DashboardModel) subscriptionState(kind models.SubscriptionType) string {
	if m.env.services.SubscriptionService.IsActive(m.user, kind) {
		return "active"
	}
	return "inactive"
}

// cmdLoad reads the session user and today's tasks. countVisit bumps the
// dashboard visit counter.
func (m *DashboardModel) cmdLoad(countVisit bool) tea.Cmd {
	e := m.env

	return func() tea.Msg {
		user, err := e.services.AuthService.Current(e.ctx, e.services.Session)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		tasks, err := e.services.TaskService.TodayTasks(e.ctx, user.ID)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		var visits int
		if countVisit {
			visits, err = e.services.PreferenceService.IncrementVisit(e.ctx, dashboardFeature)
			if err != nil {
				e.logger.Warn().Err(err).Msg("dashboard visit was not counted")
			}
		}

		return dashboardLoadedMsg{
			user:     user,
			tasks:    tasks,
			progress: e.services.TaskService.Progress(tasks),
			visits:   visits,
		}
	}
}

func (m *DashboardModel) cmdToggle(taskID string) tea.Cmd {
	e := m.env

	return func() tea.Msg {
		progress, err := e.services.TaskService.ToggleTask(e.ctx, e.services.Session, taskID)
		return taskToggledMsg{progress: progress, err: err}
	}
}

func (m *DashboardModel) cmdSwitchLanguage() tea.Cmd {
	e := m.env
	next := app.LangArabic
	if e.lang == app.LangArabic {
		next = app.LangEnglish
	}

	return func() tea.Msg {
		err := e.services.PreferenceService.SetLanguage(e.ctx, next)
		return languageChangedMsg{lang: next, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	e := m.env

	return func() tea.Msg {
		return LogoutResult{Err: e.services.AuthService.Logout(e.ctx, e.services.Session)}
	}
}
