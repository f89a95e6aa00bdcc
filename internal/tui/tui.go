// Package tui is the terminal user interface of the ar-fit client.
//
// Every screen is a [tea.Model] registered as a page in the [RootModel],
// which routes [NavigateTo] messages between them. Pages never touch
// storage directly: they call the services through commands and receive
// the results as messages.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/app"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

var errNoServices = errors.New("tui: services are required")

// env is shared by all pages of one program run.
type env struct {
	ctx      context.Context
	services *service.Services
	sink     service.ExportSink
	lang     string
	logger   *logger.Logger
}

func (e *env) errorText(err error) string {
	return humanizeError(err, e.lang)
}

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	sink      service.ExportSink
	logger    *logger.Logger
}

// New builds the UI over services. sink is where the export page writes
// the users file; it may be nil, in which case only the clipboard copy is
// offered.
func New(services *service.Services, buildInfo models.AppBuildInfo, sink service.ExportSink, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		sink:      sink,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] when the user
// pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	e, err := t.newEnv(ctx)
	if err != nil {
		return err
	}

	root := newRootModel(e, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newEnv(ctx context.Context) (*env, error) {
	if err := t.services.Session.Load(ctx); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	lang, err := t.services.PreferenceService.Language(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Msg("language preference is unavailable, using english")
		lang = app.LangEnglish
	}

	return &env{
		ctx:      ctx,
		services: t.services,
		sink:     t.sink,
		lang:     lang,
		logger:   t.logger,
	}, nil
}

// newRootModel registers every page. A restored session opens the
// dashboard directly.
func newRootModel(e *env, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(e),
		pageRegister:  NewRegisterModel(e),
		pageDashboard: NewDashboardModel(e),
		pagePlans:     NewPlansModel(e),
		pageExport:    NewExportModel(e),
	}

	start := pageMenu
	if e.services.Session.IsAuthenticated() {
		start = pageDashboard
	}
	return NewRootModel(pages, start, buildInfo)
}
