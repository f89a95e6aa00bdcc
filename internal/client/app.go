package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/adapter"
	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/tui"
	"github.com/MKhiriev/ar-fit/models"
)

var ErrConflictingTargets = errors.New("choose only one export target")

// ExportTarget selects the sink of one export. The zero value writes into
// the configured export directory.
type ExportTarget struct {
	// Path is an explicit output file.
	Path string
	// S3 writes to the configured bucket.
	S3 bool
	// Remote posts to the configured ar-fit server.
	Remote bool
}

// App owns the storages and services of one client process.
type App struct {
	cfg       *config.ClientConfig
	storages  *store.Storages
	services  *service.Services
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.App.StrictState, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewServices(storages, cfg.App, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	if err = services.Session.Load(ctx); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &App{
		cfg:       cfg,
		storages:  storages,
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (a *App) Services() *service.Services {
	return a.services
}

func (a *App) BuildInfo() models.AppBuildInfo {
	return a.buildInfo
}

// Run opens the TUI and blocks until the user leaves it. Quitting with
// ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	sink, err := a.NewSink(ctx, a.defaultTarget())
	if err != nil {
		a.logger.Warn().Err(err).Msg("export destination is unavailable")
		sink = nil
	}

	ui, err := tui.New(a.services, a.buildInfo, sink, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
}

// NewSink builds the export sink of target.
func (a *App) NewSink(ctx context.Context, target ExportTarget) (service.ExportSink, error) {
	if target.S3 && target.Remote || (target.S3 || target.Remote) && target.Path != "" {
		return nil, ErrConflictingTargets
	}

	switch {
	case target.S3:
		sink, err := adapter.NewS3Sink(ctx, a.cfg.Export.S3, a.logger)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case target.Remote:
		sink, err := adapter.NewHTTPSink(a.cfg.Export, a.logger)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case target.Path != "":
		return adapter.NewFilePathSink(target.Path, a.logger), nil
	default:
		return adapter.NewFileSink(a.cfg.Export.Dir, a.logger), nil
	}
}

// defaultTarget is the TUI's export target: the bucket when one is
// configured, the export directory otherwise.
func (a *App) defaultTarget() ExportTarget {
	return ExportTarget{S3: a.cfg.Export.S3.Enabled()}
}

// Close releases the storages.
func (a *App) Close() error {
	return a.storages.Close()
}
