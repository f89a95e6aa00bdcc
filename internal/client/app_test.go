package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/adapter"
	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/models"
)

var testBuildInfo = models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123")

func testConfig(t *testing.T) *config.ClientConfig {
	t.Helper()

	dir := t.TempDir()
	return &config.ClientConfig{
		App: config.App{Language: config.LanguageEnglish},
		Storage: config.Storage{
			Driver: config.DriverFile,
			Files:  config.Files{StatePath: filepath.Join(dir, "state.json")},
		},
		Export: config.Export{Dir: filepath.Join(dir, "exports")},
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig) *App {
	t.Helper()

	app, err := NewApp(context.Background(), cfg, testBuildInfo, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_RestoresSession(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	first, err := NewApp(ctx, cfg, testBuildInfo, logger.Nop())
	require.NoError(t, err)

	services := first.Services()
	_, err = services.AuthService.Register(ctx, models.User{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	_, err = services.AuthService.Login(ctx, services.Session, "ann@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newTestApp(t, cfg)
	user, ok := second.Services().Session.User()
	require.True(t, ok)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, testBuildInfo, second.BuildInfo())
}

func TestNewApp_Errors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = "floppy"

	_, err := NewApp(context.Background(), cfg, testBuildInfo, logger.Nop())
	assert.Error(t, err)

	cfg = testConfig(t)
	_, err = NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}

func TestApp_NewSink(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Export.RemoteAddress = "localhost:8080"
	app := newTestApp(t, cfg)

	sink, err := app.NewSink(ctx, ExportTarget{})
	require.NoError(t, err)
	assert.IsType(t, &adapter.FileSink{}, sink)

	sink, err = app.NewSink(ctx, ExportTarget{Remote: true})
	require.NoError(t, err)
	assert.IsType(t, &adapter.HTTPSink{}, sink)

	_, err = app.NewSink(ctx, ExportTarget{S3: true})
	assert.ErrorIs(t, err, adapter.ErrInvalidDestination)

	_, err = app.NewSink(ctx, ExportTarget{S3: true, Remote: true})
	assert.ErrorIs(t, err, ErrConflictingTargets)

	_, err = app.NewSink(ctx, ExportTarget{Path: "out.json", Remote: true})
	assert.ErrorIs(t, err, ErrConflictingTargets)
}

func TestApp_ExportThroughSinks(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	app := newTestApp(t, cfg)

	_, err := app.Services().AuthService.Register(ctx, models.User{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)

	sink, err := app.NewSink(ctx, ExportTarget{})
	require.NoError(t, err)
	location, err := app.Services().PortabilityService.ExportTo(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Export.Dir, service.ExportFileName), location)

	out := filepath.Join(t.TempDir(), "backup.json")
	sink, err = app.NewSink(ctx, ExportTarget{Path: out})
	require.NoError(t, err)
	_, err = app.Services().PortabilityService.ExportTo(ctx, sink)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ann@example.com")
}
