package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
)

func TestPreferenceService_Theme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.services.PreferenceService

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, svc.SetTheme(ctx, ThemeDark))
	theme, err = svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	assert.ErrorIs(t, svc.SetTheme(ctx, "sepia"), ErrInvalidDataProvided)
}

func TestPreferenceService_Theme_UnknownStoredValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.storages.PreferenceRepository.Set(ctx, kv.ThemeKey, "neon"))

	theme, err := f.services.PreferenceService.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestPreferenceService_Language(t *testing.T) {
	sub := kv.NewMemory()
	repo := store.NewPreferenceRepository(sub, logger.Nop())
	ctx := context.Background()

	svc := NewPreferenceService(repo, config.App{Language: config.LanguageArabic}, logger.Nop())
	lang, err := svc.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.LanguageArabic, lang)

	require.NoError(t, svc.SetLanguage(ctx, config.LanguageEnglish))
	lang, err = svc.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.LanguageEnglish, lang)

	assert.ErrorIs(t, svc.SetLanguage(ctx, "de"), ErrInvalidDataProvided)
}

func TestPreferenceService_Language_DefaultsToEnglish(t *testing.T) {
	repo := store.NewPreferenceRepository(kv.NewMemory(), logger.Nop())

	lang, err := NewPreferenceService(repo, config.App{}, logger.Nop()).Language(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.LanguageEnglish, lang)
}

func TestPreferenceService_IncrementVisit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.services.PreferenceService

	for want := 1; want <= 3; want++ {
		got, err := svc.IncrementVisit(ctx, "dashboard")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := svc.IncrementVisit(ctx, "plans")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = svc.IncrementVisit(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
