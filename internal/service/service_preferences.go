package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
)

// Themes accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// preferenceService validates and stores device-wide UI preferences.
type preferenceService struct {
	preferenceRepository store.PreferenceRepository
	defaultLang          string

	logger *logger.Logger
}

// NewPreferenceService returns the theme, language and visit counter
// service. cfg.Language is the language used before one is stored.
func NewPreferenceService(preferenceRepository store.PreferenceRepository, cfg config.App, logger *logger.Logger) PreferenceService {
	lang := cfg.Language
	if lang == "" {
		lang = config.LanguageEnglish
	}
	return &preferenceService{
		preferenceRepository: preferenceRepository,
		defaultLang:          lang,
		logger:               logger,
	}
}

// Theme returns the stored theme, [ThemeLight] by default.
func (p *preferenceService) Theme(ctx context.Context) (string, error) {
	return p.get(ctx, kv.ThemeKey, ThemeLight, ThemeLight, ThemeDark)
}

// SetTheme stores theme; anything but light or dark is
// [ErrInvalidDataProvided].
func (p *preferenceService) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidDataProvided, theme)
	}
	return p.preferenceRepository.Set(ctx, kv.ThemeKey, theme)
}

// Language returns the stored UI language or the configured default.
func (p *preferenceService) Language(ctx context.Context) (string, error) {
	return p.get(ctx, kv.LanguageKey, p.defaultLang, config.LanguageEnglish, config.LanguageArabic)
}

// SetLanguage stores lang; only en and ar are accepted.
func (p *preferenceService) SetLanguage(ctx context.Context, lang string) error {
	if lang != config.LanguageEnglish && lang != config.LanguageArabic {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidDataProvided, lang)
	}
	return p.preferenceRepository.Set(ctx, kv.LanguageKey, lang)
}

// IncrementVisit bumps the visit counter of a UI feature and returns the
// new count.
func (p *preferenceService) IncrementVisit(ctx context.Context, feature string) (int, error) {
	if feature == "" {
		return 0, fmt.Errorf("%w: empty feature name", ErrInvalidDataProvided)
	}
	return p.preferenceRepository.IncrementVisit(ctx, feature)
}

// get returns the stored value of key, or fallback when it is absent or
// not one of allowed.
func (p *preferenceService) get(ctx context.Context, key, fallback string, allowed ...string) (string, error) {
	value, ok, err := p.preferenceRepository.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	p.logger.Warn().Str("key", key).Str("value", value).Msg("ignoring unknown preference value")
	return fallback, nil
}
