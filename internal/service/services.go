package service

import (
	"time"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

// Services bundles every domain service built over one [store.Storages].
// Callers hold a single Services value for the lifetime of the process.
type Services struct {
	AuthService         AuthService
	ProfileService      ProfileService
	TaskService         TaskService
	SubscriptionService SubscriptionService
	PortabilityService  PortabilityService
	CalculatorService   CalculatorService
	PreferenceService   PreferenceService
	AppInfoService      AppInfoService

	// Session is the single session slot shared by every caller of these
	// services.
	Session *Session
}

// NewServices wires all services over storages using the wall clock.
//
// It fails only when the app info service cannot resolve a version, see
// [NewAppInfoService].
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	return NewServicesWithClock(storages, cfg, buildInfo, time.Now, logger)
}

// NewServicesWithClock is NewServices with an injectable clock. Task days,
// meal timestamps and subscription windows are all read from now.
func NewServicesWithClock(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, now func() time.Time, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUserIDGenerator()
	lang := cfg.Language
	if lang == "" {
		lang = config.LanguageEnglish
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		ProfileService: NewProfileService(storages.UserRepository, ids, now, logger),
		TaskService: NewTaskService(TaskDeps{
			Tasks:           storages.TaskRepository,
			Users:           storages.UserRepository,
			Preferences:     storages.PreferenceRepository,
			IDs:             ids,
			Now:             now,
			DefaultLanguage: lang,
		}, logger),
		SubscriptionService: NewSubscriptionService(storages.UserRepository, now, logger),
		PortabilityService:  NewPortabilityService(storages.UserRepository, logger),
		CalculatorService:   NewCalculatorService(logger),
		PreferenceService:   NewPreferenceService(storages.PreferenceRepository, cfg, logger),
		AppInfoService:      appInfo,
		Session:             NewSession(storages.SessionRepository, storages.UserRepository),
	}, nil
}
