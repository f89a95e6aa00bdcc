package service

import (
	"context"

	"github.com/MKhiriev/ar-fit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, session *Session, email, password string) (models.User, error)
	Logout(ctx context.Context, session *Session) error
	Current(ctx context.Context, session *Session) (models.User, error)
}

type ProfileService interface {
	UpdateProfile(ctx context.Context, session *Session, patch models.ProfilePatch) (models.User, error)
	SubmitSurvey(ctx context.Context, session *Session, bodyProblems, dietRestrictions []string) (models.User, error)
	AddMeal(ctx context.Context, session *Session, name string, calories int) (models.User, error)
	RecordSteps(ctx context.Context, session *Session, steps int) (models.User, error)
	TodayMealCalories(user models.User) int
}

// TaskService manages the per-day task lists and their effect on the
// user's stats.
type TaskService interface {
	TodayTasks(ctx context.Context, userID string) ([]models.DailyTask, error)
	ReplaceTasks(ctx context.Context, userID string, tasks []models.DailyTask) error
	ToggleTask(ctx context.Context, session *Session, taskID string) (models.DayProgress, error)
	Progress(tasks []models.DailyTask) models.DayProgress
}

type SubscriptionService interface {
	IsActive(user models.User, kind models.SubscriptionType) bool
	Activate(ctx context.Context, session *Session, req models.ActivationRequest) (models.User, error)
	Plans() []models.Plan
}

// PortabilityService exports and imports the whole user collection.
type PortabilityService interface {
	ExportAll(ctx context.Context) ([]byte, error)
	ImportAll(ctx context.Context, data []byte) error
	// ExportTo writes the export through sink and returns where it landed.
	ExportTo(ctx context.Context, sink ExportSink) (string, error)
}

type CalculatorService interface {
	Calculate(ctx context.Context, req models.CalorieRequest) (models.CalorieResult, error)
}

type PreferenceService interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, lang string) error
	IncrementVisit(ctx context.Context, feature string) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ExportSink is a destination for the users export file.
type ExportSink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}
