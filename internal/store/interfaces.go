package store

import (
	"context"

	"github.com/MKhiriev/ar-fit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Fields is a set of top-level user record fields keyed by their JSON name,
// e.g. {"name": "Ann", "loggedIn": true}.
type Fields map[string]any

// UserRepository is the collection of all registered user records. Every
// mutation rewrites the whole collection and fails with [ErrConflict] when
// another writer got there first.
type UserRepository interface {
	// List returns all users; empty when nothing is persisted.
	List(ctx context.Context) ([]models.User, error)
	// Add stores a new user; [ErrDuplicateEmail] when the email is taken.
	Add(ctx context.Context, user models.User) (models.User, error)
	// FindByEmailAndPassword matches both values exactly.
	FindByEmailAndPassword(ctx context.Context, email, password string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	// Update shallow-merges fields into the record. "id" and "createdAt"
	// are ignored.
	Update(ctx context.Context, id string, fields Fields) (models.User, error)
	// UpdateWith applies fn to the record inside one read-modify-write.
	UpdateWith(ctx context.Context, id string, fn func(user *models.User) error) (models.User, error)
	// ReplaceAll overwrites the collection; used by import.
	ReplaceAll(ctx context.Context, users []models.User) error
}

// SessionRepository holds the copy of the currently logged-in user.
type SessionRepository interface {
	// Current returns the session user or [ErrNoSession].
	Current(ctx context.Context) (models.User, error)
	SetCurrent(ctx context.Context, user models.User) error
	ClearCurrent(ctx context.Context) error
}

// TaskRepository holds per-user, per-day task lists.
type TaskRepository interface {
	// Get reports ok=false when no usable list is stored for the day.
	Get(ctx context.Context, userID, day string) ([]models.DailyTask, bool, error)
	Put(ctx context.Context, userID, day string, tasks []models.DailyTask) error
}

// PreferenceRepository holds device-wide UI preferences.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// IncrementVisit bumps and returns the feature's visit counter.
	IncrementVisit(ctx context.Context, feature string) (int, error)
}

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}
