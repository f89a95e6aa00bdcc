// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/models"
)

// userRepository keeps the whole users collection as one JSON array under
// [kv.UsersKey]. Every mutation rewrites the full array, guarded by the
// counter under [kv.UsersRevisionKey].
type userRepository struct {
	kv     kv.Substrate
	ids    IDGenerator
	now    func() time.Time
	strict bool
	logger *logger.Logger

	// serializes read-modify-write cycles of this process
	mu sync.Mutex
}

// NewUserRepository returns a [UserRepository] over sub. In strict mode an
// undecodable collection yields [ErrCorruptState]; otherwise it reads as
// empty.
func NewUserRepository(sub kv.Substrate, ids IDGenerator, now func() time.Time, strict bool, log *logger.Logger) UserRepository {
	return &userRepository{
		kv:     sub,
		ids:    ids,
		now:    now,
		strict: strict,
		logger: log,
	}
}

// List returns every persisted user in insertion order. Nothing persisted
// yields an empty, non-nil slice.
//
// Error handling:
//   - Substrate failure → wrapped, e.g. [kv.ErrUnavailable].
//   - Undecodable collection in strict mode → [ErrCorruptState].
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users, _, err := r.load(ctx)
	return users, err
}

// Add appends user to the collection and returns it as stored. An empty ID
// is replaced by a generated one and a zero CreatedAt by the current time;
// list fields are normalized to non-nil, duplicate-free values.
//
// Error handling:
//   - Email already present → [ErrDuplicateEmail]; nothing is written.
//   - Revision moved since the read → [ErrConflict]; nothing is written.
//   - Substrate failure → wrapped.
func (r *userRepository) Add(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, rev, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, existing := range users {
		if existing.Email == user.Email {
			r.logger.Debug().Str("func", "userRepository.Add").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrDuplicateEmail
		}
	}

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.now()
	}
	normalize(&user)

	users = append(users, user)
	if err = r.save(ctx, users, rev); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// FindByEmailAndPassword returns the first record whose email and password
// both match exactly. Nothing is written.
//
// Error handling:
//   - No match → [ErrUserNotFound].
func (r *userRepository) FindByEmailAndPassword(ctx context.Context, email, password string) (models.User, error) {
	users, _, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// FindByID returns the record with the given id, or [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	users, _, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	idx := indexByID(users, id)
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	return users[idx], nil
}

// Update shallow-merges fields into the record by their JSON names. Nested
// values such as "stats" are replaced whole; "id" and "createdAt" are
// ignored. Email uniqueness is not re-checked.
func (r *userRepository) Update(ctx context.Context, id string, fields Fields) (models.User, error) {
	return r.UpdateWith(ctx, id, func(user *models.User) error {
		merged, err := mergeFields(*user, fields)
		if err != nil {
			return err
		}
		*user = merged
		return nil
	})
}

// UpdateWith applies fn to a copy of the record and writes the full
// collection back in the same read-modify-write. An error from fn aborts
// the update without writing.
//
// Error handling:
//   - Unknown id → [ErrUserNotFound].
//   - Revision moved since the read → [ErrConflict].
func (r *userRepository) UpdateWith(ctx context.Context, id string, fn func(user *models.User) error) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, rev, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	idx := indexByID(users, id)
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	updated := users[idx]
	if err = fn(&updated); err != nil {
		return models.User{}, err
	}
	// identity is immutable
	updated.ID = users[idx].ID
	updated.CreatedAt = users[idx].CreatedAt
	normalize(&updated)

	users[idx] = updated
	if err = r.save(ctx, users, rev); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// ReplaceAll overwrites the whole collection with users. It still bumps
// the revision so concurrent writers notice the replacement.
func (r *userRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rev, err := r.revision(ctx)
	if err != nil {
		return err
	}

	replacement := make([]models.User, len(users))
	for i, u := range users {
		normalize(&u)
		replacement[i] = u
	}

	return r.save(ctx, replacement, rev)
}

// load reads the collection together with the revision it was read at.
func (r *userRepository) load(ctx context.Context) ([]models.User, int64, error) {
	rev, err := r.revision(ctx)
	if err != nil {
		return nil, 0, err
	}

	raw, ok, err := r.kv.Get(ctx, kv.UsersKey)
	if err != nil {
		r.logger.Err(err).Str("func", "userRepository.load").Msg("error reading users")
		return nil, 0, fmt.Errorf("read users: %w", err)
	}
	if !ok {
		return []models.User{}, rev, nil
	}

	var users []models.User
	if err = json.Unmarshal([]byte(raw), &users); err != nil {
		if r.strict {
			r.logger.Err(err).Str("func", "userRepository.load").Msg("persisted users are corrupt")
			return nil, 0, fmt.Errorf("%w: %w", ErrCorruptState, err)
		}
		r.logger.Warn().Err(err).Str("func", "userRepository.load").Msg("persisted users are corrupt, reading as empty")
		return []models.User{}, rev, nil
	}
	if users == nil {
		users = []models.User{}
	}

	return users, rev, nil
}

// revision reads the collection's write counter. A missing counter is 0;
// an unparseable one is logged and read as 0.
func (r *userRepository) revision(ctx context.Context) (int64, error) {
	raw, ok, err := r.kv.Get(ctx, kv.UsersRevisionKey)
	if err != nil {
		r.logger.Err(err).Str("func", "userRepository.revision").Msg("error reading users revision")
		return 0, fmt.Errorf("read users revision: %w", err)
	}
	if !ok {
		return 0, nil
	}

	rev, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "userRepository.revision").Str("value", raw).Msg("unparseable users revision, assuming 0")
		return 0, nil
	}
	return rev, nil
}

// save writes the full collection if the revision is still expected.
func (r *userRepository) save(ctx context.Context, users []models.User, expected int64) error {
	current, err := r.revision(ctx)
	if err != nil {
		return err
	}
	if current != expected {
		r.logger.Warn().Str("func", "userRepository.save").
			Int64("expected", expected).
			Int64("current", current).
			Msg("users revision moved, refusing to overwrite")
		return ErrConflict
	}

	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err = r.kv.Set(ctx, kv.UsersKey, string(payload)); err != nil {
		r.logger.Err(err).Str("func", "userRepository.save").Msg("error writing users")
		return fmt.Errorf("write users: %w", err)
	}
	if err = r.kv.Set(ctx, kv.UsersRevisionKey, strconv.FormatInt(expected+1, 10)); err != nil {
		r.logger.Err(err).Str("func", "userRepository.save").Msg("error writing users revision")
		return fmt.Errorf("write users revision: %w", err)
	}

	return nil
}

func indexByID(users []models.User, id string) int {
	return slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
}

// normalize keeps list fields non-nil and tag sets free of duplicates.
func normalize(u *models.User) {
	u.BodyProblems = dedupTags(u.BodyProblems)
	u.DietRestrictions = dedupTags(u.DietRestrictions)
	if u.Meals == nil {
		u.Meals = []models.Meal{}
	}
}

func dedupTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// mergeFields overrides the top-level JSON fields of user with fields.
func mergeFields(user models.User, fields Fields) (models.User, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, fmt.Errorf("encode user: %w", err)
	}
	record := make(map[string]json.RawMessage)
	if err = json.Unmarshal(raw, &record); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}

	for name, value := range fields {
		if name == "id" || name == "createdAt" {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %s: %w", ErrInvalidFields, name, err)
		}
		record[name] = encoded
	}

	merged, err := json.Marshal(record)
	if err != nil {
		return models.User{}, fmt.Errorf("encode user: %w", err)
	}
	var out models.User
	if err = json.Unmarshal(merged, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return models.User{}, fmt.Errorf("%w: %s: %w", ErrInvalidFields, typeErr.Field, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	return out, nil
}
