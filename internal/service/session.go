// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

// Session is the explicit holder of the logged-in user. It caches a copy of
// the persisted session record; Load refreshes the cache from storage and
// Save writes it back. One Session is shared by whatever drives the
// services (TUI, HTTP handler, CLI command).
type Session struct {
	sessions store.SessionRepository
	users    store.UserRepository

	mu   sync.RWMutex
	user *models.User
}

// NewSession returns an unloaded, unauthenticated session.
func NewSession(sessions store.SessionRepository, users store.UserRepository) *Session {
	return &Session{sessions: sessions, users: users}
}

// Load replaces the cached user with the stored one. A missing session is
// not an error; the session just becomes unauthenticated.
func (s *Session) Load(ctx context.Context) error {
	user, err := s.sessions.Current(ctx)
	if err != nil && !errors.Is(err, store.ErrNoSession) {
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if errors.Is(err, store.ErrNoSession) {
		s.user = nil
		return nil
	}
	s.user = &user
	return nil
}

// Save persists the cached user, or clears the stored session when there
// is none. The cached user must exist in the user store.
func (s *Session) Save(ctx context.Context) error {
	user, ok := s.User()
	if !ok {
		return s.sessions.ClearCurrent(ctx)
	}
	return s.persist(ctx, user)
}

// persist writes user as the stored session after checking it still
// exists in the user store. The cache is not touched.
func (s *Session) persist(ctx context.Context, user models.User) error {
	if _, err := s.users.FindByID(ctx, user.ID); err != nil {
		return fmt.Errorf("save session for %q: %w", user.ID, err)
	}
	return s.sessions.SetCurrent(ctx, user)
}

// User returns a copy of the cached user.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is cached.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil
}

// Set caches user without persisting it.
func (s *Session) Set(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
}

// Clear drops the cached user without persisting.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
}

// refresh persists user and then caches it. Used after every mutation of
// the session user's record so the session copy never lags behind the
// store. On failure the cache keeps its previous value.
func (s *Session) refresh(ctx context.Context, user models.User) error {
	if err := s.persist(ctx, user); err != nil {
		return err
	}
	s.Set(user)
	return nil
}

// actingUser reloads the session and returns its user.
func (s *Session) actingUser(ctx context.Context) (models.User, error) {
	if err := s.Load(ctx); err != nil {
		return models.User{}, err
	}
	user, ok := s.User()
	if !ok {
		return models.User{}, store.ErrNoSession
	}
	return user, nil
}
