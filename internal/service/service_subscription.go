// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/validators"
	"github.com/MKhiriev/ar-fit/models"
)

// subscriptionService implements [SubscriptionService] on top of the user
// collection. Subscriptions live inside the user record, so activation is
// one user update.
type subscriptionService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	now            func() time.Time
	plans          []models.Plan

	logger *logger.Logger
}

// NewSubscriptionService returns a service offering [models.DefaultPlans].
// A nil now falls back to [time.Now].
func NewSubscriptionService(userRepository store.UserRepository, now func() time.Time, logger *logger.Logger) SubscriptionService {
	if now == nil {
		now = time.Now
	}
	return &subscriptionService{
		userRepository: userRepository,
		validator:      validators.NewFitnessValidator(),
		now:            now,
		plans:          models.DefaultPlans,
		logger:         logger,
	}
}

// IsActive reports whether user currently has access to kind, either
// through that kind's own subscription or through a combo one.
func (s *subscriptionService) IsActive(user models.User, kind models.SubscriptionType) bool {
	now := s.now()
	subs := user.Subscriptions

	for _, slot := range []*models.Subscription{subs.Workout, subs.Nutrition} {
		if slot != nil && slot.Type == models.SubscriptionCombo && slot.ActiveAt(now) {
			return true
		}
	}

	switch kind {
	case models.SubscriptionWorkout:
		return subs.Workout.ActiveAt(now)
	case models.SubscriptionNutrition:
		return subs.Nutrition.ActiveAt(now)
	}
	return false
}

// Activate starts a subscription for the session user. Combo writes the
// same subscription into both slots within one update, and the session
// copy is refreshed afterwards.
//
// The window starts now and ends req.Duration calendar months later.
//
// Error handling:
//   - Unknown type, duration other than 1/6/12 or negative price →
//     [ErrInvalidDataProvided].
//   - No session → [store.ErrNoSession].
//   - req.UserID is not the session user → [ErrNotSessionUser]; nothing
//     is written.
//   - Store failures such as [store.ErrConflict] → wrapped.
func (s *subscriptionService) Activate(ctx context.Context, session *Session, req models.ActivationRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.logger.Debug().Err(err).Str("user_id", req.UserID).Msg("invalid activation request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := session.actingUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	if current.ID != req.UserID {
		s.logger.Warn().Str("user_id", req.UserID).Str("session_user_id", current.ID).Msg("activation for a user other than the session user")
		return models.User{}, ErrNotSessionUser
	}

	start := s.now()
	sub := models.Subscription{
		Type:      req.Type,
		Duration:  req.Duration,
		StartDate: start,
		EndDate:   start.AddDate(0, req.Duration, 0),
		Price:     req.Price,
	}

	updated, err := s.userRepository.UpdateWith(ctx, req.UserID, func(u *models.User) error {
		if req.Type == models.SubscriptionWorkout || req.Type == models.SubscriptionCombo {
			w := sub
			u.Subscriptions.Workout = &w
		}
		if req.Type == models.SubscriptionNutrition || req.Type == models.SubscriptionCombo {
			n := sub
			u.Subscriptions.Nutrition = &n
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "subscriptionService.Activate").Str("user_id", req.UserID).Msg("error activating subscription")
		return models.User{}, fmt.Errorf("activate subscription: %w", err)
	}

	if err = session.refresh(ctx, updated); err != nil {
		return models.User{}, err
	}

	s.logger.Info().
		Str("user_id", updated.ID).
		Str("type", string(req.Type)).
		Int("months", req.Duration).
		Time("end_date", sub.EndDate).
		Msg("subscription activated")
	return updated, nil
}

// Plans returns a copy of the offered price table.
func (s *subscriptionService) Plans() []models.Plan {
	return slices.Clone(s.plans)
}
