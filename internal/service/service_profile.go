package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/validators"
	"github.com/MKhiriev/ar-fit/models"
)

// profileService edits the session user's own record. Every operation
// resolves the acting user from the session first and refreshes the
// session afterwards.
type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            store.IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

// NewProfileService returns the service editing the session user's
// profile, survey, meals and steps. Meal ids come from ids.
func NewProfileService(userRepository store.UserRepository, ids store.IDGenerator, now func() time.Time, logger *logger.Logger) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{
		userRepository: userRepository,
		validator:      validators.NewFitnessValidator(),
		ids:            ids,
		now:            now,
		logger:         logger,
	}
}

// UpdateProfile applies the non-nil fields of patch to the session user.
func (p *profileService) UpdateProfile(ctx context.Context, session *Session, patch models.ProfilePatch) (models.User, error) {
	if err := p.validator.Validate(ctx, patch); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return p.mutate(ctx, session, "UpdateProfile", func(u *models.User) error {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Gender != nil {
			u.Gender = *patch.Gender
		}
		if patch.Age != nil {
			u.Age = *patch.Age
		}
		if patch.Weight != nil {
			u.Weight = *patch.Weight
		}
		if patch.Height != nil {
			u.Height = *patch.Height
		}
		return nil
	})
}

// SubmitSurvey replaces both survey tag sets wholesale.
func (p *profileService) SubmitSurvey(ctx context.Context, session *Session, bodyProblems, dietRestrictions []string) (models.User, error) {
	return p.mutate(ctx, session, "SubmitSurvey", func(u *models.User) error {
		u.BodyProblems = append([]string{}, bodyProblems...)
		u.DietRestrictions = append([]string{}, dietRestrictions...)
		return nil
	})
}

// AddMeal appends a meal logged now. Calories must be positive and the
// name non-empty, otherwise [ErrInvalidDataProvided].
func (p *profileService) AddMeal(ctx context.Context, session *Session, name string, calories int) (models.User, error) {
	meal := models.Meal{
		Name:     name,
		Calories: calories,
	}
	if err := p.validator.Validate(ctx, meal); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	meal.ID = p.ids.Generate()
	meal.Date = p.now()

	return p.mutate(ctx, session, "AddMeal", func(u *models.User) error {
		u.Meals = append(u.Meals, meal)
		return nil
	})
}

// RecordSteps stores today's step count in the weekday slot of the
// user's stats, replacing any earlier value for the day.
func (p *profileService) RecordSteps(ctx context.Context, session *Session, steps int) (models.User, error) {
	if steps < 0 {
		return models.User{}, fmt.Errorf("%w: steps cannot be negative", ErrInvalidDataProvided)
	}

	day := models.WeekdayIndex(p.now().Local())
	return p.mutate(ctx, session, "RecordSteps", func(u *models.User) error {
		u.Stats.Steps[day] = steps
		return nil
	})
}

// TodayMealCalories sums the calories of the meals logged on the current
// local day.
func (p *profileService) TodayMealCalories(user models.User) int {
	today := kv.Day(p.now())

	total := 0
	for _, m := range user.Meals {
		if kv.Day(m.Date) == today {
			total += m.Calories
		}
	}
	return total
}

// mutate runs fn against the session user's record and refreshes the
// session with the result.
func (p *profileService) mutate(ctx context.Context, session *Session, op string, fn func(u *models.User) error) (models.User, error) {
	user, err := session.actingUser(ctx)
	if err != nil {
		return models.User{}, err
	}

	updated, err := p.userRepository.UpdateWith(ctx, user.ID, fn)
	if err != nil {
		p.logger.Err(err).Str("func", "profileService."+op).Str("user_id", user.ID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = session.refresh(ctx, updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}
