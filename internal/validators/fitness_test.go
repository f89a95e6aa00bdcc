// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validCalorieRequest() models.CalorieRequest {
	return models.CalorieRequest{
		Gender:   models.GenderFemale,
		Age:      30,
		Weight:   60,
		Height:   165,
		Activity: models.ActivityModerate,
		Goal:     models.GoalMaintain,
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("pointer values", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, &models.User{Email: "a@b.c", Password: "pw"}))
		assert.NoError(t, v.Validate(ctx, &models.Meal{Name: "Soup", Calories: 120}))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.Meal{Name: "Soup", Calories: 1}, "colour")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
		want error
	}{
		{name: "minimal", user: models.User{Email: "alice@example.com", Password: "pw123"}},
		{name: "full profile", user: models.User{Email: "a@b.c", Password: "x", Gender: "male", Age: 40, Weight: 80, Height: 180}},
		{name: "empty email", user: models.User{Password: "pw"}, want: ErrInvalidEmail},
		{name: "email without at", user: models.User{Email: "alice", Password: "pw"}, want: ErrInvalidEmail},
		{name: "empty password", user: models.User{Email: "a@b.c"}, want: ErrEmptyPassword},
		{name: "bad gender", user: models.User{Email: "a@b.c", Password: "x", Gender: "other"}, want: ErrInvalidGender},
		{name: "bad age", user: models.User{Email: "a@b.c", Password: "x", Age: 200}, want: ErrInvalidAge},
		{name: "negative weight", user: models.User{Email: "a@b.c", Password: "x", Weight: -1}, want: ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// ProfilePatch
// ---------------------------------------------------------------------------

func TestValidate_ProfilePatch(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ProfilePatch{Name: ptr("Ann"), Age: ptr(31)}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Name: ptr("  ")}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Gender: ptr("x")}), ErrInvalidGender)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Age: ptr(0)}), ErrInvalidAge)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Weight: ptr(0.0)}), ErrInvalidWeight)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Height: ptr(-5.0)}), ErrInvalidHeight)
}

// ---------------------------------------------------------------------------
// Meal
// ---------------------------------------------------------------------------

func TestValidate_Meal(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Meal{Name: "Oats", Calories: 300}))
	assert.ErrorIs(t, v.Validate(ctx, models.Meal{Calories: 300}), ErrEmptyMealName)
	assert.ErrorIs(t, v.Validate(ctx, models.Meal{Name: "Water"}), ErrInvalidCalories)
	assert.ErrorIs(t, v.Validate(ctx, models.Meal{Name: "Air", Calories: -10}), ErrInvalidCalories)
}

// ---------------------------------------------------------------------------
// ActivationRequest
// ---------------------------------------------------------------------------

func TestValidate_ActivationRequest(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	valid := models.ActivationRequest{UserID: "u1", Type: models.SubscriptionCombo, Duration: 6, Price: 3000}
	require.NoError(t, v.Validate(ctx, valid))

	for _, months := range models.AllowedDurations {
		req := valid
		req.Duration = months
		assert.NoError(t, v.Validate(ctx, req))
	}

	tests := []struct {
		name   string
		mutate func(r *models.ActivationRequest)
		want   error
	}{
		{name: "no user", mutate: func(r *models.ActivationRequest) { r.UserID = "" }, want: ErrInvalidUserID},
		{name: "bad type", mutate: func(r *models.ActivationRequest) { r.Type = "yoga" }, want: ErrInvalidSubscriptionType},
		{name: "bad duration", mutate: func(r *models.ActivationRequest) { r.Duration = 3 }, want: ErrInvalidDuration},
		{name: "negative price", mutate: func(r *models.ActivationRequest) { r.Price = -1 }, want: ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.ErrorIs(t, v.Validate(ctx, req), tt.want)
		})
	}

	t.Run("free plan allowed", func(t *testing.T) {
		req := valid
		req.Price = 0
		assert.NoError(t, v.Validate(ctx, req))
	})
}

// ---------------------------------------------------------------------------
// CalorieRequest
// ---------------------------------------------------------------------------

func TestValidate_CalorieRequest(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validCalorieRequest()))

	noGoal := validCalorieRequest()
	noGoal.Goal = ""
	assert.NoError(t, v.Validate(ctx, noGoal))

	badActivity := validCalorieRequest()
	badActivity.Activity = "couch"
	assert.ErrorIs(t, v.Validate(ctx, badActivity), ErrInvalidActivityLevel)

	badGoal := validCalorieRequest()
	badGoal.Goal = "bulk"
	assert.ErrorIs(t, v.Validate(ctx, badGoal), ErrInvalidWeightGoal)

	noGender := validCalorieRequest()
	noGender.Gender = ""
	assert.ErrorIs(t, v.Validate(ctx, noGender), ErrInvalidGender)

	noHeight := validCalorieRequest()
	noHeight.Height = 0
	assert.ErrorIs(t, v.Validate(ctx, noHeight), ErrInvalidHeight)
}
