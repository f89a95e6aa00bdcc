package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/validators"
	"github.com/MKhiriev/ar-fit/models"
)

func ptr[T any](v T) *T { return &v }

func TestProfileService_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.registerAndLogin(t, "ann@example.com", "secret")

	updated, err := f.services.ProfileService.UpdateProfile(ctx, f.session, models.ProfilePatch{
		Name:   ptr("Ann Lee"),
		Age:    ptr(31),
		Weight: ptr(62.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ann Lee", updated.Name)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, 62.5, updated.Weight)
	assert.Zero(t, updated.Height)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)

	sessionUser, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, "Ann Lee", sessionUser.Name)
}

func TestProfileService_UpdateProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		patch   models.ProfilePatch
		wantErr error
	}{
		{name: "empty patch", patch: models.ProfilePatch{}, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "blank name", patch: models.ProfilePatch{Name: ptr("  ")}, wantErr: validators.ErrEmptyName},
		{name: "bad gender", patch: models.ProfilePatch{Gender: ptr("x")}, wantErr: validators.ErrInvalidGender},
		{name: "age out of range", patch: models.ProfilePatch{Age: ptr(200)}, wantErr: validators.ErrInvalidAge},
		{name: "zero height", patch: models.ProfilePatch{Height: ptr(0.0)}, wantErr: validators.ErrInvalidHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.registerAndLogin(t, "ann@example.com", "secret")

			_, err := f.services.ProfileService.UpdateProfile(context.Background(), f.session, tt.patch)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_SubmitSurvey_ReplacesAndDedups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerAndLogin(t, "ann@example.com", "secret")
	svc := f.services.ProfileService

	_, err := svc.SubmitSurvey(ctx, f.session, []string{"back", "knees"}, []string{"gluten"})
	require.NoError(t, err)

	updated, err := svc.SubmitSurvey(ctx, f.session, []string{"neck", "neck"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"neck"}, updated.BodyProblems)
	assert.Empty(t, updated.DietRestrictions)
}

func TestProfileService_AddMeal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerAndLogin(t, "ann@example.com", "secret")
	svc := f.services.ProfileService

	_, err := svc.AddMeal(ctx, f.session, "Oats", 350)
	require.NoError(t, err)
	updated, err := svc.AddMeal(ctx, f.session, "Salad", 200)
	require.NoError(t, err)

	require.Len(t, updated.Meals, 2)
	assert.Equal(t, "Oats", updated.Meals[0].Name)
	assert.Equal(t, "Salad", updated.Meals[1].Name)
	assert.NotEmpty(t, updated.Meals[0].ID)
	assert.NotEqual(t, updated.Meals[0].ID, updated.Meals[1].ID)
	assert.Equal(t, fixedNow, updated.Meals[1].Date)
	assert.Equal(t, 550, svc.TodayMealCalories(updated))
}

func TestProfileService_AddMeal_Invalid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerAndLogin(t, "ann@example.com", "secret")

	_, err := f.services.ProfileService.AddMeal(ctx, f.session, "Oats", 0)
	assert.ErrorIs(t, err, validators.ErrInvalidCalories)

	_, err = f.services.ProfileService.AddMeal(ctx, f.session, "", 100)
	assert.ErrorIs(t, err, validators.ErrEmptyMealName)
}

func TestProfileService_TodayMealCalories_OnlyToday(t *testing.T) {
	f := newFixture(t)

	user := models.User{Meals: []models.Meal{
		{Calories: 500, Date: fixedNow.Add(-48 * time.Hour)},
		{Calories: 300, Date: fixedNow},
		{Calories: 120, Date: fixedNow.Add(time.Minute)},
	}}

	assert.Equal(t, 420, f.services.ProfileService.TodayMealCalories(user))
}

func TestProfileService_RecordSteps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerAndLogin(t, "ann@example.com", "secret")

	updated, err := f.services.ProfileService.RecordSteps(ctx, f.session, 8400)
	require.NoError(t, err)
	assert.Equal(t, 8400, updated.Stats.Steps[models.WeekdayIndex(fixedNow.Local())])

	_, err = f.services.ProfileService.RecordSteps(ctx, f.session, -1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_RequiresSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.ProfileService.SubmitSurvey(context.Background(), f.session, nil, nil)
	assert.ErrorIs(t, err, store.ErrNoSession)
}
