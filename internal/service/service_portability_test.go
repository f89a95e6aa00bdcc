package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/models"
)

type memorySink struct {
	name string
	data []byte
	err  error
}

func (s *memorySink) Put(_ context.Context, name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.name = name
	s.data = data
	return "memory://" + name, nil
}

func TestPortabilityService_RoundTrip(t *testing.T) {
	src := newFixture(t)
	ctx := context.Background()
	ann := src.registerAndLogin(t, "ann@example.com", "secret")
	src.register(t, "bob@example.com", "pw")

	_, err := src.services.ProfileService.AddMeal(ctx, src.session, "Oats", 350)
	require.NoError(t, err)
	_, err = src.services.SubscriptionService.Activate(ctx, src.session, models.ActivationRequest{
		UserID: ann.ID, Type: models.SubscriptionCombo, Duration: 6, Price: 3000,
	})
	require.NoError(t, err)

	data, err := src.services.PortabilityService.ExportAll(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"), "export must be indented with two spaces")

	want, err := src.storages.UserRepository.List(ctx)
	require.NoError(t, err)

	dst := newFixture(t)
	require.NoError(t, dst.services.PortabilityService.ImportAll(ctx, data))

	got, err := dst.storages.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Email, got[i].Email)
		assert.Equal(t, want[i].Meals, got[i].Meals)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
	require.NotNil(t, got[0].Subscriptions.Workout)
	assert.True(t, dst.services.SubscriptionService.IsActive(got[0], models.SubscriptionNutrition))

	// imported users can log in
	_, err = dst.services.AuthService.Login(ctx, dst.session, "bob@example.com", "pw")
	assert.NoError(t, err)
}

func TestPortabilityService_ExportAll_Empty(t *testing.T) {
	f := newFixture(t)

	data, err := f.services.PortabilityService.ExportAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestPortabilityService_ImportAll_ReplacesEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "old@example.com", "pw")

	require.NoError(t, f.services.PortabilityService.ImportAll(ctx, []byte(`[{"id":"u-1","email":"new@example.com","password":"x"}]`)))

	users, err := f.storages.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "new@example.com", users[0].Email)
	assert.NotNil(t, users[0].Meals)
}

func TestPortabilityService_ImportAll_ParseError(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "object", data: `{"users":[]}`},
		{name: "string", data: `"hello"`},
		{name: "null", data: `null`},
		{name: "garbage", data: `not json`},
		{name: "element is not a record", data: `[1, 2]`},
		{name: "truncated", data: `[{"id":"u-1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.register(t, "keep@example.com", "pw")

			err := f.services.PortabilityService.ImportAll(ctx, []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			users, err := f.storages.UserRepository.List(ctx)
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, "keep@example.com", users[0].Email)
		})
	}
}

func TestPortabilityService_ImportAll_EmptyArray(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "gone@example.com", "pw")

	require.NoError(t, f.services.PortabilityService.ImportAll(ctx, []byte(`[]`)))

	users, err := f.storages.UserRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestPortabilityService_ExportTo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "ann@example.com", "secret")

	sink := &memorySink{}
	location, err := f.services.PortabilityService.ExportTo(ctx, sink)
	require.NoError(t, err)

	assert.Equal(t, "memory://"+ExportFileName, location)
	assert.Equal(t, ExportFileName, sink.name)

	var users []models.User
	require.NoError(t, json.Unmarshal(sink.data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "ann@example.com", users[0].Email)
}

func TestPortabilityService_ExportTo_SinkError(t *testing.T) {
	f := newFixture(t)
	sinkErr := errors.New("disk full")

	_, err := f.services.PortabilityService.ExportTo(context.Background(), &memorySink{err: sinkErr})
	assert.ErrorIs(t, err, sinkErr)
}
