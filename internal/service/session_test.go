// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

func TestSession_Load_Empty(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.session.Load(context.Background()))
	assert.False(t, f.session.IsAuthenticated())

	_, ok := f.session.User()
	assert.False(t, ok)
}

func TestSession_SaveAndLoad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "ann@example.com", "secret")

	f.session.Set(user)
	require.NoError(t, f.session.Save(ctx))

	other := NewSession(f.storages.SessionRepository, f.storages.UserRepository)
	require.NoError(t, other.Load(ctx))
	got, ok := other.User()
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}

func TestSession_Save_UnknownUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.session.Set(models.User{ID: "ghost"})
	err := f.session.Save(ctx)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = f.storages.SessionRepository.Current(ctx)
	assert.ErrorIs(t, err, store.ErrNoSession)
}

func TestSession_Refresh_FailureKeepsCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := f.registerAndLogin(t, "ann@example.com", "secret")

	err := f.session.refresh(ctx, models.User{ID: "ghost", Name: "Ghost"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	cached, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, ann.ID, cached.ID)

	stored, err := f.storages.SessionRepository.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, stored.ID)
}

func TestSession_Refresh_UpdatesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := f.registerAndLogin(t, "ann@example.com", "secret")

	ann.Name = "Annie"
	require.NoError(t, f.session.refresh(ctx, ann))

	cached, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, "Annie", cached.Name)
}

func TestSession_Save_Cleared(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerAndLogin(t, "ann@example.com", "secret")

	f.session.Clear()
	require.NoError(t, f.session.Save(ctx))

	_, ok, err := f.storages.PreferenceRepository.Get(ctx, kv.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Load_CorruptValueIsNoSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.storages.PreferenceRepository.Set(ctx, kv.SessionKey, "{broken"))

	require.NoError(t, f.session.Load(ctx))
	assert.False(t, f.session.IsAuthenticated())
}

func TestSession_UserReturnsCopy(t *testing.T) {
	f := newFixture(t)
	f.session.Set(models.User{ID: "u-1", Name: "Ann"})

	got, _ := f.session.User()
	got.Name = "changed"

	again, _ := f.session.User()
	assert.Equal(t, "Ann", again.Name)
}
