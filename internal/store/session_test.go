package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	sub := kv.NewMemory()
	repo := store.NewSessionRepository(sub, logger.Nop())

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, store.ErrNoSession)

	user := models.User{ID: "u1", Email: "alice@example.com", LoggedIn: true}
	require.NoError(t, repo.SetCurrent(ctx, user))

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", current.ID)
	assert.True(t, current.LoggedIn)

	require.NoError(t, repo.ClearCurrent(ctx))
	_, ok, err := sub.Get(ctx, kv.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Current(ctx)
	assert.ErrorIs(t, err, store.ErrNoSession)
}

func TestSessionRepository_Unparseable(t *testing.T) {
	ctx := context.Background()
	sub := kv.NewMemory()
	repo := store.NewSessionRepository(sub, logger.Nop())

	require.NoError(t, sub.Set(ctx, kv.SessionKey, "not json"))
	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, store.ErrNoSession)

	require.NoError(t, sub.Set(ctx, kv.SessionKey, "{}"))
	_, err = repo.Current(ctx)
	assert.ErrorIs(t, err, store.ErrNoSession)
}
