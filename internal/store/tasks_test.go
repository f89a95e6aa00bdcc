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

func TestTaskRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	sub := kv.NewMemory()
	repo := store.NewTaskRepository(sub, logger.Nop())

	_, ok, err := repo.Get(ctx, "u1", "2026-03-02")
	require.NoError(t, err)
	assert.False(t, ok)

	tasks := []models.DailyTask{
		{ID: "t1", Title: "Push-ups", Category: models.CategoryStrength},
		{ID: "t2", Title: "Running", Category: models.CategoryCardio, Completed: true},
	}
	require.NoError(t, repo.Put(ctx, "u1", "2026-03-02", tasks))

	got, ok, err := repo.Get(ctx, "u1", "2026-03-02")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tasks, got)

	// stored under the documented key
	_, ok, err = sub.Get(ctx, "ar-fit-tasks-u1-2026-03-02")
	require.NoError(t, err)
	assert.True(t, ok)

	// other users and days are separate
	_, ok, err = repo.Get(ctx, "u2", "2026-03-02")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = repo.Get(ctx, "u1", "2026-03-03")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTaskRepository_UnparseableIsAbsent(t *testing.T) {
	ctx := context.Background()
	sub := kv.NewMemory()
	repo := store.NewTaskRepository(sub, logger.Nop())

	require.NoError(t, sub.Set(ctx, kv.TasksKey("u1", "2026-03-02"), "[{"))
	_, ok, err := repo.Get(ctx, "u1", "2026-03-02")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferenceRepository_IncrementVisit(t *testing.T) {
	ctx := context.Background()
	sub := kv.NewMemory()
	repo := store.NewPreferenceRepository(sub, logger.Nop())

	for want := 1; want <= 3; want++ {
		got, err := repo.IncrementVisit(ctx, "dashboard")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	raw, ok, err := sub.Get(ctx, "dashboard-visit-count")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", raw)

	require.NoError(t, sub.Set(ctx, "plans-visit-count", "garbage"))
	got, err := repo.IncrementVisit(ctx, "plans")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestPreferenceRepository_GetSet(t *testing.T) {
	ctx := context.Background()
	repo := store.NewPreferenceRepository(kv.NewMemory(), logger.Nop())

	_, ok, err := repo.Get(ctx, kv.ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, kv.ThemeKey, "dark"))
	v, ok, err := repo.Get(ctx, kv.ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}
