package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/models"
)

// taskRepository stores one JSON array per user and day under
// [kv.TasksKey].
type taskRepository struct {
	kv     kv.Substrate
	logger *logger.Logger
}

// NewTaskRepository returns a [TaskRepository] keyed by [kv.TasksKey].
// Lists are never deleted.
func NewTaskRepository(sub kv.Substrate, log *logger.Logger) TaskRepository {
	return &taskRepository{kv: sub, logger: log}
}

// Get returns the stored list. ok is false when nothing usable is stored,
// including an unparseable value.
func (r *taskRepository) Get(ctx context.Context, userID, day string) ([]models.DailyTask, bool, error) {
	key := kv.TasksKey(userID, day)

	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		r.logger.Err(err).Str("func", "taskRepository.Get").Str("key", key).Msg("error reading tasks")
		return nil, false, fmt.Errorf("read tasks: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var tasks []models.DailyTask
	if err = json.Unmarshal([]byte(raw), &tasks); err != nil {
		r.logger.Warn().Err(err).Str("func", "taskRepository.Get").Str("key", key).Msg("unparseable tasks, ignoring")
		return nil, false, nil
	}
	if tasks == nil {
		tasks = []models.DailyTask{}
	}

	return tasks, true, nil
}

// Put replaces the list stored for userID and day. A nil list is stored as
// an empty array.
func (r *taskRepository) Put(ctx context.Context, userID, day string, tasks []models.DailyTask) error {
	if tasks == nil {
		tasks = []models.DailyTask{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	key := kv.TasksKey(userID, day)
	if err = r.kv.Set(ctx, key, string(payload)); err != nil {
		r.logger.Err(err).Str("func", "taskRepository.Put").Str("key", key).Msg("error writing tasks")
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}
