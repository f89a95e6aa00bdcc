package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

// taskService implements [TaskService]. Lists are generated lazily on the
// first read of a day and never regenerated afterwards.
type taskService struct {
	taskRepository       store.TaskRepository
	userRepository       store.UserRepository
	preferenceRepository store.PreferenceRepository

	ids         store.IDGenerator
	now         func() time.Time
	defaultLang string

	// rand.Rand is not safe for concurrent use
	rndMu sync.Mutex
	rnd   *rand.Rand

	logger *logger.Logger
}

// TaskDeps groups the collaborators of the task service.
type TaskDeps struct {
	Tasks       store.TaskRepository
	Users       store.UserRepository
	Preferences store.PreferenceRepository
	IDs         store.IDGenerator
	Now         func() time.Time
	Rand        *rand.Rand

	// DefaultLanguage is used when no language preference is stored.
	DefaultLanguage string
}

// NewTaskService returns a task service over deps. Now defaults to
// [time.Now] and Rand to a randomly seeded PCG source.
func NewTaskService(deps TaskDeps, logger *logger.Logger) TaskService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	rnd := deps.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &taskService{
		taskRepository:       deps.Tasks,
		userRepository:       deps.Users,
		preferenceRepository: deps.Preferences,
		ids:                  deps.IDs,
		now:                  now,
		defaultLang:          deps.DefaultLanguage,
		rnd:                  rnd,
		logger:               logger,
	}
}

// TodayTasks returns the stored list for the current local day, generating
// and storing a fresh one when none exists yet.
func (s *taskService) TodayTasks(ctx context.Context, userID string) ([]models.DailyTask, error) {
	return s.tasksForDay(ctx, userID, kv.Day(s.now()))
}

// tasksForDay returns the list stored for day, generating one if needed.
func (s *taskService) tasksForDay(ctx context.Context, userID, day string) ([]models.DailyTask, error) {
	tasks, ok, err := s.taskRepository.Get(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if ok {
		return tasks, nil
	}

	lang := s.language(ctx)

	s.rndMu.Lock()
	tasks = GenerateTasks(lang, s.rnd, s.ids)
	s.rndMu.Unlock()

	if err = s.taskRepository.Put(ctx, userID, day, tasks); err != nil {
		s.logger.Err(err).Str("func", "taskService.tasksForDay").Str("user_id", userID).Msg("error storing generated tasks")
		return nil, fmt.Errorf("store generated tasks: %w", err)
	}

	s.logger.Debug().Str("user_id", userID).Str("day", day).Str("lang", lang).Msg("generated daily tasks")
	return tasks, nil
}

// ReplaceTasks overwrites today's list of userID. A nil list clears it.
func (s *taskService) ReplaceTasks(ctx context.Context, userID string, tasks []models.DailyTask) error {
	if tasks == nil {
		tasks = []models.DailyTask{}
	}
	return s.taskRepository.Put(ctx, userID, kv.Day(s.now()), tasks)
}

// ToggleTask flips one of today's tasks of the session user and folds the
// new progress into the user's stats: the weekday calorie slot, the
// workouts counter (never below zero) and the streak.
//
// Error handling:
//   - No session → [store.ErrNoSession].
//   - taskID not in today's list → [ErrTaskNotFound].
//   - Store failures → wrapped.
func (s *taskService) ToggleTask(ctx context.Context, session *Session, taskID string) (models.DayProgress, error) {
	user, err := session.actingUser(ctx)
	if err != nil {
		return models.DayProgress{}, err
	}

	// one clock read for the whole toggle
	now := s.now()
	day := kv.Day(now)

	tasks, err := s.tasksForDay(ctx, user.ID, day)
	if err != nil {
		return models.DayProgress{}, err
	}

	idx := slices.IndexFunc(tasks, func(t models.DailyTask) bool { return t.ID == taskID })
	if idx < 0 {
		return models.DayProgress{}, ErrTaskNotFound
	}
	tasks[idx].Completed = !tasks[idx].Completed
	completed := tasks[idx].Completed

	if err = s.taskRepository.Put(ctx, user.ID, day, tasks); err != nil {
		return models.DayProgress{}, err
	}

	progress := s.Progress(tasks)
	progress.Day = day

	updated, err := s.userRepository.UpdateWith(ctx, user.ID, func(u *models.User) error {
		u.Stats.Calories[models.WeekdayIndex(now.Local())] = progress.CaloriesBurned

		if completed {
			u.Stats.WorkoutsCompleted++
		} else if u.Stats.WorkoutsCompleted > 0 {
			u.Stats.WorkoutsCompleted--
		}

		if progress.Total > 0 && progress.Completed == progress.Total && u.Stats.LastCompletedDay != day {
			if u.Stats.LastCompletedDay == kv.Day(now.AddDate(0, 0, -1)) {
				u.Stats.Streak++
			} else {
				u.Stats.Streak = 1
			}
			u.Stats.LastCompletedDay = day
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "taskService.ToggleTask").Str("user_id", user.ID).Msg("error updating stats")
		return models.DayProgress{}, fmt.Errorf("update stats: %w", err)
	}

	if err = session.refresh(ctx, updated); err != nil {
		return models.DayProgress{}, err
	}

	return progress, nil
}

// Progress derives completion and burned calories of a task list.
func (s *taskService) Progress(tasks []models.DailyTask) models.DayProgress {
	progress := models.DayProgress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			progress.Completed++
			progress.CaloriesBurned += t.Category.CaloriesBurned()
		}
	}
	if progress.Total > 0 {
		progress.Percentage = float64(progress.Completed) * 100 / float64(progress.Total)
	}
	return progress
}

// language is the stored language preference or the default.
func (s *taskService) language(ctx context.Context) string {
	if s.preferenceRepository == nil {
		return s.defaultLang
	}
	lang, ok, err := s.preferenceRepository.Get(ctx, kv.LanguageKey)
	if err != nil || !ok || lang == "" {
		return s.defaultLang
	}
	return lang
}
