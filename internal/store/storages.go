package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/utils"
)

// Storages groups all repositories sharing one substrate.
type Storages struct {
	UserRepository       UserRepository
	SessionRepository    SessionRepository
	TaskRepository       TaskRepository
	PreferenceRepository PreferenceRepository

	substrate kv.Substrate
}

// NewStorages opens the substrate selected by cfg and wires the
// repositories over it.
func NewStorages(ctx context.Context, cfg config.Storage, strict bool, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	sub, err := kv.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error opening %s storage: %w", cfg.Driver, err)
	}

	return NewStoragesOver(sub, time.Now, strict, log), nil
}

// NewStoragesOver wires the repositories over an already opened substrate.
func NewStoragesOver(sub kv.Substrate, now func() time.Time, strict bool, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(sub, utils.NewUserIDGenerator(), now, strict, log),
		SessionRepository:    NewSessionRepository(sub, log),
		TaskRepository:       NewTaskRepository(sub, log),
		PreferenceRepository: NewPreferenceRepository(sub, log),
		substrate:            sub,
	}
}

// Close releases the substrate.
func (s *Storages) Close() error {
	return s.substrate.Close()
}
