package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
)

// preferenceRepository stores plain string values directly under their
// keys. mu serializes counter increments of this process.
type preferenceRepository struct {
	kv     kv.Substrate
	logger *logger.Logger

	mu sync.Mutex
}

// NewPreferenceRepository returns a [PreferenceRepository] over sub.
func NewPreferenceRepository(sub kv.Substrate, log *logger.Logger) PreferenceRepository {
	return &preferenceRepository{kv: sub, logger: log}
}

// Get returns the raw value under key; ok is false when it is absent.
func (r *preferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Get").Str("key", key).Msg("error reading preference")
		return "", false, fmt.Errorf("read preference: %w", err)
	}
	return v, ok, nil
}

// Set stores value under key as is.
func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	if err := r.kv.Set(ctx, key, value); err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Set").Str("key", key).Msg("error writing preference")
		return fmt.Errorf("write preference: %w", err)
	}
	return nil
}

// IncrementVisit bumps the feature's visit counter and returns the new
// value. An unparseable counter restarts from zero.
func (r *preferenceRepository) IncrementVisit(ctx context.Context, feature string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := kv.VisitCountKey(feature)
	raw, ok, err := r.Get(ctx, key)
	if err != nil {
		return 0, err
	}

	count := 0
	if ok {
		if count, err = strconv.Atoi(raw); err != nil {
			count = 0
		}
	}
	count++

	if err = r.Set(ctx, key, strconv.Itoa(count)); err != nil {
		return 0, err
	}
	return count, nil
}
