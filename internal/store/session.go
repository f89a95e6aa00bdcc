package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/models"
)

// sessionRepository keeps a JSON copy of the session user under
// [kv.SessionKey].
type sessionRepository struct {
	kv     kv.Substrate
	logger *logger.Logger
}

// NewSessionRepository returns a [SessionRepository] storing the session
// user under [kv.SessionKey].
func NewSessionRepository(sub kv.Substrate, log *logger.Logger) SessionRepository {
	return &sessionRepository{kv: sub, logger: log}
}

// Current returns the stored session user. An absent or unparseable value
// is reported as [ErrNoSession].
func (r *sessionRepository) Current(ctx context.Context) (models.User, error) {
	raw, ok, err := r.kv.Get(ctx, kv.SessionKey)
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Current").Msg("error reading session")
		return models.User{}, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return models.User{}, ErrNoSession
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		r.logger.Warn().Err(err).Str("func", "sessionRepository.Current").Msg("unparseable session, treating as logged out")
		return models.User{}, ErrNoSession
	}

	return user, nil
}

// SetCurrent overwrites the stored session user. Ownership is checked by
// the caller.
func (r *sessionRepository) SetCurrent(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = r.kv.Set(ctx, kv.SessionKey, string(payload)); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.SetCurrent").Msg("error writing session")
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearCurrent removes the session key. Clearing an absent session is not
// an error.
func (r *sessionRepository) ClearCurrent(ctx context.Context) error {
	if err := r.kv.Remove(ctx, kv.SessionKey); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.ClearCurrent").Msg("error clearing session")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
