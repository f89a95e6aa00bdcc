package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/ar-fit/internal/logger"
)

const (
	entriesTable = "kv_entries"
	columnKey    = "entry_key"
	columnValue  = "entry_value"
	columnTime   = "updated_at"

	upsertSuffix = "ON CONFLICT (entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = excluded.updated_at"
)

// sqlSubstrate stores every key as one row of kv_entries.
type sqlSubstrate struct {
	db       *sqlx.DB
	builder  sq.StatementBuilderType
	classify func(error) error
	logger   *logger.Logger
}

func newSQLSubstrate(db *sqlx.DB, placeholders sq.PlaceholderFormat, classify func(error) error, log *logger.Logger) *sqlSubstrate {
	return &sqlSubstrate{
		db:       db,
		builder:  sq.StatementBuilder.PlaceholderFormat(placeholders),
		classify: classify,
		logger:   log,
	}
}

func (s *sqlSubstrate) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.builder.
		Select(columnValue).
		From(entriesTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build select: %w", err)
	}

	var value string
	if err = s.db.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		s.logger.Err(err).Str("func", "sqlSubstrate.Get").Str("key", key).Msg("error reading entry")
		return "", false, s.classify(err)
	}

	return value, true, nil
}

func (s *sqlSubstrate) Set(ctx context.Context, key, value string) error {
	query, args, err := s.builder.
		Insert(entriesTable).
		Columns(columnKey, columnValue, columnTime).
		Values(key, value, time.Now().UTC()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqlSubstrate.Set").Str("key", key).Msg("error writing entry")
		return s.classify(err)
	}

	return nil
}

func (s *sqlSubstrate) Remove(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(entriesTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqlSubstrate.Remove").Str("key", key).Msg("error deleting entry")
		return s.classify(err)
	}

	return nil
}

func (s *sqlSubstrate) Close() error {
	return s.db.Close()
}
