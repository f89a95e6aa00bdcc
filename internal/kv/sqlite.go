package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/migrations"
)

// NewSQLite opens (creating if needed) the SQLite database file dsn, applies
// migrations and returns a Substrate over the kv_entries table.
func NewSQLite(ctx context.Context, dsn string, log *logger.Logger) (Substrate, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error creating database file")
		return nil, err
	}

	conn, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer at a time
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, classifySQLite(err)
	}

	if err = migrations.Migrate(conn.DB, migrations.DialectSQLite); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error migrating database")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewSQLite").Str("dsn", dsn).Msg("connected to database successfully")

	return newSQLSubstrate(conn, sq.Question, classifySQLite, log), nil
}

// classifySQLite maps go-sqlite3 errors onto the package sentinels.
func classifySQLite(err error) error {
	if err == nil {
		return nil
	}

	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return err
	}

	switch liteErr.Code {
	case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case sqlite3.ErrError:
		if strings.Contains(liteErr.Error(), "no such table") {
			return fmt.Errorf("%w: %w", ErrNotMigrated, err)
		}
	}

	return err
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if strings.HasPrefix(dbFile, "file:") || dbFile == ":memory:" {
		return nil
	}
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
