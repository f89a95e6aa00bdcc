package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/migrations"
)

// NewPostgres connects to PostgreSQL through the pgx stdlib driver, applies
// migrations and returns a Substrate over the kv_entries table.
func NewPostgres(ctx context.Context, dsn string, log *logger.Logger) (Substrate, error) {
	conn, err := sqlx.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, classifyPostgres(err)
	}

	if err = migrations.Migrate(conn.DB, migrations.DialectPostgres); err != nil {
		log.Err(err).Str("func", "NewPostgres").Msg("error migrating database")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewPostgres").Msg("connected to database successfully")

	return newSQLSubstrate(conn, sq.Dollar, classifyPostgres, log), nil
}

// classifyPostgres maps pgx driver errors onto the package sentinels.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyPostgres(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)

	// Class 42: undefined table
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", ErrNotMigrated, err)
	}

	return err
}
