package kv

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
)

// New opens the substrate selected by cfg.Driver.
func New(ctx context.Context, cfg config.Storage, log *logger.Logger) (Substrate, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile:
		return NewFile(cfg.Files.StatePath, log)
	case config.DriverSQLite:
		return NewSQLite(ctx, cfg.DB.DSN, log)
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg.DB.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
