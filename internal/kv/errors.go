package kv

import "errors"

var (
	// ErrUnknownDriver is returned by [New] for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrUnavailable wraps backend failures caused by a lost or refused
	// connection.
	ErrUnavailable = errors.New("storage backend unavailable")

	// ErrNotMigrated is returned when the backing table does not exist.
	ErrNotMigrated = errors.New("storage schema is not migrated")

	// ErrClosed is returned by operations on a closed substrate.
	ErrClosed = errors.New("storage is closed")
)
