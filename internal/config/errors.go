package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or a SQL driver without DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unsupported language).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidExportConfigs indicates inconsistent export sink settings.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
)
