// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	return cfg.Storage.validate()
}

func (a App) validate() error {
	switch a.Language {
	case LanguageEnglish, LanguageArabic:
		return nil
	default:
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidAppConfigs, a.Language)
	}
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverFile:
		if s.Files.StatePath == "" {
			return fmt.Errorf("%w: file driver requires a state path", ErrInvalidStorageConfigs)
		}
		return nil
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Export.S3.Enabled() && (cfg.Export.S3.AccessKey == "") != (cfg.Export.S3.SecretKey == "") {
		return fmt.Errorf("%w: s3 access and secret keys must be set together", ErrInvalidExportConfigs)
	}

	return nil
}
