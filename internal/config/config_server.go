// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerConfig is the configuration of the local HTTP API binary.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Log     Log
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration. args are the command-line arguments
// without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Log:     cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}
