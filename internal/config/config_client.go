package config

import (
	"fmt"
)

// ClientConfig is the configuration of the interactive client binary,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains language and state strictness settings.
	App App
	// Storage selects the local substrate.
	Storage Storage
	// Export configures where the export command writes.
	Export Export
	// Log configures the rotated client log files.
	Log Log
}

// GetClientConfig builds and validates a client-specific config view.
//
// The client binary parses its own command line with cobra, so instead of
// raw arguments it passes the flag values it collected as override, which
// is merged after the environment and before the JSON file.
func GetClientConfig(override *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withOverride(override).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Export:  cfg.Export,
		Log:     cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
