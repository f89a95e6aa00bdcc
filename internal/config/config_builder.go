package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. Later layers override earlier ones
// field by field; zero values never override.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, layer{source: source, cfg: cfg})
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaults(), nil)
}

func (b *configBuilder) withEnv() *configBuilder {
	loadDotEnv()

	envCfg := &StructuredConfig{}
	return b.add("env", envCfg, parseEnv(envCfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	return b.add("flags", flags, err)
}

// withOverride layers a config the caller assembled itself, such as the
// client's already parsed cobra flags.
func (b *configBuilder) withOverride(cfg *StructuredConfig) *configBuilder {
	return b.add("override", cfg, nil)
}

// withJSON reads the file named by the last layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			path = l.cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	return b.add("json "+path, jsonCfg, err)
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("error occured during building config: %w", errors.Join(b.errs...))
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}
