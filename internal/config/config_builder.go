package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs   []*StructuredConfig
	overrides *StructuredConfig
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// build merges the collected configs in order; later non-zero fields win and
// overrides are applied last. withJSON puts the file first, so the order is
// JSON file, then environment, then overrides.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := b.configs
	if b.overrides != nil {
		sources = append(sources, b.overrides)
	}

	config := new(StructuredConfig)
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withOverrides(overrides *StructuredConfig) *configBuilder {
	b.overrides = overrides
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if b.overrides != nil && b.overrides.JSONFilePath != "" {
		jsonPath = b.overrides.JSONFilePath
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append([]*StructuredConfig{jsonCfg}, b.configs...)
	}

	return b
}
