package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder folds configuration sources into a single merged config.
// Sources are applied in call order; a field set by an earlier source is
// never overwritten by a later one (mergo keeps non-zero destination
// fields).
type configBuilder struct {
	merged *StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{merged: new(StructuredConfig)}
}

func (b *configBuilder) add(cfg *StructuredConfig) *configBuilder {
	if err := mergo.Merge(b.merged, cfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging configs: %w", err))
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.add(envCfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON resolves the config file path from the sources already merged,
// so env and flags decide which file to read and still shadow its values.
func (b *configBuilder) withJSON() *configBuilder {
	if b.merged.JSONFilePath == "" {
		return b
	}

	jsonCfg, err := parseJSON(b.merged.JSONFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.add(jsonCfg)
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	return b.merged, b.merged.validate()
}
