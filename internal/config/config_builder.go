package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig

	// overlayDisabled holds Overlay.Disabled for the layers that set it
	// explicitly. mergo skips false, so an explicit false is applied by hand.
	overlayDisabled map[*StructuredConfig]bool

	err error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		defaults:        defaults(),
		overlayDisabled: make(map[*StructuredConfig]bool),
	}
}

// build merges the collected layers in precedence order: defaults, settings
// file, environment, flags.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, layer := range []*StructuredConfig{b.defaults, b.file, b.env, b.flags} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(config, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		if disabled, ok := b.overlayDisabled[layer]; ok {
			config.Overlay.Disabled = disabled
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withEnv reads CONFCTL_* variables from environ, or from the process
// environment when environ is nil.
func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	lookup := os.LookupEnv
	if environ != nil {
		lookup = func(name string) (string, bool) {
			v, ok := environ[name]
			return v, ok
		}
	}
	if v, ok := lookup(overlayDisabledEnv); ok && v != "" {
		b.overlayDisabled[envCfg] = envCfg.Overlay.Disabled
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, visited, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if visited["no-env"] {
		b.overlayDisabled[flagsCfg] = flagsCfg.Overlay.Disabled
	}

	b.flags = flagsCfg
	return b
}

// withJSON loads the settings file named by the flags or, failing that, the
// environment.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.SettingsFilePath != "" {
			jsonPath = cfg.SettingsFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, disabled, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if disabled != nil {
		b.overlayDisabled[jsonCfg] = *disabled
	}

	b.file = jsonCfg
	return b
}
