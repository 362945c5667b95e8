// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix prefixes every confctl environment variable.
const EnvPrefix = "CONFCTL_"

const overlayDisabledEnv = EnvPrefix + "OVERLAY_DISABLED"

// StructuredConfig is the top-level settings container for confctl.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env);
//   - env: variable name for scalar fields, after [EnvPrefix];
//   - json: key in the JSON settings file.
type StructuredConfig struct {
	// Source describes where the base configuration comes from.
	Source Source `envPrefix:"SOURCE_" json:"source"`

	// Overlay controls the environment overlay applied to the base.
	Overlay Overlay `envPrefix:"OVERLAY_" json:"overlay"`

	// Server holds settings of the read-only HTTP view started by
	// "confctl serve".
	Server Server `envPrefix:"SERVER_" json:"server"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// SettingsFilePath is the optional path to a JSON settings file.
	// Env: CONFCTL_SETTINGS
	SettingsFilePath string `env:"SETTINGS" json:"-"`

	// Args holds the positional arguments left after flag parsing
	// (command and its operands).
	Args []string `json:"-"`
}

// Source describes the base configuration document and extra variable
// files.
type Source struct {
	// Path is a file path or http(s) URL of a JSON or YAML document.
	// Env: CONFCTL_SOURCE_PATH
	Path string `env:"PATH" json:"path"`

	// Format forces the document format ("json", "yaml"). Empty detects it.
	// Env: CONFCTL_SOURCE_FORMAT
	Format string `env:"FORMAT" json:"format"`

	// EnvFiles are .env files layered behind the process environment.
	// Env: CONFCTL_SOURCE_ENV_FILES (comma separated)
	EnvFiles []string `env:"ENV_FILES" envSeparator:"," json:"env_files"`

	// Timeout bounds fetching a remote document.
	// Env: CONFCTL_SOURCE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" json:"timeout"`
}

// Overlay mirrors models.OverlaySpec plus a switch to turn overlaying off.
type Overlay struct {
	// Prefix of derived variable names.
	// Env: CONFCTL_OVERLAY_PREFIX
	Prefix string `env:"PREFIX" json:"prefix"`

	// Separator between name segments.
	// Env: CONFCTL_OVERLAY_SEPARATOR
	Separator string `env:"SEPARATOR" json:"separator"`

	// Disabled serves the base document unchanged.
	// Env: CONFCTL_OVERLAY_DISABLED
	Disabled bool `env:"DISABLED" json:"disabled"`
}

// Server holds network and timeout settings of the HTTP view.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" form.
	// Env: CONFCTL_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout bounds a single request.
	// Env: CONFCTL_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: CONFCTL_LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`
}

// defaults returns the built-in settings.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Source: Source{
			Timeout: 10 * time.Second,
		},
		Overlay: Overlay{
			Separator: "__",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges and validates confctl settings from
// defaults, the optional JSON settings file, CONFCTL_* environment variables
// and args (command-line arguments without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(nil).
		withFlags(args).
		withJSON().
		build()
}
