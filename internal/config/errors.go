package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidSourceConfigs indicates a missing base document or an
	// unknown document format.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidOverlayConfigs indicates an empty separator.
	ErrInvalidOverlayConfigs = errors.New("invalid overlay configuration")
	// ErrInvalidServerConfigs indicates a malformed listen address or a
	// negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
