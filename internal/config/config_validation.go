// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-env-overlay/internal/loader"
	"github.com/rs/zerolog"
)

// validate checks the merged settings before confctl uses them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Source.Path == "" {
		return fmt.Errorf("%w: source path is required", ErrInvalidSourceConfigs)
	}
	if _, err := loader.ParseFormat(cfg.Source.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSourceConfigs, err)
	}
	if cfg.Source.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidSourceConfigs)
	}

	if cfg.Overlay.Separator == "" {
		return fmt.Errorf("%w: separator must not be empty", ErrInvalidOverlayConfigs)
	}

	var addr NetAddress
	if err := addr.Set(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
