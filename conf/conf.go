// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conf

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/go-env-overlay/envsource"
	"github.com/MKhiriev/go-env-overlay/internal/accessor"
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/internal/overlay"
	"github.com/MKhiriev/go-env-overlay/models"
	"github.com/rs/zerolog"
)

// Options configures [New].
type Options struct {
	// Config is the base tree: a models.Value or plain Go data accepted by
	// models.FromAny (typically map[string]any). Nil yields an empty mapping.
	Config any

	// MergeEnv enables the environment overlay. Nil disables it and the
	// base tree is served unchanged.
	MergeEnv *models.OverlaySpec

	// Env is consulted by the overlay. Nil reads the process environment.
	Env envsource.Environment

	// Logger receives debug events about applied overrides. Nil discards them.
	Logger *zerolog.Logger
}

// Conf is an immutable, merged configuration tree.
type Conf struct {
	root      models.Value
	overrides []models.Override
}

// New copies opts.Config, applies the environment overlay when opts.MergeEnv
// is set and returns the result.
//
// It fails when the base tree holds unsupported Go types or when an
// environment value cannot be parsed as the number it overrides; the latter
// matches [ErrInvalidOverlayValue].
func New(opts Options) (*Conf, error) {
	root, err := baseTree(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("error converting base config: %w", err)
	}

	c := &Conf{root: root}
	if opts.MergeEnv == nil {
		return c, nil
	}

	engine := overlay.NewEngine(opts.Env, logger.Wrap(opts.Logger))
	c.overrides, err = engine.Apply(c.root, *opts.MergeEnv)
	if err != nil {
		return nil, fmt.Errorf("error merging environment into config: %w", err)
	}

	return c, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts Options) *Conf {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func baseTree(config any) (models.Value, error) {
	if config == nil {
		return models.Mapping(nil), nil
	}
	// FromAny deep-copies, which keeps the caller's tree out of the overlay.
	return models.FromAny(config)
}

// Get resolves a dotted path such as "server.port" or "logs.0.level".
// ok is false when the path does not resolve. Mappings and sequences are
// returned as independent copies.
func (c *Conf) Get(path string) (models.Value, bool) {
	return accessor.Get(c.root, path)
}

// GetAny is like [Conf.Get] but returns plain Go data (see
// models.Value.Interface). Absent paths return (nil, false).
func (c *Conf) GetAny(path string) (any, bool) {
	v, ok := c.Get(path)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// Value returns a copy of the whole merged tree.
func (c *Conf) Value() models.Value {
	return c.root.Clone()
}

// Overrides lists the leaves replaced from the environment during
// construction, in visit order.
func (c *Conf) Overrides() []models.Override {
	return slices.Clone(c.overrides)
}

// Display writes the merged tree to w as JSON indented by two spaces,
// followed by a newline.
func (c *Conf) Display(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.root); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for the merged tree.
func (c *Conf) MarshalJSON() ([]byte, error) {
	return c.root.MarshalJSON()
}
