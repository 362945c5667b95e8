// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package overlay

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-env-overlay/envsource"
	"github.com/MKhiriev/go-env-overlay/internal/keypath"
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
)

// Engine applies environment overlays to configuration trees.
type Engine struct {
	env    envsource.Environment
	logger *logger.Logger
}

// NewEngine returns an Engine reading from env. A nil env reads the process
// environment; a nil logger discards output.
func NewEngine(env envsource.Environment, log *logger.Logger) *Engine {
	if env == nil {
		env = envsource.OS()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Engine{
		env:    env,
		logger: log,
	}
}

// walk carries the state of a single pass.
type walk struct {
	*Engine

	separator string
	applied   []models.Override
}

// Apply overlays root in place and returns the leaves it replaced, in visit
// order. Mapping keys are visited in sorted order.
//
// root is mutated through its shared containers, so callers that must keep
// their input intact pass a [models.Value.Clone]. A root that is not a mapping
// has no field names to derive from and is left unchanged.
func (e *Engine) Apply(root models.Value, spec models.OverlaySpec) ([]models.Override, error) {
	spec = spec.WithDefaults()

	w := &walk{
		Engine:    e,
		separator: spec.Separator,
	}

	if root.Kind() != models.KindMapping {
		e.logger.Debug().Str("kind", root.Kind().String()).Msg("overlay root is not a mapping, skipping")
		return nil, nil
	}

	if err := w.mapping(root, spec.Prefix, ""); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("prefix", spec.Prefix).
		Str("separator", spec.Separator).
		Int("applied", len(w.applied)).
		Msg("overlay pass finished")

	return w.applied, nil
}

func (w *walk) mapping(m models.Value, prefix, path string) error {
	for _, key := range m.Keys() {
		field, _ := m.Field(key)
		fieldPath := joinPath(path, key)

		switch field.Kind() {
		case models.KindMapping:
			if err := w.mapping(field, keypath.Derive(prefix, key, w.separator), fieldPath); err != nil {
				return err
			}
		case models.KindSequence:
			if err := w.sequence(field, prefix, key, fieldPath); err != nil {
				return err
			}
		default:
			replaced, ok, err := w.leaf(field, keypath.Derive(prefix, key, w.separator), fieldPath)
			if err != nil {
				return err
			}
			if ok {
				if err := m.SetField(key, replaced); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (w *walk) sequence(seq models.Value, prefix, key, path string) error {
	for i := range seq.Len() {
		item, _ := seq.Index(i)
		itemName := keypath.DeriveIndexed(prefix, key, w.separator, i)
		itemPath := joinPath(path, strconv.Itoa(i))

		switch item.Kind() {
		case models.KindMapping:
			if err := w.mapping(item, itemName, itemPath); err != nil {
				return err
			}
		case models.KindSequence:
			// Nested sequences have no naming convention; leave them alone.
			w.logger.Debug().Str("path", itemPath).Msg("nested sequence is not overlaid")
		default:
			replaced, ok, err := w.leaf(item, itemName, itemPath)
			if err != nil {
				return err
			}
			if ok {
				if err := seq.SetIndex(i, replaced); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// leaf looks varName up and parses a hit into the kind of orig.
func (w *walk) leaf(orig models.Value, varName, path string) (models.Value, bool, error) {
	raw, ok := w.env.Lookup(varName)
	if !ok {
		return orig, false, nil
	}

	replaced, err := parserFor(orig.Kind())(raw)
	if err != nil {
		return orig, false, &InvalidOverlayValueError{
			VarName:  varName,
			RawValue: raw,
			Kind:     orig.Kind(),
			Err:      err,
		}
	}

	w.applied = append(w.applied, models.Override{
		Path:    path,
		VarName: varName,
		Kind:    orig.Kind(),
	})
	w.logger.Debug().
		Str("path", path).
		Str("var", varName).
		Str("kind", orig.Kind().String()).
		Msg("overlay applied")

	return replaced, true, nil
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return fmt.Sprintf("%s.%s", path, segment)
}
