package models

import "errors"

var (
	// ErrUnsupportedType is returned by [FromAny] for Go values that have no
	// [Value] representation.
	ErrUnsupportedType = errors.New("unsupported configuration value type")

	// ErrNotAContainer is returned when a container operation is applied to
	// a scalar.
	ErrNotAContainer = errors.New("value is not a container")

	// ErrNoSuchElement is returned when a container operation targets a key or
	// index that does not exist. Overlays never create new elements.
	ErrNoSuchElement = errors.New("no such element")
)
