// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package overlay

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-overlay/models"
)

// ErrInvalidOverlayValue matches every [*InvalidOverlayValueError] via
// errors.Is.
var ErrInvalidOverlayValue = errors.New("invalid overlay value")

// InvalidOverlayValueError reports an environment value that cannot be parsed
// into the kind of the leaf it overrides.
type InvalidOverlayValueError struct {
	// VarName is the derived environment variable name.
	VarName string
	// RawValue is the unparsed environment value.
	RawValue string
	// Kind is the kind of the original leaf.
	Kind models.Kind
	// Err is the underlying strconv error.
	Err error
}

func (e *InvalidOverlayValueError) Error() string {
	return fmt.Sprintf("invalid %s value for %s: %q", e.Kind, e.VarName, e.RawValue)
}

func (e *InvalidOverlayValueError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidOverlayValue) succeed.
func (e *InvalidOverlayValueError) Is(target error) bool {
	return target == ErrInvalidOverlayValue
}
