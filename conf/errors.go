package conf

import "github.com/MKhiriev/go-env-overlay/internal/overlay"

// ErrInvalidOverlayValue matches construction failures caused by an
// environment value that does not parse as the number it overrides.
var ErrInvalidOverlayValue = overlay.ErrInvalidOverlayValue

// InvalidOverlayValueError carries the variable name and raw value behind an
// [ErrInvalidOverlayValue] failure. Use errors.As to retrieve it.
type InvalidOverlayValueError = overlay.InvalidOverlayValueError
