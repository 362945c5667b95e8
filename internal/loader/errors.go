package loader

import "errors"

var (
	// ErrUnsupportedFormat is returned when the format of a source cannot be
	// told from its extension or Content-Type.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrEmptySource is returned for an empty source string.
	ErrEmptySource = errors.New("config source is empty")

	// ErrUnexpectedStatus is returned when an HTTP source answers with a
	// non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)
