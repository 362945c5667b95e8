package app

import "errors"

var (
	// ErrUnknownCommand is returned for a command confctl does not implement.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command receives the wrong operands.
	ErrUsage = errors.New("invalid usage")

	// ErrPathNotFound is returned by "get" when the path does not resolve.
	ErrPathNotFound = errors.New("configuration path not found")
)
