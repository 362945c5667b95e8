package app

import "context"

// Runner defines the lifecycle contract of the confctl application.
type Runner interface {
	// Run executes the selected command and blocks until it finishes.
	Run(ctx context.Context) error
}
