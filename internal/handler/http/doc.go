// Package http implements the read-only HTTP view of a merged configuration.
//
// It exposes the whole tree, single paths and the list of applied overrides
// as JSON. Request tracing, access logging and response compression are
// handled by middleware in this package.
package http
