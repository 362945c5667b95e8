// Package server runs the HTTP view of a merged configuration.
//
// It covers startup, signal handling and graceful shutdown.
package server
