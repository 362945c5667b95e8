// Package config loads the settings of the confctl command.
//
// Settings are assembled from the following sources, later sources
// overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON settings file (path from CONFCTL_SETTINGS or -settings)
//  3. Environment variables prefixed with CONFCTL_
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
