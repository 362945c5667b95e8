package envsource

import (
	"maps"
	"os"
	"strings"
)

// environ is swapped in tests.
var environ = os.Environ

// Map is an in-memory [Environment]. The zero value is an empty environment.
type Map map[string]string

// Lookup implements [Environment].
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// FromEnviron builds a Map from "NAME=value" pairs as returned by
// os.Environ. Entries without '=' are ignored; later duplicates win.
func FromEnviron(environ []string) Map {
	m := make(Map, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		m[name] = value
	}
	return m
}

// Snapshot copies the current process environment into a Map.
func Snapshot() Map {
	return FromEnviron(environ())
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	return maps.Clone(m)
}
