// Package accessor resolves dotted paths such as "server.port" or
// "logs.0.level" against a configuration tree.
package accessor

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-env-overlay/models"
)

// PathSeparator splits a path into segments.
const PathSeparator = "."

// Get follows path through root and returns the value found there.
//
// Mapping segments are keys; sequence segments are non-negative base-10
// indices. A missing key, a malformed or out-of-range index, or any segment
// applied to a scalar resolves to absent (ok == false). A null stored in the
// tree is present and is returned as (models.Null(), true).
//
// Mappings and sequences are returned as deep copies, so mutating the result
// never affects root.
func Get(root models.Value, path string) (models.Value, bool) {
	v, ok := lookup(root, strings.Split(path, PathSeparator))
	if !ok {
		return models.Value{}, false
	}
	return v.Clone(), true
}

func lookup(v models.Value, segments []string) (models.Value, bool) {
	for _, seg := range segments {
		var ok bool

		switch v.Kind() {
		case models.KindMapping:
			v, ok = v.Field(seg)
		case models.KindSequence:
			var i int
			if i, ok = parseIndex(seg); ok {
				v, ok = v.Index(i)
			}
		default:
			ok = false
		}

		if !ok {
			return models.Value{}, false
		}
	}

	return v, true
}

// parseIndex accepts only plain decimal digits: no sign, no spaces, no
// underscores.
func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
