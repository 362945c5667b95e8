// Package keypath derives environment variable names from positions in a
// configuration tree.
//
// A position is described by the name already derived for its parent (the
// prefix), its own field name and, for sequence items, its index:
//
//	Derive("APP__SERVER", "basePath", "__")        // APP__SERVER__BASE_PATH
//	DeriveIndexed("APP", "nums", "__", 0)          // APP__NUMS__0
//	Derive(DeriveIndexed("APP", "logs", "__", 0), "level", "__")
//	                                               // APP__LOGS__0__LEVEL
//
// Derived names are upper-case. A derived name is handed down verbatim as the
// prefix of the next level; Derive upper-cases the prefix it receives, which
// is a no-op for names it produced itself.
package keypath

import (
	"strconv"
	"strings"
	"unicode"
)

// Snakify converts a camelCase or PascalCase name to snake_case by inserting
// an underscore before every upper-case rune except a leading one and
// lower-casing that rune. Names that are already snake_case are returned
// unchanged.
//
//	Snakify("basePath")  // base_path
//	Snakify("BasePath")  // base_path
//	Snakify("base_path") // base_path
//	Snakify("HTTPPort")  // h_t_t_p_port
func Snakify(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Derive returns the environment variable name that overrides field when its
// parent position is named prefix.
func Derive(prefix, field, separator string) string {
	name := strings.ToUpper(Snakify(field))
	if prefix == "" {
		return name
	}

	return strings.ToUpper(prefix) + separator + name
}

// DeriveIndexed returns the name of the index-th item of the sequence stored
// under field. For items that are mappings the result is the prefix of the
// item's own fields.
func DeriveIndexed(prefix, field, separator string, index int) string {
	return Derive(prefix, field, separator) + separator + strconv.Itoa(index)
}
