// Package overlay replaces leaves of a configuration tree with values taken
// from an environment, following the naming convention of package keypath.
//
// The pass walks mappings recursively. For every scalar leaf it derives the
// variable name, looks it up and, on a hit, parses the raw string into the
// kind of the original leaf:
//
//	integer  strconv.ParseInt (base 10, surrounding spaces ignored)
//	float    strconv.ParseFloat
//	boolean  "true" in any case is true, anything else false
//	string   raw value; also used for null leaves
//
// Numeric parse failures abort the pass with an [*InvalidOverlayValueError].
// Missing variables leave the leaf untouched. The pass never adds or removes
// keys and leaves sequences nested directly in sequences alone.
package overlay
