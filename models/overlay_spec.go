package models

// DefaultSeparator joins the segments of a derived environment variable name
// when [OverlaySpec.Separator] is empty.
const DefaultSeparator = "__"

// OverlaySpec controls how environment variable names are derived from
// positions in a configuration tree.
//
// With Prefix "APP" and Separator "__" the leaf server.basePath is overridden
// by APP__SERVER__BASE_PATH.
type OverlaySpec struct {
	// Prefix is prepended (upper-cased) to every derived name. Empty means no
	// prefix.
	Prefix string `json:"prefix"`

	// Separator joins prefix and path segments. Defaults to [DefaultSeparator].
	Separator string `json:"separator"`
}

// WithDefaults returns a copy of s with an empty Separator replaced by
// [DefaultSeparator].
func (s OverlaySpec) WithDefaults() OverlaySpec {
	if s.Separator == "" {
		s.Separator = DefaultSeparator
	}
	return s
}

// Override records a leaf that was replaced by an environment variable.
// The raw value is not recorded.
type Override struct {
	// Path is the dotted accessor path of the replaced leaf (e.g. "logs.0.level").
	Path string `json:"path"`

	// VarName is the environment variable that supplied the new value.
	VarName string `json:"var_name"`

	// Kind is the kind of the original leaf, which selected the parser.
	Kind Kind `json:"-"`
}
