// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"maps"
	"slices"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	// KindNull is an absent/null scalar. It is also the zero Kind, so the
	// zero [Value] is a valid null.
	KindNull Kind = iota

	// KindBool is a boolean scalar.
	KindBool

	// KindInt is a signed 64-bit integer scalar.
	KindInt

	// KindFloat is a 64-bit floating point scalar.
	KindFloat

	// KindString is a string scalar.
	KindString

	// KindSequence is an ordered list of values.
	KindSequence

	// KindMapping is a string-keyed map of values.
	KindMapping
)

// String returns the lower-case name of the kind, as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsScalar reports whether k is a leaf kind (everything except sequences and
// mappings).
func (k Kind) IsScalar() bool {
	return k != KindSequence && k != KindMapping
}

// Value is a node of a configuration tree: a mapping, a sequence or a scalar
// leaf (integer, float, boolean, string or null).
//
// Scalars are plain values. Mappings and sequences hold a reference to their
// container, so copying a Value shares the container; use [Value.Clone] to
// obtain an independent tree.
type Value struct {
	kind Kind

	b   bool
	i   int64
	f   float64
	s   string
	seq []Value
	m   map[string]Value
}

// Null returns a null scalar.
func Null() Value { return Value{} }

// Bool returns a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer scalar.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float scalar.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string scalar.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence returns a sequence holding items. The slice is copied.
func Sequence(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, seq: seq}
}

// Mapping returns a mapping holding fields. The map is copied (shallowly).
func Mapping(fields map[string]Value) Value {
	m := make(map[string]Value, len(fields))
	maps.Copy(m, fields)
	return Value{kind: KindMapping, m: m}
}

// Kind returns the variant tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null scalar.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float held by v and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string held by v and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Len returns the number of items of a sequence or fields of a mapping, and
// zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.m)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence. ok is false when v is not a
// sequence or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Field returns the value stored under key in a mapping. ok is false when v is
// not a mapping or the key is missing.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	field, ok := v.m[key]
	return field, ok
}

// Keys returns the keys of a mapping in sorted order, or nil for other kinds.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return slices.Sorted(maps.Keys(v.m))
}

// SetField replaces the value stored under an existing key of a mapping.
// The container is shared with every copy of v.
func (v Value) SetField(key string, field Value) error {
	if v.kind != KindMapping {
		return fmt.Errorf("set field %q on %s: %w", key, v.kind, ErrNotAContainer)
	}
	if _, ok := v.m[key]; !ok {
		return fmt.Errorf("set field %q: %w", key, ErrNoSuchElement)
	}
	v.m[key] = field
	return nil
}

// SetIndex replaces the i-th item of a sequence. The container is shared with
// every copy of v.
func (v Value) SetIndex(i int, item Value) error {
	if v.kind != KindSequence {
		return fmt.Errorf("set index %d on %s: %w", i, v.kind, ErrNotAContainer)
	}
	if i < 0 || i >= len(v.seq) {
		return fmt.Errorf("set index %d: %w", i, ErrNoSuchElement)
	}
	v.seq[i] = item
	return nil
}

// Clone returns a deep copy of v. Scalars are returned as-is.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		seq := make([]Value, len(v.seq))
		for i, item := range v.seq {
			seq[i] = item.Clone()
		}
		return Value{kind: KindSequence, seq: seq}
	case KindMapping:
		m := make(map[string]Value, len(v.m))
		for k, field := range v.m {
			m[k] = field.Clone()
		}
		return Value{kind: KindMapping, m: m}
	default:
		return v
	}
}

// Equal reports whether v and other hold structurally equal trees. Integers
// and floats never compare equal to each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindSequence:
		return slices.EqualFunc(v.seq, other.seq, Value.Equal)
	case KindMapping:
		return maps.EqualFunc(v.m, other.m, Value.Equal)
	default:
		return false
	}
}

// String renders v in its JSON form. It is meant for logs and test failures.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.kind, err)
	}
	return string(b)
}
