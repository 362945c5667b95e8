package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FromAny converts plain Go data into a [Value] tree.
//
// Supported inputs are the shapes produced by encoding/json and
// gopkg.in/yaml.v3 decoders plus literal Go data:
//   - nil                                  -> null
//   - bool                                 -> boolean
//   - int, int8..int64, uint8..uint64      -> integer (uint64 above MaxInt64 fails)
//   - float32, float64                     -> float
//   - json.Number                          -> integer when it parses as one, float otherwise
//   - string                               -> string
//   - []any, []string, []int, []float64... -> sequence
//   - map[string]any, map[any]any          -> mapping (non-string keys are formatted with %v)
//   - Value                                -> deep copy
//
// The input is never retained: the result shares no containers with x.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return fromNumber(t)
	case string:
		return String(t), nil
	case []any:
		return fromSlice(t)
	case []string:
		return fromSlice(t)
	case []int:
		return fromSlice(t)
	case []int64:
		return fromSlice(t)
	case []float64:
		return fromSlice(t)
	case []bool:
		return fromSlice(t)
	case []map[string]any:
		return fromSlice(t)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			m[k] = converted
		}
		return Value{kind: KindMapping, m: m}, nil
	case map[any]any:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			key := fmt.Sprintf("%v", k)
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", key, err)
			}
			m[key] = converted
		}
		return Value{kind: KindMapping, m: m}, nil
	case map[string]string:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			m[k] = String(item)
		}
		return Value{kind: KindMapping, m: m}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

// MustFromAny is like [FromAny] but panics on unsupported input. It is meant
// for literal configuration in tests and examples.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromSlice[T any](items []T) (Value, error) {
	seq := make([]Value, len(items))
	for i, item := range items {
		converted, err := FromAny(item)
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		seq[i] = converted
	}
	return Value{kind: KindSequence, seq: seq}, nil
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedType, u)
	}
	return Int(int64(u)), nil
}

func fromNumber(n json.Number) (Value, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("%w: malformed number %q", ErrUnsupportedType, n.String())
	}
	return Float(f), nil
}

// Interface converts v back into plain Go data: map[string]any, []any, int64,
// float64, bool, string or nil. The result shares no containers with v.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, field := range v.m {
			out[k] = field.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler. Mapping keys are emitted in sorted
// order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			// JSON has no representation for these; keep them readable.
			return json.Marshal(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
		return json.Marshal(v.f)
	case KindSequence:
		return json.Marshal(v.seq)
	case KindMapping:
		return json.Marshal(v.m)
	default:
		return json.Marshal(v.Interface())
	}
}

// UnmarshalJSON implements json.Unmarshaler. Integral numbers decode as
// integers, everything else as floats.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := unmarshalJSONNumbers(b, &raw); err != nil {
		return err
	}

	decoded, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func unmarshalJSONNumbers(b []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(dst)
}
