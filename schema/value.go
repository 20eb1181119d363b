package schema

import (
	"encoding/json"
	"math"
	"reflect"
)

// Record is the raw on-disk shape of one entity.
type Record = map[string]any

// AsFloat reports the numeric value of v. Strings, bools and nil are not
// numbers.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// AsFloats reads a numeric array such as a custom-data position override.
func AsFloats(v any) ([]float64, bool) {
	switch a := v.(type) {
	case []float64:
		return a, true
	case []any:
		out := make([]float64, 0, len(a))
		for _, e := range a {
			f, ok := AsFloat(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	case []int:
		out := make([]float64, len(a))
		for i, e := range a {
			out[i] = float64(e)
		}
		return out, true
	}
	return nil, false
}

// IsFinite reports whether v is a number that is neither NaN nor infinite.
func IsFinite(v any) bool {
	f, ok := AsFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// normalize converts numbers to float64 and typed slices/maps to their
// generic JSON counterparts so records compare and encode uniformly.
func normalize(v any) any {
	if f, ok := AsFloat(v); ok {
		return f
	}
	switch t := v.(type) {
	case nil, string, bool:
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	}
	return v
}

// Clone deep-copies a JSON value tree, normalizing numbers to float64.
func Clone(v any) any { return normalize(v) }

// CloneMap deep-copies an object. A nil input yields an empty map.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return normalize(m).(map[string]any)
}

// Equal is deep equality for JSON value trees; numbers compare by value
// regardless of their Go type.
func Equal(a, b any) bool {
	a, b = generic(a), generic(b)
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// generic converts only the outermost level of v to a JSON value kind.
func generic(v any) any {
	switch v.(type) {
	case nil, string, bool, float64, map[string]any, []any:
		return v
	}
	return normalize(v)
}
