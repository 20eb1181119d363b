package schema

import (
	"math"
	"slices"
)

// Correction describes one repaired field.
type Correction struct {
	Path string
	Old  any
	New  any
}

// FixFloat returns v when it is a finite number, def otherwise.
func FixFloat(v any, def float64) float64 {
	f, ok := AsFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// FixInt rounds v to the nearest integer. Non-numbers, non-finite values and
// values outside the int64 range fall back to def, as does a rounded value
// outside a non-empty allowed set.
func FixInt(v any, def int, allowed ...int) int {
	var n int
	switch x := v.(type) {
	case bool:
		if x {
			n = 1
		}
	default:
		f, ok := AsFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		f = math.Round(f)
		// Out of int64 range.
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return def
		}
		n = int(f)
	}
	if len(allowed) > 0 && !slices.Contains(allowed, n) {
		return def
	}
	return n
}

// Correct sanitizes obj in place against the table and reports each changed
// field. Fields absent from obj are left absent. It returns the number of
// corrections.
func (t *Table) Correct(obj map[string]any, at PathRef, report func(Correction)) int {
	if at == nil {
		at = Root()
	}
	n := 0
	for _, f := range t.fields {
		v, ok := obj[f.Key]
		if !ok {
			continue
		}
		p := at.Field(f.Key)
		nv := f.correct(v, p, report, &n)
		if !Equal(v, nv) {
			n++
			if report != nil {
				report(Correction{Path: p.Pointer(), Old: v, New: nv})
			}
		}
		obj[f.Key] = nv
	}
	return n
}

func (f Field) correct(v any, at PathRef, report func(Correction), n *int) any {
	def, _ := f.defaultValue()
	switch f.Kind {
	case KindFloat:
		d, _ := AsFloat(def)
		return FixFloat(v, d)
	case KindInt:
		d, _ := AsFloat(def)
		return float64(FixInt(v, int(d), f.Enum...))
	case KindBool:
		switch x := v.(type) {
		case bool:
			return x
		default:
			if num, ok := AsFloat(v); ok {
				return num != 0
			}
			return def
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s
		}
		return def
	case KindObject, KindCustomData:
		m, ok := v.(map[string]any)
		if !ok {
			return def
		}
		if f.Elem != nil {
			*n += f.Elem.Correct(m, at, report)
		}
		return m
	case KindArray:
		a, ok := v.([]any)
		if !ok {
			return def
		}
		if f.Elem != nil {
			for i, e := range a {
				m, ok := e.(map[string]any)
				if !ok {
					m = f.Elem.Defaults()
					*n++
					if report != nil {
						report(Correction{Path: at.Index(i).Pointer(), Old: e, New: m})
					}
					a[i] = m
					continue
				}
				*n += f.Elem.Correct(m, at.Index(i), report)
			}
		}
		return a
	}
	return v
}
