package schema

// Fill builds a complete record from a partial object. For every field the
// semantic alias wins over the raw key; absent fields take a fresh copy of
// their default. Values of the wrong kind are kept as-is so that a later
// correction pass can report and repair them.
func (t *Table) Fill(partial map[string]any) Record {
	out := make(Record, len(t.fields))
	for _, f := range t.fields {
		v, ok := lookup(partial, f)
		if !ok || v == nil {
			if d, has := f.defaultValue(); has {
				out[f.Key] = d
			}
			continue
		}
		out[f.Key] = f.fill(v)
	}
	if t.unknown == UnknownPassthrough {
		for k, v := range partial {
			if t.KeyOf(k) == "" {
				out[k] = Clone(v)
			}
		}
	}
	return out
}

// Defaults returns the default record of the table.
func (t *Table) Defaults() Record { return t.Fill(nil) }

func lookup(partial map[string]any, f Field) (any, bool) {
	if partial == nil {
		return nil, false
	}
	if f.Alias != "" && f.Alias != f.Key {
		if v, ok := partial[f.Alias]; ok && v != nil {
			return v, true
		}
	}
	v, ok := partial[f.Key]
	return v, ok
}

func (f Field) fill(v any) any {
	nv := normalize(v)
	switch f.Kind {
	case KindObject:
		if m, ok := nv.(map[string]any); ok && f.Elem != nil {
			return f.Elem.Fill(m)
		}
	case KindArray:
		if a, ok := nv.([]any); ok && f.Elem != nil {
			for i, e := range a {
				if m, ok := e.(map[string]any); ok {
					a[i] = f.Elem.Fill(m)
				}
			}
			return a
		}
	}
	return nv
}

// Optimize removes every field equal to its default, recursing into nested
// tables. Required fields are never removed.
func (t *Table) Optimize(obj map[string]any) {
	for _, f := range t.fields {
		v, ok := obj[f.Key]
		if !ok {
			continue
		}
		if !f.Required {
			if d, has := f.defaultValue(); has && Equal(v, d) {
				delete(obj, f.Key)
				continue
			}
		}
		if f.Elem == nil {
			continue
		}
		switch x := v.(type) {
		case map[string]any:
			f.Elem.Optimize(x)
		case []any:
			for _, e := range x {
				if m, ok := e.(map[string]any); ok {
					f.Elem.Optimize(m)
				}
			}
		}
	}
}
