// Package beatmap holds the version-independent wrapper API shared by the v2
// and v3 schema adapters: capability interfaces, the raw-record base object,
// custom data, sort comparators and grid helpers.
package beatmap

import (
	"math"

	"github.com/reoring/bsmap/schema"
)

// Partial is a partial attribute object accepted by every factory. Keys may
// use either the raw on-disk names or the wrapper's semantic names.
type Partial = map[string]any

// Object is the base of every entity: a raw record interpreted through the
// entity's field table.
type Object struct {
	table *schema.Table
	data  schema.Record
}

// NewObject fills p against t.
func NewObject(t *schema.Table, p Partial) Object {
	return Object{table: t, data: t.Fill(p)}
}

// Create runs ctor once per partial. With no partials it returns exactly one
// default-constructed value.
func Create[T any](ctor func(Partial) T, partials ...Partial) []T {
	if len(partials) == 0 {
		return []T{ctor(nil)}
	}
	out := make([]T, 0, len(partials))
	for _, p := range partials {
		out = append(out, ctor(p))
	}
	return out
}

func (o *Object) Table() *schema.Table  { return o.table }
func (o *Object) Record() schema.Record { return o.data }

func (o *Object) key(name string) string {
	if k := o.table.KeyOf(name); k != "" {
		return k
	}
	return name
}

// Get returns the raw value stored under a raw key or semantic alias.
func (o *Object) Get(name string) any { return o.data[o.key(name)] }

// Float reads a numeric field; malformed values read as 0.
func (o *Object) Float(name string) float64 {
	f, _ := schema.AsFloat(o.Get(name))
	return f
}

// Int reads a numeric field rounded to the nearest integer.
func (o *Object) Int(name string) int {
	f := o.Float(name)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}

// Bool reads a boolean or a 0/1 flag.
func (o *Object) Bool(name string) bool {
	switch v := o.Get(name).(type) {
	case bool:
		return v
	default:
		f, _ := schema.AsFloat(v)
		return f != 0
	}
}

func (o *Object) Text(name string) string {
	s, _ := o.Get(name).(string)
	return s
}

// Set stores v under a raw key or semantic alias.
func (o *Object) Set(name string, v any) { o.data[o.key(name)] = schema.Clone(v) }

// SetFlag stores a boolean as the 0/1 integer flag used on disk.
func (o *Object) SetFlag(name string, v bool) {
	if v {
		o.Set(name, 1)
		return
	}
	o.Set(name, 0)
}

func (o *Object) Time() float64     { return o.Float("time") }
func (o *Object) SetTime(v float64) { o.Set("time", v) }

// CustomData returns the live extension mapping, replacing a missing or
// malformed value with an empty one.
func (o *Object) CustomData() CustomData {
	k := o.key("customData")
	m, ok := o.data[k].(map[string]any)
	if !ok {
		m = map[string]any{}
		o.data[k] = m
	}
	return CustomData(m)
}

func (o *Object) SetCustomData(cd CustomData) {
	o.data[o.key("customData")] = schema.CloneMap(cd)
}

// ToObject returns a deep copy of the on-disk shape.
func (o *Object) ToObject() map[string]any { return schema.CloneMap(o.data) }

// CustomData is the opaque pass-through extension mapping. Unknown keys are
// preserved through every transform.
type CustomData map[string]any

// Has reports whether key is present with a non-null value.
func (cd CustomData) Has(key string) bool {
	v, ok := cd[key]
	return ok && v != nil
}

// HasAny reports whether any of keys is present.
func (cd CustomData) HasAny(keys ...string) bool {
	for _, k := range keys {
		if cd.Has(k) {
			return true
		}
	}
	return false
}

// Floats reads a numeric array such as a position override.
func (cd CustomData) Floats(key string) ([]float64, bool) {
	return schema.AsFloats(cd[key])
}

// Vector2 returns a two-element override, e.g. "coordinates" or "_position".
func (cd CustomData) Vector2(key string) (Vector2, bool) {
	f, ok := cd.Floats(key)
	if !ok || len(f) < 2 {
		return Vector2{}, false
	}
	return Vector2{f[0], f[1]}, true
}
