package schema

import "fmt"

// Kind is the declared value kind of a field.
type Kind int

const (
	KindAny Kind = iota
	KindFloat
	KindInt
	KindBool
	KindString
	KindObject     // Nested object, described by Elem when set.
	KindArray      // Array whose elements are described by Elem when set.
	KindCustomData // Opaque pass-through extension mapping.
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindCustomData:
		return "customData"
	default:
		return "any"
	}
}

// UnknownPolicy controls how keys that are not declared in a table are
// handled when filling a record.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys.
	UnknownPassthrough                      // Preserve unknown keys verbatim.
)

// Field declares one raw key of an entity together with its semantic alias
// and its default. The same declaration drives fill-on-read, strip-on-write,
// correction and shape validation.
type Field struct {
	Key      string
	Alias    string
	Kind     Kind
	Default  any
	Enum     []int
	Elem     *Table
	Since    string // Schema version that introduced the field.
	Required bool   // Must be present on disk; never stripped.
	Pattern  string
}

func (f Field) defaultValue() (any, bool) {
	if f.Default != nil {
		return Clone(f.Default), true
	}
	switch f.Kind {
	case KindFloat, KindInt:
		return 0.0, true
	case KindBool:
		return false, true
	case KindString:
		return "", true
	case KindObject:
		if f.Elem != nil {
			return f.Elem.Defaults(), true
		}
		return map[string]any{}, true
	case KindCustomData:
		return map[string]any{}, true
	case KindArray:
		return []any{}, true
	}
	return nil, false
}

// Table is the single authoritative field table of one entity kind.
type Table struct {
	name    string
	fields  []Field
	index   map[string]int
	alias   map[string]string
	unknown UnknownPolicy
}

// Name returns the table name, e.g. "v3.colorNote".
func (t *Table) Name() string { return t.name }

// Fields returns the declared fields in declaration order.
func (t *Table) Fields() []Field { return append([]Field(nil), t.fields...) }

// Field looks up a field by its raw key or its alias.
func (t *Table) Field(name string) (Field, bool) {
	key := t.KeyOf(name)
	if key == "" {
		return Field{}, false
	}
	return t.fields[t.index[key]], true
}

// KeyOf resolves a semantic alias or raw key to the raw key. It returns ""
// when the name is not declared.
func (t *Table) KeyOf(name string) string {
	if _, ok := t.index[name]; ok {
		return name
	}
	return t.alias[name]
}

// Default returns a fresh copy of a field's default.
func (t *Table) Default(name string) any {
	f, ok := t.Field(name)
	if !ok {
		return nil
	}
	v, _ := f.defaultValue()
	return v
}

// Builder assembles a Table.
type Builder struct {
	t   *Table
	err error
}

// FieldStep configures the most recently added field.
type FieldStep struct {
	b *Builder
	i int
}

// Object starts a table with UnknownStrip.
func Object(name string) *Builder {
	return &Builder{t: &Table{
		name:  name,
		index: map[string]int{},
		alias: map[string]string{},
	}}
}

func (b *Builder) add(key string, kind Kind, elem *Table) *FieldStep {
	if _, dup := b.t.index[key]; dup && b.err == nil {
		b.err = fmt.Errorf("schema %s: duplicate key %q", b.t.name, key)
	}
	b.t.index[key] = len(b.t.fields)
	b.t.fields = append(b.t.fields, Field{Key: key, Kind: kind, Elem: elem})
	return &FieldStep{b: b, i: len(b.t.fields) - 1}
}

// Float registers a number field. Correction replaces NaN and infinities
// with the default.
func (b *Builder) Float(key string) *FieldStep { return b.add(key, KindFloat, nil) }

// Int registers an integer field. Correction rounds fractions and checks Enum.
func (b *Builder) Int(key string) *FieldStep { return b.add(key, KindInt, nil) }

// Bool registers a boolean field. Numbers are corrected to value != 0.
func (b *Builder) Bool(key string) *FieldStep { return b.add(key, KindBool, nil) }

// String registers a string field.
func (b *Builder) String(key string) *FieldStep { return b.add(key, KindString, nil) }

// Any registers a field that is stored verbatim and never corrected.
func (b *Builder) Any(key string) *FieldStep { return b.add(key, KindAny, nil) }

// CustomData registers the opaque extension mapping under key, aliased as
// "customData".
func (b *Builder) CustomData(key string) *FieldStep {
	return b.add(key, KindCustomData, nil).Alias("customData")
}

// Nested registers an object field described by elem.
func (b *Builder) Nested(key string, elem *Table) *FieldStep { return b.add(key, KindObject, elem) }

// Array registers an array field; elem describes object elements and may be nil.
func (b *Builder) Array(key string, elem *Table) *FieldStep { return b.add(key, KindArray, elem) }

// Passthrough keeps undeclared keys when filling.
func (b *Builder) Passthrough() *Builder {
	b.t.unknown = UnknownPassthrough
	return b
}

// Build validates the builder and returns the Table.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	for a, k := range b.t.alias {
		if _, clash := b.t.index[a]; clash && a != k {
			return nil, fmt.Errorf("schema %s: alias %q shadows a raw key", b.t.name, a)
		}
	}
	return b.t, nil
}

// MustBuild is Build for package-level tables.
func (b *Builder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (f *FieldStep) field() *Field { return &f.b.t.fields[f.i] }

// Alias sets the semantic (wrapper) name accepted in place of the raw key.
func (f *FieldStep) Alias(name string) *FieldStep {
	if name != f.field().Key {
		if prev, dup := f.b.t.alias[name]; dup && f.b.err == nil {
			f.b.err = fmt.Errorf("schema %s: alias %q already bound to %q", f.b.t.name, name, prev)
		}
		f.b.t.alias[name] = f.field().Key
	}
	f.field().Alias = name
	return f
}

// Default sets the value used when the field is absent.
func (f *FieldStep) Default(v any) *FieldStep {
	f.field().Default = normalize(v)
	return f
}

// Enum restricts an int field to the listed values during correction.
func (f *FieldStep) Enum(vs ...int) *FieldStep {
	f.field().Enum = append([]int(nil), vs...)
	return f
}

// Since marks the schema version that introduced the field.
func (f *FieldStep) Since(version string) *FieldStep {
	f.field().Since = version
	return f
}

// Required marks the field as mandatory on disk.
func (f *FieldStep) Required() *FieldStep {
	f.field().Required = true
	return f
}

// Pattern constrains a string field during shape validation.
func (f *FieldStep) Pattern(re string) *FieldStep {
	f.field().Pattern = re
	return f
}

// Float finishes the current field and registers a number field.
func (f *FieldStep) Float(key string) *FieldStep { return f.b.Float(key) }

// Int finishes the current field and registers an integer field.
func (f *FieldStep) Int(key string) *FieldStep { return f.b.Int(key) }

// Bool finishes the current field and registers a boolean field.
func (f *FieldStep) Bool(key string) *FieldStep { return f.b.Bool(key) }

// String finishes the current field and registers a string field.
func (f *FieldStep) String(key string) *FieldStep { return f.b.String(key) }

// Any finishes the current field and registers a verbatim field.
func (f *FieldStep) Any(key string) *FieldStep { return f.b.Any(key) }

// CustomData finishes the current field and registers the extension mapping.
func (f *FieldStep) CustomData(key string) *FieldStep { return f.b.CustomData(key) }

// Nested finishes the current field and registers an object field.
func (f *FieldStep) Nested(key string, elem *Table) *FieldStep { return f.b.Nested(key, elem) }

// Array finishes the current field and registers an array field.
func (f *FieldStep) Array(key string, elem *Table) *FieldStep { return f.b.Array(key, elem) }

// Passthrough keeps undeclared keys when filling.
func (f *FieldStep) Passthrough() *Builder { return f.b.Passthrough() }

// Build validates the builder and returns the Table.
func (f *FieldStep) Build() (*Table, error) { return f.b.Build() }

// MustBuild is Build for package-level tables.
func (f *FieldStep) MustBuild() *Table { return f.b.MustBuild() }
