package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	j "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reoring/bsmap/i18n"
	"github.com/reoring/bsmap/internal/logging"
	js "github.com/reoring/bsmap/jsonschema"
)

// JSONSchema projects the table into a JSON Schema for the given document
// version. Only required fields whose Since is met are mandatory; every
// present field is type-checked.
func (t *Table) JSONSchema(version string) *js.Schema {
	s := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	for _, f := range t.fields {
		s.Properties[f.Key] = f.jsonSchema(version)
		if f.Required && AtLeast(version, f.Since) {
			s.Required = append(s.Required, f.Key)
		}
	}
	sort.Strings(s.Required)
	return s
}

func (f Field) jsonSchema(version string) *js.Schema {
	switch f.Kind {
	case KindFloat, KindInt:
		return &js.Schema{Type: "number"}
	case KindBool:
		return &js.Schema{Type: "boolean"}
	case KindString:
		return &js.Schema{Type: "string", Pattern: f.Pattern}
	case KindObject:
		if f.Elem != nil {
			return f.Elem.JSONSchema(version)
		}
		return &js.Schema{Type: "object"}
	case KindCustomData:
		return &js.Schema{Type: "object"}
	case KindArray:
		s := &js.Schema{Type: "array"}
		if f.Elem != nil {
			s.Items = f.Elem.JSONSchema(version)
		}
		return s
	}
	return &js.Schema{}
}

// compiled caches validators by table name and version.
var compiled sync.Map // map[string]*jsonschema.Schema

func (t *Table) validator(version string) (*jsonschema.Schema, error) {
	key := t.name + "@" + version
	if cached, ok := compiled.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}
	doc, err := toJSONValue(t.JSONSchema(version))
	if err != nil {
		return nil, fmt.Errorf("project schema %q: %w", key, err)
	}
	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("bsmap://%s/%s.json", t.name, version)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	compiled.Store(key, sch)
	return sch, nil
}

// toJSONValue marshals then unmarshals v to get a clean any representation.
func toJSONValue(v any) (any, error) {
	b, err := j.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := j.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Check walks doc against the table's shape for the given version
// (deepCheck). name labels log lines, e.g. "difficulty". In strict mode the
// collected Issues are returned as the error; otherwise every issue is logged
// and the error is nil. Issues are returned in both modes.
func Check(doc map[string]any, t *Table, name, version string, strict bool) (Issues, error) {
	log := logging.Tag("schema", "check", name)
	sch, err := t.validator(version)
	if err != nil {
		return nil, err
	}
	v, err := toJSONValue(doc)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", name, err)
	}
	var iss Issues
	if verr := sch.Validate(v); verr != nil {
		ve, ok := verr.(*jsonschema.ValidationError)
		if !ok {
			return nil, verr
		}
		iss = collectIssues(ve, nil)
	}
	if len(iss) == 0 {
		return nil, nil
	}
	if strict {
		return iss, iss
	}
	for _, it := range iss {
		log.Warn().Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
	}
	return iss, nil
}

var printer = message.NewPrinter(language.English)

func collectIssues(ve *jsonschema.ValidationError, dst Issues) Issues {
	if len(ve.Causes) > 0 {
		for _, c := range ve.Causes {
			dst = collectIssues(c, dst)
		}
		return dst
	}
	at := Root()
	for _, p := range ve.InstanceLocation {
		at = at.Field(p)
	}
	switch k := ve.ErrorKind.(type) {
	case *kind.Required:
		for _, m := range k.Missing {
			dst = AppendIssues(dst, at.Field(m).Issue(CodeRequired, i18n.T(CodeRequired, map[string]string{"key": m}), "key", m))
		}
		return dst
	case *kind.Type:
		return AppendIssues(dst, at.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{
			"want": strings.Join(k.Want, "|"),
			"got":  k.Got,
		}), "want", k.Want, "got", k.Got))
	case *kind.Pattern:
		return AppendIssues(dst, at.Issue(CodeInvalidVersion, i18n.T(CodeInvalidVersion, map[string]string{"got": k.Got}), "got", k.Got, "want", k.Want))
	}
	return AppendIssues(dst, at.Issue(CodeInvalidShape, ve.ErrorKind.LocalizedString(printer)))
}
