package schema_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/schema"
)

var filterTable = schema.Object("test.filter").
	Int("f").Alias("type").Default(1).
	Int("p").Alias("p0").
	Int("r").Alias("reverse").
	MustBuild()

var boxTable = schema.Object("test.box").
	Float("b").Alias("time").
	Int("d").Alias("direction").Enum(0, 1, 3).
	Nested("f", filterTable).Alias("filter").
	Array("e", nil).Alias("events").
	CustomData("customData").
	MustBuild()

var docTable = schema.Object("test.doc").
	String("version").Required().Pattern(`^3\.\d+\.\d+$`).
	Array("boxes", boxTable).Required().
	Array("extra", nil).Required().Since("3.2.0").
	CustomData("customData").
	MustBuild()

func TestFill_DefaultsAndAliases(t *testing.T) {
	rec := boxTable.Fill(map[string]any{"time": 2, "b": 5, "d": 1})
	assert.Equal(t, 2.0, rec["b"], "semantic alias wins over the raw key")
	assert.Equal(t, 1.0, rec["d"])
	assert.Equal(t, map[string]any{"f": 1.0, "p": 0.0, "r": 0.0}, rec["f"])
	assert.Equal(t, []any{}, rec["e"])
	assert.Equal(t, map[string]any{}, rec["customData"])

	rec = boxTable.Fill(map[string]any{"b": 5, "unknown": true})
	assert.Equal(t, 5.0, rec["b"])
	assert.NotContains(t, rec, "unknown")
}

func TestFill_KeepsMalformedValues(t *testing.T) {
	rec := boxTable.Fill(map[string]any{"b": "soon"})
	assert.Equal(t, "soon", rec["b"])
}

func TestDefaults_IsFreshCopy(t *testing.T) {
	a := boxTable.Defaults()
	a["customData"].(map[string]any)["x"] = 1
	b := boxTable.Defaults()
	assert.Empty(t, b["customData"])
}

func TestOptimize_StripsDefaultsButKeepsRequired(t *testing.T) {
	doc := map[string]any{
		"version": "3.2.0",
		"boxes": []any{
			boxTable.Fill(map[string]any{"b": 1, "filter": map[string]any{"p": 3}}),
			boxTable.Defaults(),
		},
		"extra":      []any{},
		"customData": map[string]any{},
	}
	docTable.Optimize(doc)
	assert.Equal(t, map[string]any{
		"version": "3.2.0",
		"boxes": []any{
			map[string]any{"b": 1.0, "f": map[string]any{"p": 3.0}},
			map[string]any{},
		},
		"extra": []any{},
	}, doc)

	// filling the optimized document restores the original semantics
	refilled := boxTable.Fill(doc["boxes"].([]any)[0].(map[string]any))
	assert.Equal(t, boxTable.Fill(map[string]any{"b": 1, "filter": map[string]any{"p": 3}}), refilled)
}

func TestFixFloat(t *testing.T) {
	assert.Equal(t, 1.5, schema.FixFloat(1.5, 0))
	assert.Equal(t, 2.0, schema.FixFloat(2, 0))
	assert.Equal(t, 7.0, schema.FixFloat(math.NaN(), 7))
	assert.Equal(t, 7.0, schema.FixFloat(math.Inf(1), 7))
	assert.Equal(t, 7.0, schema.FixFloat("1", 7))
	assert.Equal(t, 7.0, schema.FixFloat(nil, 7))
}

func TestFixInt(t *testing.T) {
	assert.Equal(t, 0, schema.FixInt(3.7, 0, 0, 1, 3))
	assert.Equal(t, 1, schema.FixInt(1, 0, 0, 1, 3))
	assert.Equal(t, 3, schema.FixInt(2.6, 0))
	assert.Equal(t, 1, schema.FixInt(true, 0))
	assert.Equal(t, 9, schema.FixInt("x", 9))
	assert.Equal(t, 9, schema.FixInt(math.NaN(), 9))
	assert.Equal(t, 0, schema.FixInt(1e300, 0))
	assert.Equal(t, 0, schema.FixInt(-1e300, 0))
	assert.Equal(t, 7, schema.FixInt(math.Inf(1), 7))
}

func TestCorrect_ReportsEachChangedField(t *testing.T) {
	rec := boxTable.Fill(map[string]any{"b": math.NaN(), "d": 2.0, "filter": map[string]any{"p": 1.4}})
	rec["customData"] = "oops"
	var got []schema.Correction
	n := boxTable.Correct(rec, schema.At("/boxes/0"), func(c schema.Correction) { got = append(got, c) })
	require.Equal(t, 4, n)
	paths := []string{}
	for _, c := range got {
		paths = append(paths, c.Path)
	}
	assert.ElementsMatch(t, []string{"/boxes/0/b", "/boxes/0/d", "/boxes/0/f/p", "/boxes/0/customData"}, paths)
	assert.Equal(t, 0.0, rec["b"])
	assert.Equal(t, 0.0, rec["d"])
	assert.Equal(t, 1.0, rec["f"].(map[string]any)["p"])
	assert.Equal(t, map[string]any{}, rec["customData"])
}

func TestCheck_StrictAndLenient(t *testing.T) {
	bad := map[string]any{
		"version": "3.2.0",
		"boxes":   []any{map[string]any{"b": "late"}},
	}
	iss, err := schema.Check(bad, docTable, "doc", "3.2.0", true)
	require.Error(t, err)
	got, ok := schema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, iss, got)
	codes := map[string]string{}
	for _, it := range iss {
		codes[it.Path] = it.Code
	}
	assert.Equal(t, schema.CodeInvalidType, codes["/boxes/0/b"])
	assert.Equal(t, schema.CodeRequired, codes["/extra"])

	iss, err = schema.Check(bad, docTable, "doc", "3.2.0", false)
	require.NoError(t, err)
	assert.Len(t, iss, 2)
}

func TestCheck_VersionGatedField(t *testing.T) {
	doc := map[string]any{"version": "3.0.0", "boxes": []any{}}
	iss, err := schema.Check(doc, docTable, "doc", "3.0.0", true)
	require.NoError(t, err)
	assert.Empty(t, iss)
}

func TestCheck_VersionPattern(t *testing.T) {
	doc := map[string]any{"version": "2.6.0", "boxes": []any{}, "extra": []any{}}
	iss, err := schema.Check(doc, docTable, "doc", "3.2.0", true)
	require.Error(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, schema.CodeInvalidVersion, iss[0].Code)
	assert.Equal(t, "/version", iss[0].Path)
}

func TestVersionHelpers(t *testing.T) {
	assert.Equal(t, 3, schema.MajorVersion("3.2.0"))
	assert.Equal(t, 2, schema.MajorVersion("2.6.0"))
	assert.Equal(t, -1, schema.MajorVersion("three"))
	assert.True(t, schema.AtLeast("3.2.0", "3.2.0"))
	assert.False(t, schema.AtLeast("3.0.0", "3.2.0"))
	assert.True(t, schema.AtLeast("3.0.0", ""))
}

func TestEqual_NumbersByValue(t *testing.T) {
	assert.True(t, schema.Equal(1, 1.0))
	assert.True(t, schema.Equal([]float64{1, 2}, []any{1.0, 2}))
	assert.False(t, schema.Equal(map[string]any{"a": 1}, map[string]any{"a": 2}))
	assert.False(t, schema.Equal(0, false))
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := schema.Issues{
		{Path: "/a", Code: schema.CodeInvalidType},
		{Path: "/b", Code: schema.CodeRequired},
		{Path: "/c", Code: schema.CodeInvalidShape},
		{Path: "/d", Code: schema.CodeInvalidType},
	}
	assert.Equal(t, "invalid_type at /a; required at /b; invalid_shape at /c; ... (total 4)", iss.Error())
}

func TestDuplicateKeys(t *testing.T) {
	iss, err := schema.DuplicateKeys([]byte(`{
		"version": "3.2.0",
		"colorNotes": [{"b": 1, "x": 0}, {"b": 2, "x": 1, "x": 2}],
		"customData": {"a": {"k": 1, "k": 2}, "a2": [[{"z": 0, "z": 0}]]},
		"version": "3.0.0"
	}`))
	require.NoError(t, err)
	paths := make([]string, len(iss))
	for i, it := range iss {
		assert.Equal(t, schema.CodeDuplicateKey, it.Code)
		paths[i] = it.Path
	}
	assert.Equal(t, []string{"/colorNotes/1/x", "/customData/a/k", "/customData/a2/0/0/z", "/version"}, paths)

	iss, err = schema.DuplicateKeys([]byte(`{"a": [1, {"a": 2}], "b": {"a": 3}}`))
	require.NoError(t, err)
	assert.Empty(t, iss)

	_, err = schema.DuplicateKeys([]byte(`{"a": `))
	assert.Error(t, err)
}
