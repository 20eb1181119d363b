package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeMap(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const legacyMap = `{
  "_version": "2.6.0",
  "_notes": [{"_time": 4, "_lineIndex": 1.6, "_type": 0}, {"_time": -1, "_type": 1}],
  "_sliders": [], "_obstacles": [], "_waypoints": [],
  "_events": [{"_time": 1, "_type": 0, "_value": 2016776960}, {"_time": 2, "_type": 0, "_value": 1}]
}`

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "Good.dat", legacyMap)
	writeMap(t, dir, "Bad.dat", `{"_version": "2.6.0", "_notes": {}}`)

	out, err := run(t, "--dir", dir, "check", "Good.dat")
	require.NoError(t, err)
	assert.Contains(t, out, "Good.dat: ok")

	out, err = run(t, "--dir", dir, "check", "Bad.dat")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "/_notes invalid_type")
}

func TestFix(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "Map.dat", legacyMap)

	out, err := run(t, "--dir", dir, "fix", "Map.dat", "--bpm", "120", "-o", "Fixed.dat")
	require.NoError(t, err)
	assert.Contains(t, out, "corrected 1 values")
	assert.Contains(t, out, "removed 1 objects")

	raw, err := os.ReadFile(filepath.Join(dir, "Fixed.dat"))
	require.NoError(t, err)
	notes := gjson.GetBytes(raw, "_notes").Array()
	require.Len(t, notes, 1)
	assert.Equal(t, 2.0, notes[0].Get("_lineIndex").Num)
}

func TestChroma(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "Map.dat", legacyMap)

	out, err := run(t, "--dir", dir, "chroma", "Map.dat")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 color events")

	raw, err := os.ReadFile(filepath.Join(dir, "Map.dat"))
	require.NoError(t, err)
	events := gjson.GetBytes(raw, "_events").Array()
	require.Len(t, events, 1)
	assert.Equal(t, []any{1.0, 1.0, 0.0}, events[0].Get("_customData._color").Value())
}

func TestOptimizeWithConfig(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "Map.dat", legacyMap)
	cfg := writeMap(t, dir, "bsmap.yaml", "save:\n  format: 2\n")

	_, err := run(t, "--config", cfg, "--dir", dir, "optimize", "Map.dat")
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(dir, "Map.dat"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"_events\"")
	assert.False(t, gjson.GetBytes(raw, "_notes.1._lineLayer").Exists())

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "version")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "Map.dat", `{"version": "3.2.0",
		"colorNotes": [{"b": 1}, {"b": 2}],
		"lightColorEventBoxGroups": [{"b": 1, "g": 2, "e": [{"e": [{"b": 0}, {"b": 1}]}]}]}`)

	out, err := run(t, "--dir", dir, "stats", "Map.dat")
	require.NoError(t, err)
	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "3.2.0", r.Version)
	assert.Equal(t, 2, r.Collections["colorNotes"])
	assert.Equal(t, 2, r.Color[2].Base)
	assert.Equal(t, 1, r.Color[2].EventBox)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bsmap (devel)\n", out)
}
