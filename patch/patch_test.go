package patch_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/beatmap"
	v2 "github.com/reoring/bsmap/beatmap/v2"
	v3 "github.com/reoring/bsmap/beatmap/v3"
	"github.com/reoring/bsmap/i18n"
	"github.com/reoring/bsmap/internal/logging"
	"github.com/reoring/bsmap/patch"
	"github.com/reoring/bsmap/timing"
)

func TestCorrectLogsTranslatedMessage(t *testing.T) {
	prev := logging.L()
	t.Cleanup(func() {
		logging.Set(prev)
		i18n.SetLanguage("en")
	})

	var buf bytes.Buffer
	logging.Set(zerolog.New(&buf))

	d := v2.NewDifficulty(beatmap.Partial{
		"_notes": []any{map[string]any{"_time": 1, "_type": 2.6}},
	})
	require.Len(t, patch.Correct(d), 1)
	assert.Contains(t, buf.String(), `"message":"corrected 2.6 to 3"`)
	assert.Contains(t, buf.String(), `"path":"/_notes/0/_type"`)

	buf.Reset()
	i18n.SetLanguage("ja")
	d = v2.NewDifficulty(beatmap.Partial{
		"_notes": []any{map[string]any{"_time": 1, "_type": 2.6}},
	})
	patch.Correct(d)
	assert.NotContains(t, buf.String(), `"message":"corrected 2.6 to 3"`)
	assert.Contains(t, buf.String(), "2.6")
}

func TestCorrectV2(t *testing.T) {
	d := v2.NewDifficulty(beatmap.Partial{
		"_notes": []any{
			map[string]any{"_time": math.NaN(), "_type": 2, "_lineIndex": 1.6},
			map[string]any{"_time": 1, "_type": 3},
		},
		"_sliders": []any{map[string]any{"_colorType": 3}},
		"_events":  []any{map[string]any{"_value": "on", "_floatValue": math.Inf(1)}},
		"_obstacles": []any{
			map[string]any{"_duration": "long", "_customData": []any{}},
		},
	})
	fixed := patch.Correct(d)

	paths := make([]string, len(fixed))
	for i, c := range fixed {
		paths[i] = c.Path
	}
	assert.ElementsMatch(t, []string{
		"/_notes/0/_time", "/_notes/0/_lineIndex", "/_notes/0/_type",
		"/_sliders/0/_colorType",
		"/_obstacles/0/_duration", "/_obstacles/0/_customData",
		"/_events/0/_value", "/_events/0/_floatValue",
	}, paths)

	n := d.Notes()[0]
	assert.Equal(t, 0.0, n.Time())
	assert.Equal(t, 0, n.Color())
	assert.Equal(t, 2, n.PosX())
	assert.Equal(t, 3, d.Notes()[1].Color())
	assert.Equal(t, 1.0, d.Obstacles()[0].Duration())
	assert.Equal(t, 1.0, d.Events()[0].FloatValue())

	assert.Empty(t, patch.Correct(d))
}

func TestCorrectV3NestedEntities(t *testing.T) {
	d := v3.NewDifficulty(beatmap.Partial{
		"lightColorEventBoxGroups": []any{map[string]any{
			"g": "x",
			"e": []any{map[string]any{
				"f": map[string]any{"f": 7},
				"e": []any{map[string]any{"c": 9, "s": "bright"}},
			}},
		}},
	})
	fixed := patch.Correct(d)
	paths := make([]string, len(fixed))
	for i, c := range fixed {
		paths[i] = c.Path
	}
	assert.ElementsMatch(t, []string{
		"/lightColorEventBoxGroups/0/g",
		"/lightColorEventBoxGroups/0/e/0/f/f",
		"/lightColorEventBoxGroups/0/e/0/e/0/c",
		"/lightColorEventBoxGroups/0/e/0/e/0/s",
	}, paths)
	box := d.LightColorEventBoxGroups()[0].Boxes()[0]
	assert.Equal(t, 1, box.IndexFilter().Filter().Type)
}

func TestRemoveOutsidePlayableV3(t *testing.T) {
	d := v3.NewDifficulty(beatmap.Partial{
		"colorNotes": []any{
			map[string]any{"b": -1}, map[string]any{"b": 0}, map[string]any{"b": 8}, map[string]any{"b": 9},
		},
		"basicBeatmapEvents":       []any{map[string]any{"b": 100}},
		"lightColorEventBoxGroups": []any{map[string]any{"b": 4}},
		"customData": map[string]any{
			"fakeBombNotes": []any{map[string]any{"b": 12}, map[string]any{"b": 1}},
		},
	})
	bpm, err := timing.New(120)
	require.NoError(t, err)

	removed := patch.RemoveOutsidePlayable(d, bpm, 4)
	assert.Equal(t, 4, removed)
	assert.Len(t, d.ColorNotes(), 2)
	assert.Empty(t, d.BasicEvents())
	assert.Len(t, d.LightColorEventBoxGroups(), 1)
	assert.Len(t, d.CustomData()["fakeBombNotes"], 1)
}

func TestRemoveOutsidePlayableWithoutDuration(t *testing.T) {
	d := v2.NewDifficulty(beatmap.Partial{
		"_notes":  []any{map[string]any{"_time": -0.5}, map[string]any{"_time": 500}},
		"_events": []any{map[string]any{"_time": -2, "_type": 100, "_floatValue": 90}},
	})
	bpm, err := timing.New(120)
	require.NoError(t, err)

	removed := patch.RemoveOutsidePlayable(d, bpm, 0)
	assert.Equal(t, 2, removed)
	assert.Len(t, d.Notes(), 1)
	assert.Empty(t, d.Events())
}

func TestRemoveOutsidePlayableNilBPM(t *testing.T) {
	d := v2.NewDifficulty(beatmap.Partial{
		"_notes": []any{map[string]any{"_time": -1}, map[string]any{"_time": 2}, map[string]any{"_time": 900}},
	})

	var removed int
	require.NotPanics(t, func() { removed = patch.RemoveOutsidePlayable(d, nil, 30) })
	assert.Equal(t, 1, removed)
	assert.Len(t, d.Notes(), 2)
}
