package v3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/beatmap"
	v3 "github.com/reoring/bsmap/beatmap/v3"
	"github.com/reoring/bsmap/schema"
)

func sampleDifficulty() *v3.Difficulty {
	return v3.NewDifficulty(beatmap.Partial{
		"version":   "3.2.0",
		"bpmEvents": []any{map[string]any{"b": 0, "m": 120}},
		"colorNotes": []any{
			map[string]any{"b": 1, "x": 3, "y": 0, "c": 1, "d": 1},
			map[string]any{"b": 1, "x": 0, "y": 0, "c": 0, "d": 1},
		},
		"bombNotes":    []any{map[string]any{"b": 2, "x": 1, "y": 2}},
		"burstSliders": []any{map[string]any{"b": 3, "tb": 3.5, "sc": 4, "s": 0.5}},
		"basicBeatmapEvents": []any{
			map[string]any{"b": 0, "et": 1, "i": 3},
		},
		"lightColorEventBoxGroups": []any{map[string]any{
			"b": 8, "g": 2,
			"e": []any{map[string]any{
				"f": map[string]any{"f": 1, "p": 50, "c": 4, "l": 2},
				"w": 1, "d": 1,
				"e": []any{map[string]any{"b": 0, "c": 1}, map[string]any{"b": 0.5, "c": 0}},
			}},
		}},
		"basicEventTypesWithKeywords": map[string]any{
			"d": []any{map[string]any{"k": "drop", "e": []any{1, 4}}},
		},
		"customData": map[string]any{
			"fakeColorNotes": []any{map[string]any{"b": -1}, map[string]any{"b": 2}},
		},
	})
}

func TestEntityDefaults(t *testing.T) {
	o := v3.NewObstacle(nil)
	assert.Equal(t, map[string]any{
		"b": 0.0, "x": 0.0, "y": 0.0, "d": 1.0, "w": 1.0, "h": 1.0, "customData": map[string]any{},
	}, o.ToObject())

	bpm := v3.NewBPMEvent(beatmap.Partial{"bpm": 140, "m": 99})
	assert.Equal(t, 140.0, bpm.BPM())
	assert.True(t, bpm.IsValid())
	assert.False(t, v3.NewBPMEvent(nil).IsValid())
}

func TestBPMEventValidity(t *testing.T) {
	cases := []struct {
		bpm  float64
		want bool
	}{
		{bpm: 0, want: false},
		{bpm: 0.0001, want: true},
		{bpm: -1, want: false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, v3.NewBPMEvent(beatmap.Partial{"m": tc.bpm}).IsValid(), "bpm %v", tc.bpm)
	}
}

func TestRoundTripIdentity(t *testing.T) {
	ctors := map[string]func(beatmap.Partial) beatmap.Entity{
		"colorNote":  func(p beatmap.Partial) beatmap.Entity { return v3.NewColorNote(p) },
		"bombNote":   func(p beatmap.Partial) beatmap.Entity { return v3.NewBombNote(p) },
		"slider":     func(p beatmap.Partial) beatmap.Entity { return v3.NewSlider(p) },
		"burst":      func(p beatmap.Partial) beatmap.Entity { return v3.NewBurstSlider(p) },
		"rotation":   func(p beatmap.Partial) beatmap.Entity { return v3.NewRotationEvent(p) },
		"boost":      func(p beatmap.Partial) beatmap.Entity { return v3.NewColorBoostEvent(p) },
		"colorGroup": func(p beatmap.Partial) beatmap.Entity { return v3.NewLightColorEventBoxGroup(p) },
		"rotGroup":   func(p beatmap.Partial) beatmap.Entity { return v3.NewLightRotationEventBoxGroup(p) },
		"transGroup": func(p beatmap.Partial) beatmap.Entity { return v3.NewLightTranslationEventBoxGroup(p) },
	}
	partial := beatmap.Partial{
		"b": 4, "c": 1, "x": 2, "y": 1, "o": true,
		"e": []any{map[string]any{"w": 2, "l": []any{map[string]any{"b": 1}}}},
		"customData": map[string]any{"track": "a"},
	}
	for name, ctor := range ctors {
		obj := ctor(partial).ToObject()
		assert.Equal(t, obj, ctor(obj).ToObject(), name)
	}
}

func TestStepDistributionClampsWindow(t *testing.T) {
	box := v3.NewLightTranslationEventBox(beatmap.Partial{
		"w": 1, "d": 2,
		"l": []any{map[string]any{"b": 0}, map[string]any{"b": 3}},
	})
	assert.Equal(t, 3.0, box.BeatDistribution())

	wave := v3.NewLightTranslationEventBox(beatmap.Partial{
		"w": 1, "d": 1,
		"l": []any{map[string]any{"b": 3}},
	})
	assert.Equal(t, 1.0, wave.BeatDistribution())
}

func TestEventBoxComposition(t *testing.T) {
	d := sampleDifficulty()
	groups := d.LightColorEventBoxGroups()
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 2, g.ID())
	require.Len(t, g.Boxes(), 1)
	box := g.Boxes()[0]
	assert.Len(t, box.Events(), 2)

	f := box.IndexFilter().Filter()
	assert.Equal(t, []int{4, 5}, f.Select(16))

	obj := g.ToObject()
	boxes := obj["e"].([]any)
	boxObj := boxes[0].(map[string]any)
	assert.Contains(t, boxObj, "f")
	assert.Len(t, boxObj["e"], 2)
}

func TestScheduleGroup(t *testing.T) {
	d := sampleDifficulty()
	hits := beatmap.Schedule(d.LightColorEventBoxGroups()[0], 16)
	require.Len(t, hits, 4)
	assert.Equal(t, 4, hits[0].Light)
	assert.Equal(t, 8.0, hits[0].Time)
	assert.Equal(t, 8.5, hits[1].Time)
	assert.Equal(t, 5, hits[2].Light)
	assert.Equal(t, 9.0, hits[2].Time)
	assert.Equal(t, 9.5, hits[3].Time)
}

func TestWalkVisitsNestedEntities(t *testing.T) {
	d := sampleDifficulty()
	var paths []string
	d.Walk(func(at schema.PathRef, _ beatmap.Entity) { paths = append(paths, at.Pointer()) })
	assert.Equal(t, "/", paths[0])
	assert.Contains(t, paths, "/colorNotes/1")
	assert.Contains(t, paths, "/lightColorEventBoxGroups/0")
	assert.Contains(t, paths, "/lightColorEventBoxGroups/0/e/0")
	assert.Contains(t, paths, "/lightColorEventBoxGroups/0/e/0/f")
	assert.Contains(t, paths, "/lightColorEventBoxGroups/0/e/0/e/1")
}

func TestSortAndFilter(t *testing.T) {
	d := sampleDifficulty()
	d.Sort()
	notes := d.ColorNotes()
	assert.Equal(t, 0, notes[0].PosX())
	assert.Equal(t, 3, notes[1].PosX())

	removed := d.Filter(beatmap.KindColorNote, func(o beatmap.BaseObject) bool {
		return o.(beatmap.ColorNote).Color() == 1
	})
	assert.Equal(t, 1, removed)
	assert.Len(t, d.ColorNotes(), 1)
}

func TestFilterFakes(t *testing.T) {
	d := sampleDifficulty()
	n := d.FilterFakes(func(b float64) bool { return b >= 0 })
	assert.Equal(t, 1, n)
	assert.Len(t, d.CustomData()["fakeColorNotes"], 1)
}

func TestKeywords(t *testing.T) {
	d := sampleDifficulty()
	assert.Equal(t, map[string][]int{"drop": {1, 4}}, d.Keywords())
	assert.False(t, d.UseNormalEventsAsCompatibleEvents())
}

func TestOptimizedDocumentPassesCheck(t *testing.T) {
	d := sampleDifficulty()
	obj := d.ToObject()
	d.Table().Optimize(obj)
	notes := obj["colorNotes"].([]any)
	assert.NotContains(t, notes[1].(map[string]any), "y")

	_, err := schema.Check(obj, d.Table(), "difficulty", d.Version(), true)
	require.NoError(t, err)

	again := v3.NewDifficulty(obj).ToObject()
	assert.Equal(t, d.ToObject(), again)
}

func TestTranslationGroupsRequiredFrom320(t *testing.T) {
	d := sampleDifficulty()
	obj := d.ToObject()
	delete(obj, "lightTranslationEventBoxGroups")

	_, err := schema.Check(obj, d.Table(), "difficulty", "3.2.0", true)
	require.Error(t, err)
	iss, _ := schema.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/lightTranslationEventBoxGroups", iss[0].Path)

	obj["version"] = "3.0.0"
	_, err = schema.Check(obj, d.Table(), "difficulty", "3.0.0", true)
	require.NoError(t, err)
}

func TestBurstSliderValidity(t *testing.T) {
	d := sampleDifficulty()
	bs := d.BurstSliders()
	require.Len(t, bs, 1)
	assert.Equal(t, 4, bs[0].SliceCount())
	assert.True(t, bs[0].IsValid())
	bs[0].SetSquish(0)
	assert.False(t, bs[0].IsValid())
}
