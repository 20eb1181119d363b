package beatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/beatmap"
	v3 "github.com/reoring/bsmap/beatmap/v3"
	"github.com/reoring/bsmap/schema"
)

var pointTable = schema.Object("test.point").
	Float("_time").Alias("time").
	Int("_x").Alias("posX").
	Int("_y").Alias("posY").
	CustomData("_customData").
	MustBuild()

func TestGridPositionModes(t *testing.T) {
	assert.Equal(t, beatmap.Vector2{1, 2}, beatmap.GridPosition(9, 7, nil, beatmap.ModVanilla))
	assert.Equal(t, beatmap.Vector2{-2, 0}, beatmap.GridPosition(-4, -1, nil, beatmap.ModVanilla))
	assert.Equal(t, beatmap.Vector2{0.5, 1.5}, beatmap.GridPosition(2500, 1500, nil, beatmap.ModMapping))
	assert.Equal(t, beatmap.Vector2{-3.5, 0}, beatmap.GridPosition(-1500, 0, nil, beatmap.ModMapping))

	o := beatmap.Vector2{0.25, 4}
	assert.Equal(t, o, beatmap.GridPosition(0, 0, &o, beatmap.ModNoodle))
	assert.Equal(t, beatmap.Vector2{-2, 0}, beatmap.GridPosition(0, 0, nil, beatmap.ModNoodle))
}

func TestDecodeME(t *testing.T) {
	assert.Equal(t, 1.5, beatmap.DecodeME(1500))
	assert.Equal(t, -1.0, beatmap.DecodeME(-1000))
	assert.Equal(t, 999.0, beatmap.DecodeME(999))
	assert.True(t, beatmap.IsMEValue(1000))
	assert.False(t, beatmap.IsMEValue(-999))
}

func TestMirrorHelpers(t *testing.T) {
	assert.Equal(t, 3, beatmap.MirrorPosX(0, 1))
	assert.Equal(t, 0, beatmap.MirrorPosX(2, 2))
	assert.Equal(t, 2000, beatmap.MirrorPosX(1000, 1))
	assert.Equal(t, 7, beatmap.MirrorDirection(6))
	assert.Equal(t, 1, beatmap.MirrorDirection(1))
	assert.Equal(t, 0, beatmap.MirrorColor(1))
	assert.Equal(t, 3, beatmap.MirrorColor(3))
}

func TestLaneRotation(t *testing.T) {
	assert.Equal(t, -60.0, beatmap.LaneRotation(0))
	assert.Equal(t, 60.0, beatmap.LaneRotation(7))
	assert.Equal(t, 0.0, beatmap.LaneRotation(1360))
	assert.Equal(t, -90.0, beatmap.LaneRotation(1270))
	assert.Equal(t, 0.0, beatmap.LaneRotation(42))
	assert.Equal(t, 3, beatmap.LaneRotationValue(-15))
	assert.Equal(t, 1450, beatmap.LaneRotationValue(90))
}

func TestObjectAccessors(t *testing.T) {
	o := beatmap.NewObject(pointTable, beatmap.Partial{"time": 2.5, "_x": 1.6, "posY": "bad"})
	assert.Equal(t, 2.5, o.Time())
	assert.Equal(t, 2, o.Int("posX"))
	assert.Equal(t, 0, o.Int("posY"))
	assert.Equal(t, "bad", o.Get("_y"))

	o.SetTime(4)
	assert.Equal(t, 4.0, o.Record()["_time"])

	o.Record()["_customData"] = "oops"
	assert.Equal(t, beatmap.CustomData{}, o.CustomData())
	o.CustomData()["k"] = 1
	assert.Equal(t, map[string]any{"k": 1.0}, o.ToObject()["_customData"])
}

func TestCreate(t *testing.T) {
	ctor := func(p beatmap.Partial) beatmap.Object { return beatmap.NewObject(pointTable, p) }
	one := beatmap.Create(ctor)
	require.Len(t, one, 1)
	assert.Equal(t, 0.0, one[0].Time())

	many := beatmap.Create(ctor, beatmap.Partial{"time": 1}, beatmap.Partial{"time": 2})
	assert.Len(t, many, 2)
}

func TestCustomDataHelpers(t *testing.T) {
	cd := beatmap.CustomData{"coordinates": []any{1, 2.5}, "track": nil, "bad": []any{"x"}}
	assert.True(t, cd.Has("coordinates"))
	assert.False(t, cd.Has("track"))
	assert.True(t, cd.HasAny("missing", "coordinates"))
	v, ok := cd.Vector2("coordinates")
	require.True(t, ok)
	assert.Equal(t, beatmap.Vector2{1, 2.5}, v)
	_, ok = cd.Vector2("bad")
	assert.False(t, ok)
}

func TestSortNotesUsesOverrideThenLanes(t *testing.T) {
	notes := v3.CreateColorNote(
		beatmap.Partial{"b": 1, "x": 3, "y": 0},
		beatmap.Partial{"b": 1, "x": 0, "y": 2},
		beatmap.Partial{"b": 0, "x": 2, "y": 0},
		beatmap.Partial{"b": 1, "x": 0, "y": 1},
	)
	beatmap.SortNotes(notes)
	got := make([][2]int, len(notes))
	for i, n := range notes {
		got[i] = [2]int{n.PosX(), n.PosY()}
	}
	assert.Equal(t, [][2]int{{2, 0}, {0, 1}, {0, 2}, {3, 0}}, got)

	a := v3.NewColorNote(beatmap.Partial{"b": 1, "x": 0, "customData": map[string]any{"coordinates": []any{1, 0}}})
	b := v3.NewColorNote(beatmap.Partial{"b": 1, "x": 3, "customData": map[string]any{"coordinates": []any{-1, 0}}})
	assert.Equal(t, 1, beatmap.SortNoteFn(a, b))
}

func TestSortIsStable(t *testing.T) {
	notes := v3.CreateColorNote(
		beatmap.Partial{"b": 1, "x": 1, "c": 0},
		beatmap.Partial{"b": 1, "x": 1, "c": 1},
	)
	beatmap.SortNotes(notes)
	assert.Equal(t, 0, notes[0].Color())
	assert.Equal(t, 1, notes[1].Color())
}

func TestFilterSlice(t *testing.T) {
	notes := v3.CreateColorNote(
		beatmap.Partial{"b": 1}, beatmap.Partial{"b": 2}, beatmap.Partial{"b": 3},
	)
	kept, removed := beatmap.FilterSlice(notes, func(o beatmap.BaseObject) bool { return o.Time() != 2 })
	assert.Equal(t, 1, removed)
	require.Len(t, kept, 2)
	assert.Equal(t, 3.0, kept[1].Time())
}

func TestGridValidity(t *testing.T) {
	assert.True(t, beatmap.InGrid(3, 2))
	assert.False(t, beatmap.InGrid(4, 0))
	assert.True(t, beatmap.IsValidWaypointDirection(9))
	assert.False(t, beatmap.IsValidWaypointDirection(8))
	assert.False(t, beatmap.IsValidDirection(9))
}
