package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/beatmap"
	v2 "github.com/reoring/bsmap/beatmap/v2"
	v3 "github.com/reoring/bsmap/beatmap/v3"
	"github.com/reoring/bsmap/colorscheme"
	"github.com/reoring/bsmap/convert"
)

func TestOldChromaRGB(t *testing.T) {
	assert.Equal(t, []any{1.0, 0.0, 0.0}, convert.OldChromaRGB(2000000000+0xff0000))
	assert.Equal(t, []any{0.0, 0.0, 1.0}, convert.OldChromaRGB(2000000000+0x0000ff))
}

func TestOgChromaToChromaV2(t *testing.T) {
	d := v2.NewDifficulty(beatmap.Partial{"_events": []any{
		map[string]any{"_time": 0, "_type": 1, "_value": 2000000000 + 0xff0000},
		map[string]any{"_time": 1, "_type": 1, "_value": 1},
		map[string]any{"_time": 1, "_type": 2, "_value": 5},
		map[string]any{"_time": 2, "_type": 3, "_value": 4},
		map[string]any{"_time": 3, "_type": 1, "_value": 0},
		map[string]any{"_time": 4, "_type": 2, "_value": 1,
			"_customData": map[string]any{"_color": []any{0, 1, 0}}},
	}})

	removed := convert.OgChromaToChromaV2(d, "DefaultEnvironment")
	assert.Equal(t, 1, removed)

	evs := d.Events()
	require.Len(t, evs, 5)
	assert.Equal(t, []any{1.0, 0.0, 0.0}, evs[0].CustomData()["_color"])
	left := colorscheme.ForEnvironment("DefaultEnvironment").EnvColorLeft.RGB()
	assert.Equal(t, left, evs[1].CustomData()["_color"])
	assert.Equal(t, 0, evs[2].Value())
	assert.False(t, evs[2].CustomData().Has("_color"))
	assert.False(t, evs[3].CustomData().Has("_color"))
	assert.Equal(t, []any{0.0, 1.0, 0.0}, evs[4].CustomData()["_color"])
}

func TestOgChromaUsesV3Key(t *testing.T) {
	d := v3.NewDifficulty(beatmap.Partial{"basicBeatmapEvents": []any{
		map[string]any{"b": 0, "et": 0, "i": 1},
	}})
	convert.OgChromaToChromaV2(d, "KDAEnvironment")
	ev := d.BasicEvents()[0]
	assert.Equal(t, colorscheme.ForEnvironment("KDAEnvironment").EnvColorRight.RGB(), ev.CustomData()["color"])
}
