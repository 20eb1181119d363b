package eventbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/eventbox"
)

func TestChunks(t *testing.T) {
	cases := []struct {
		name string
		n, c int
		want [][]int
	}{
		{"even", 8, 4, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}},
		{"remainder in last", 10, 3, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8, 9}}},
		{"zero chunks", 3, 0, [][]int{{0}, {1}, {2}}},
		{"too many chunks", 2, 5, [][]int{{0}, {1}}},
		{"empty", 0, 4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, eventbox.Chunks(tc.n, tc.c))
		})
	}
}

func TestSelectDivision(t *testing.T) {
	f := eventbox.Filter{Type: eventbox.TypeDivision, Chunks: 4, Peak: 50, Limit: 2}
	assert.Equal(t, []int{4, 5}, f.Select(16))

	f.Limit = 0
	assert.Equal(t, []int{4, 5, 6, 7}, f.Select(16))

	f.Peak = 0
	assert.Equal(t, []int{0, 1, 2, 3}, f.Select(16))

	f.Peak = 100
	assert.Equal(t, []int{12, 13, 14, 15}, f.Select(16))

	f.Peak, f.Param = 51, 2
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, f.Select(16))
}

func TestSelectStepAndOffset(t *testing.T) {
	f := eventbox.Filter{Type: eventbox.TypeStepAndOffset, Peak: 1, Param: 2}
	assert.Equal(t, []int{1, 3, 5, 7}, f.Select(8))

	f.Param = 0
	assert.Equal(t, []int{1, 2, 3}, f.Select(4))

	f.Peak = 9
	assert.Empty(t, f.Select(4))
}

func TestReverseBeforeLimit(t *testing.T) {
	f := eventbox.Filter{Type: eventbox.TypeDivision, Chunks: 4, Peak: 50, Reverse: true, Limit: 2}
	assert.Equal(t, []int{7, 6}, f.Select(16))
}

func TestOffsets(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, eventbox.Distribution{Width: 3}.Offsets(3))

	wave := eventbox.Distribution{Width: 2, Type: eventbox.DistributionWave}
	assert.InDeltaSlice(t, []float64{0, 1, 2}, wave.Offsets(3), 1e-9)
	assert.Equal(t, []float64{0}, wave.Offsets(1))

	eased := eventbox.Distribution{Width: 4, Type: eventbox.DistributionStep, Easing: 1}
	assert.InDeltaSlice(t, []float64{0, 1, 4}, eased.Offsets(3), 1e-9)
}

func TestStepWindow(t *testing.T) {
	assert.Equal(t, 3.0, eventbox.StepWindow(1, []float64{0, 3, 2}))
	assert.Equal(t, 5.0, eventbox.StepWindow(5, []float64{0, 3}))
	assert.Equal(t, 1.5, eventbox.StepWindow(1.5, nil))
}

func TestPlaceAndExpand(t *testing.T) {
	f := eventbox.Filter{Type: eventbox.TypeStepAndOffset, Peak: 0, Param: 2}
	d := eventbox.Distribution{Width: 1, Type: eventbox.DistributionWave}
	places := eventbox.Place(f, d, 4)
	require.Len(t, places, 2)
	assert.Equal(t, eventbox.Placement{Light: 0, Order: 0, Offset: 0}, places[0])
	assert.Equal(t, eventbox.Placement{Light: 2, Order: 1, Offset: 1}, places[1])

	hits := eventbox.Expand(10, places, []float64{0, 0.5})
	require.Len(t, hits, 4)
	assert.Equal(t, eventbox.Hit{Light: 2, Event: 1, Time: 11.5}, hits[3])
	assert.Equal(t, 10.5, hits[1].Time)
}
