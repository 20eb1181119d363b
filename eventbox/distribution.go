package eventbox

import (
	"slices"

	"github.com/reoring/bsmap/easing"
)

const (
	DistributionNone = 0
	DistributionWave = 1
	DistributionStep = 2
)

// Distribution spreads a value (beat offset, rotation, translation) across
// the selected indices of a box.
type Distribution struct {
	Width  float64
	Type   int
	Easing int
}

// Offsets returns one offset per selected index. Type 0 yields zeros; the
// other types ease i/(m-1) across Width.
func (d Distribution) Offsets(m int) []float64 {
	out := make([]float64, m)
	if d.Type == DistributionNone || m <= 1 {
		return out
	}
	ease := easing.ForEventBox(d.Easing)
	for i := range out {
		out[i] = d.Width * ease(float64(i)/float64(m-1))
	}
	return out
}

// StepWindow clamps a step distribution window so it is never shorter than
// the latest sub-event time.
func StepWindow(w float64, times []float64) float64 {
	if len(times) == 0 {
		return w
	}
	return max(w, slices.Max(times))
}

// Placement is one selected light with its beat offset.
type Placement struct {
	Light  int
	Order  int
	Offset float64
}

// Place applies the filter to n lights and the distribution to the result.
func Place(f Filter, d Distribution, n int) []Placement {
	sel := f.Select(n)
	offs := d.Offsets(len(sel))
	out := make([]Placement, len(sel))
	for i, light := range sel {
		out[i] = Placement{Light: light, Order: i, Offset: offs[i]}
	}
	return out
}

// Hit is a single sub-event firing on a single light.
type Hit struct {
	Box   int
	Light int
	Event int
	Time  float64
}

// Expand crosses placements with sub-event times relative to groupTime.
// Hits are ordered by placement, then by sub-event.
func Expand(groupTime float64, places []Placement, eventTimes []float64) []Hit {
	out := make([]Hit, 0, len(places)*len(eventTimes))
	for _, p := range places {
		for ei, t := range eventTimes {
			out = append(out, Hit{
				Light: p.Light,
				Event: ei,
				Time:  groupTime + p.Offset + t,
			})
		}
	}
	return out
}
