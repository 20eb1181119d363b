package patch

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/internal/logging"
	"github.com/reoring/bsmap/timing"
)

type fakeFilterer interface {
	FilterFakes(keep func(time float64) bool) int
}

// RemoveOutsidePlayable drops every object timed before beat 0 or after the
// end of the audio. A non-positive audio length or a nil bpm only drops
// negative times. It returns the number of objects removed.
func RemoveOutsidePlayable(d beatmap.Difficulty, bpm *timing.BPM, audioLength float64) int {
	log := logging.Tag("patch", "removeOutsidePlayable")
	var duration float64
	switch {
	case audioLength > 0 && bpm == nil:
		log.Warn().Float64("audioLength", audioLength).Msg("no bpm given, keeping objects past the end of the audio")
	case audioLength > 0:
		duration = bpm.ToBeatTime(audioLength, true)
	}
	inside := func(t float64) bool {
		if duration > 0 {
			return t >= 0 && t <= duration
		}
		return t >= 0
	}
	keep := func(o beatmap.BaseObject) bool { return inside(o.Time()) }

	total := 0
	for _, kind := range beatmap.Kinds {
		n := d.Filter(kind, keep)
		log.Debug().Stringer("kind", kind).Int("removed", n).Msg("removing outside playable objects")
		total += n
	}
	if f, ok := d.(fakeFilterer); ok {
		n := f.FilterFakes(inside)
		log.Debug().Int("removed", n).Msg("removing outside playable fake objects")
		total += n
	}
	return total
}
