// Package convert holds one-shot document transforms over the wrapper API.
package convert

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/colorscheme"
	"github.com/reoring/bsmap/internal/logging"
)

// OldChromaRGB unpacks a legacy chroma event value into 0-1 channels.
func OldChromaRGB(v int) []any {
	rgb := v - beatmap.OldChromaColorMinimum
	return []any{
		float64((rgb>>16)&0xff) / 255,
		float64((rgb>>8)&0xff) / 255,
		float64(rgb&0xff) / 255,
	}
}

// OgChromaToChromaV2 replaces legacy chroma color events with per-event
// custom-data colors. The color set by a legacy event carries over to later
// events of the same type; events without one get the environment light
// color for their value. Legacy color events are removed. It returns the
// number of events removed.
func OgChromaToChromaV2(d beatmap.Difficulty, environment string) int {
	log := logging.Tag("convert", "ogChromaToChromaV2")
	log.Info().Str("environment", environment).Msg("converting old chroma event values to chroma custom data")

	scheme := colorscheme.ForEnvironment(environment)
	left, right := scheme.EnvColorLeft.RGB(), scheme.EnvColorRight.RGB()
	key := "color"
	if d.Family() == beatmap.FamilyV2 {
		key = "_color"
	}

	current := map[int][]any{}
	for _, ev := range d.BasicEvents() {
		typ, val := ev.Type(), ev.Value()
		if beatmap.IsOldChromaValue(val) {
			current[typ] = OldChromaRGB(val)
			continue
		}
		color, carried := current[typ]
		if !carried {
			switch {
			case val >= beatmap.LightBlueOn && val <= beatmap.LightBlueTrans:
				color = right
			case val >= beatmap.LightRedOn && val <= beatmap.LightRedTrans:
				color = left
			default:
				color = []any{1.0, 1.0, 1.0}
			}
		}
		if val == beatmap.LightBlueTrans {
			ev.SetValue(beatmap.LightOff)
			val = beatmap.LightOff
		}
		if val != beatmap.LightOff {
			if cd := ev.CustomData(); !cd.Has(key) {
				cd[key] = append([]any(nil), color...)
			}
		}
	}
	removed := d.Filter(beatmap.KindBasicEvent, func(o beatmap.BaseObject) bool {
		return !beatmap.IsOldChromaValue(o.(beatmap.Event).Value())
	})
	log.Debug().Int("removed", removed).Msg("dropped legacy color events")
	return removed
}
