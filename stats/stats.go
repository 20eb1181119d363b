// Package stats summarizes the light event box groups of a difficulty.
package stats

import (
	"slices"

	"github.com/reoring/bsmap/beatmap"
)

// Count tallies the groups sharing one light group id.
type Count struct {
	Total    int `json:"total" yaml:"total"`
	EventBox int `json:"eventBox" yaml:"eventBox"`
	Base     int `json:"base" yaml:"base"`
}

// CountEBG counts groups, boxes and base events per group id. Every id in
// seed is present in the result, with zero counts when unused.
func CountEBG(groups []beatmap.EventBoxGroup, seed ...int) map[int]Count {
	out := make(map[int]Count, len(seed))
	for _, id := range seed {
		out[id] = Count{}
	}
	for _, g := range groups {
		c := out[g.ID()]
		c.Total++
		for _, b := range g.Boxes() {
			c.EventBox++
			c.Base += len(b.Events())
		}
		out[g.ID()] = c
	}
	return out
}

func CountColorEBG(d beatmap.Difficulty, seed ...int) map[int]Count {
	return CountEBG(d.LightColorEventBoxGroups(), seed...)
}

func CountRotationEBG(d beatmap.Difficulty, seed ...int) map[int]Count {
	return CountEBG(d.LightRotationEventBoxGroups(), seed...)
}

func CountTranslationEBG(d beatmap.Difficulty, seed ...int) map[int]Count {
	return CountEBG(d.LightTranslationEventBoxGroups(), seed...)
}

// IDs returns the keys of a count map in ascending order.
func IDs(m map[int]Count) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
