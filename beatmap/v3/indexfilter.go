package v3

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/eventbox"
)

// IndexFilter selects the lights of a group an event box applies to.
type IndexFilter struct {
	beatmap.Object
}

var _ beatmap.IndexFilter = (*IndexFilter)(nil)

// NewIndexFilter builds a filter from a partial record, filling defaults.
func NewIndexFilter(p beatmap.Partial) *IndexFilter {
	return &IndexFilter{beatmap.NewObject(IndexFilterTable, p)}
}

func (f *IndexFilter) Type() int         { return f.Int("type") }
func (f *IndexFilter) Reverse() bool     { return f.Bool("reverse") }
func (f *IndexFilter) SetReverse(v bool) { f.SetFlag("reverse", v) }

// Limit is the number of indices kept after reversing; 0 keeps all.
// Fractions are truncated.
func (f *IndexFilter) Limit() int { return int(f.Float("limit")) }

// Filter returns the selection parameters for the eventbox package.
func (f *IndexFilter) Filter() eventbox.Filter {
	return eventbox.Filter{
		Type:         f.Type(),
		Peak:         f.Int("peak"),
		Param:        f.Int("param"),
		Reverse:      f.Reverse(),
		Chunks:       f.Int("chunks"),
		Limit:        f.Limit(),
		LimitAffects: f.Int("limitAffects"),
		RandomType:   f.Int("randomType"),
		Seed:         f.Int("seed"),
	}
}
