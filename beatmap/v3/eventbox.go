package v3

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/eventbox"
	"github.com/reoring/bsmap/schema"
)

// boxSpec describes one light event box kind.
type boxSpec[B beatmap.BaseObject] struct {
	table     *schema.Table
	eventsKey string
	newBase   func(beatmap.Partial) B
}

// eventBox holds the filter and the light events of one box. The filter and
// the events are removed from the record and composed back by ToObject.
type eventBox[B beatmap.BaseObject] struct {
	beatmap.Object
	spec   *boxSpec[B]
	filter *IndexFilter
	events []B
}

func newEventBox[B beatmap.BaseObject](spec *boxSpec[B], p beatmap.Partial) eventBox[B] {
	b := eventBox[B]{Object: beatmap.NewObject(spec.table, p), spec: spec}
	rec := b.Record()
	fm, _ := rec["f"].(map[string]any)
	delete(rec, "f")
	b.filter = NewIndexFilter(fm)
	b.events = beatmap.Build(rec, spec.eventsKey, spec.newBase)
	if b.BeatDistributionType() == eventbox.DistributionStep {
		b.SetBeatDistribution(eventbox.StepWindow(b.BeatDistribution(), b.times()))
	}
	return b
}

func (b *eventBox[B]) times() []float64 {
	out := make([]float64, len(b.events))
	for i, e := range b.events {
		out[i] = e.Time()
	}
	return out
}

func (b *eventBox[B]) IndexFilter() beatmap.IndexFilter { return b.filter }
func (b *eventBox[B]) Filter() *IndexFilter             { return b.filter }
func (b *eventBox[B]) SetFilter(f *IndexFilter)         { b.filter = f }
func (b *eventBox[B]) BeatDistribution() float64        { return b.Float("beatDistribution") }
func (b *eventBox[B]) SetBeatDistribution(v float64)    { b.Set("beatDistribution", v) }
func (b *eventBox[B]) BeatDistributionType() int        { return b.Int("beatDistributionType") }
func (b *eventBox[B]) SetBeatDistributionType(v int)    { b.Set("beatDistributionType", v) }
func (b *eventBox[B]) Easing() int                      { return b.Int("easing") }
func (b *eventBox[B]) SetEasing(v int)                  { b.Set("easing", v) }
func (b *eventBox[B]) AffectFirst() bool                { return b.Bool("affectFirst") }
func (b *eventBox[B]) SetAffectFirst(v bool)            { b.SetFlag("affectFirst", v) }

// Bases returns the typed light events of the box.
func (b *eventBox[B]) Bases() []B { return b.events }

func (b *eventBox[B]) SetBases(events []B) { b.events = events }

// Events returns the light events as base objects.
func (b *eventBox[B]) Events() []beatmap.BaseObject {
	return beatmap.Upcast(b.events, func(e B) beatmap.BaseObject { return e })
}

// Distribution spreads the events in time across the selected lights.
func (b *eventBox[B]) Distribution() eventbox.Distribution {
	return eventbox.Distribution{Width: b.BeatDistribution(), Type: b.BeatDistributionType(), Easing: b.Easing()}
}

func (b *eventBox[B]) walk(at schema.PathRef, fn func(schema.PathRef, beatmap.Entity)) {
	fn(at, b)
	fn(at.Field("f"), b.filter)
	beatmap.WalkSlice(at, b.spec.eventsKey, b.events, fn)
}

// ToObject composes the box with its filter and events.
func (b *eventBox[B]) ToObject() map[string]any {
	out := b.Object.ToObject()
	out["f"] = b.filter.ToObject()
	out[b.spec.eventsKey] = beatmap.ToObjects(b.events)
	return out
}

// box is the constraint satisfied by every concrete event box.
type box interface {
	beatmap.EventBox
	walk(schema.PathRef, func(schema.PathRef, beatmap.Entity))
}

// eventBoxGroup addresses one light group with a list of boxes.
type eventBoxGroup[X box] struct {
	beatmap.Object
	boxes []X
}

func newEventBoxGroup[X box](t *schema.Table, p beatmap.Partial, newBox func(beatmap.Partial) X) eventBoxGroup[X] {
	g := eventBoxGroup[X]{Object: beatmap.NewObject(t, p)}
	g.boxes = beatmap.Build(g.Record(), "e", newBox)
	return g
}

func (g *eventBoxGroup[X]) ID() int     { return g.Int("id") }
func (g *eventBoxGroup[X]) SetID(v int) { g.Set("id", v) }

// EventBoxes returns the typed boxes of the group.
func (g *eventBoxGroup[X]) EventBoxes() []X { return g.boxes }

func (g *eventBoxGroup[X]) SetEventBoxes(boxes []X) { g.boxes = boxes }

// Boxes returns the event boxes of the group.
func (g *eventBoxGroup[X]) Boxes() []beatmap.EventBox {
	return beatmap.Upcast(g.boxes, func(x X) beatmap.EventBox { return x })
}

func (g *eventBoxGroup[X]) walk(at schema.PathRef, fn func(schema.PathRef, beatmap.Entity)) {
	fn(at, g)
	base := at.Field("e")
	for i, b := range g.boxes {
		b.walk(base.Index(i), fn)
	}
}

// ToObject composes the group with its boxes.
func (g *eventBoxGroup[X]) ToObject() map[string]any {
	out := g.Object.ToObject()
	out["e"] = beatmap.ToObjects(g.boxes)
	return out
}
