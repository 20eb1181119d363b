package v2

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/schema"
)

// DefaultFileName names difficulties that were never given a file name.
const DefaultFileName = "UnnamedDifficulty.dat"

// Difficulty is a 2.x difficulty file. Bombs live alongside color notes in
// "_notes"; BPM changes, lane rotations and boosts live in "_events".
type Difficulty struct {
	beatmap.Object
	fileName string

	notes     []*Note
	sliders   []*Slider
	obstacles []*Obstacle
	events    []*Event
	waypoints []*Waypoint
}

var _ beatmap.Difficulty = (*Difficulty)(nil)

// NewDifficulty builds a difficulty from a decoded document; missing
// collections are empty.
func NewDifficulty(p beatmap.Partial) *Difficulty {
	d := &Difficulty{Object: beatmap.NewObject(DifficultyTable, p), fileName: DefaultFileName}
	rec := d.Record()
	d.notes = beatmap.Build(rec, "_notes", NewNote)
	d.sliders = beatmap.Build(rec, "_sliders", NewSlider)
	d.obstacles = beatmap.Build(rec, "_obstacles", NewObstacle)
	d.events = beatmap.Build(rec, "_events", NewEvent)
	d.waypoints = beatmap.Build(rec, "_waypoints", NewWaypoint)
	return d
}

func (d *Difficulty) Family() beatmap.Family { return beatmap.FamilyV2 }
func (d *Difficulty) Version() string        { return d.Text("version") }
func (d *Difficulty) SetVersion(v string)    { d.Set("version", v) }
func (d *Difficulty) FileName() string       { return d.fileName }
func (d *Difficulty) SetFileName(v string)   { d.fileName = v }

// Notes returns every note, bombs included.
func (d *Difficulty) Notes() []*Note { return d.notes }

// Events returns every event with its concrete type.
func (d *Difficulty) Events() []*Event { return d.events }

// AddNotes appends one note per partial, bombs included.
func (d *Difficulty) AddNotes(ps ...beatmap.Partial) {
	d.notes = append(d.notes, CreateNote(ps...)...)
}

// AddSliders appends one arc per partial.
func (d *Difficulty) AddSliders(ps ...beatmap.Partial) {
	d.sliders = append(d.sliders, CreateSlider(ps...)...)
}

// AddObstacles appends one wall per partial.
func (d *Difficulty) AddObstacles(ps ...beatmap.Partial) {
	d.obstacles = append(d.obstacles, CreateObstacle(ps...)...)
}

// AddEvents appends one event per partial.
func (d *Difficulty) AddEvents(ps ...beatmap.Partial) {
	d.events = append(d.events, CreateEvent(ps...)...)
}

// AddWaypoints appends one waypoint per partial.
func (d *Difficulty) AddWaypoints(ps ...beatmap.Partial) {
	d.waypoints = append(d.waypoints, CreateWaypoint(ps...)...)
}

func pick[T any](s []*Note, keep func(*Note) bool, conv func(*Note) T) []T {
	var out []T
	for _, n := range s {
		if keep(n) {
			out = append(out, conv(n))
		}
	}
	return out
}

func pickEvents[T any](s []*Event, keep func(*Event) bool, conv func(*Event) T) []T {
	var out []T
	for _, e := range s {
		if keep(e) {
			out = append(out, conv(e))
		}
	}
	return out
}

// ColorNotes returns the notes that are not bombs.
func (d *Difficulty) ColorNotes() []beatmap.ColorNote {
	return pick(d.notes, func(n *Note) bool { return !n.IsBomb() },
		func(n *Note) beatmap.ColorNote { return n })
}

// BombNotes returns the notes of type 3.
func (d *Difficulty) BombNotes() []beatmap.BombNote {
	return pick(d.notes, (*Note).IsBomb, func(n *Note) beatmap.BombNote { return n })
}

func (d *Difficulty) Obstacles() []beatmap.Obstacle {
	return beatmap.Upcast(d.obstacles, func(o *Obstacle) beatmap.Obstacle { return o })
}

func (d *Difficulty) Sliders() []beatmap.Slider {
	return beatmap.Upcast(d.sliders, func(s *Slider) beatmap.Slider { return s })
}

// BurstSliders is always empty; v2 has no burst sliders.
func (d *Difficulty) BurstSliders() []beatmap.BurstSlider { return nil }

func (d *Difficulty) Waypoints() []beatmap.Waypoint {
	return beatmap.Upcast(d.waypoints, func(w *Waypoint) beatmap.Waypoint { return w })
}

// BasicEvents returns every event, special types included.
func (d *Difficulty) BasicEvents() []beatmap.Event {
	return beatmap.Upcast(d.events, func(e *Event) beatmap.Event { return e })
}

// BPMEvents returns the type 100 events.
func (d *Difficulty) BPMEvents() []beatmap.BPMEvent {
	return pickEvents(d.events, (*Event).IsBPMChange, func(e *Event) beatmap.BPMEvent { return e })
}

// RotationEvents returns the early and late lane rotation events.
func (d *Difficulty) RotationEvents() []beatmap.RotationEvent {
	return pickEvents(d.events, (*Event).IsLaneRotation, func(e *Event) beatmap.RotationEvent { return e })
}

// ColorBoostEvents returns the type 5 events.
func (d *Difficulty) ColorBoostEvents() []beatmap.ColorBoostEvent {
	return pickEvents(d.events, (*Event).IsColorBoost, func(e *Event) beatmap.ColorBoostEvent { return e })
}

func (d *Difficulty) LightColorEventBoxGroups() []beatmap.EventBoxGroup       { return nil }
func (d *Difficulty) LightRotationEventBoxGroups() []beatmap.EventBoxGroup    { return nil }
func (d *Difficulty) LightTranslationEventBoxGroups() []beatmap.EventBoxGroup { return nil }

// Filter applies keep to one collection. Views that share a backing
// collection only filter their own members.
func (d *Difficulty) Filter(kind beatmap.ObjectKind, keep func(beatmap.BaseObject) bool) int {
	var n int
	within := func(member func(*Event) bool) func(beatmap.BaseObject) bool {
		return func(o beatmap.BaseObject) bool { return !member(o.(*Event)) || keep(o) }
	}
	switch kind {
	case beatmap.KindColorNote:
		d.notes, n = beatmap.FilterSlice(d.notes, func(o beatmap.BaseObject) bool {
			return o.(*Note).IsBomb() || keep(o)
		})
	case beatmap.KindBombNote:
		d.notes, n = beatmap.FilterSlice(d.notes, func(o beatmap.BaseObject) bool {
			return !o.(*Note).IsBomb() || keep(o)
		})
	case beatmap.KindObstacle:
		d.obstacles, n = beatmap.FilterSlice(d.obstacles, keep)
	case beatmap.KindSlider:
		d.sliders, n = beatmap.FilterSlice(d.sliders, keep)
	case beatmap.KindWaypoint:
		d.waypoints, n = beatmap.FilterSlice(d.waypoints, keep)
	case beatmap.KindBasicEvent:
		d.events, n = beatmap.FilterSlice(d.events, keep)
	case beatmap.KindBPMEvent:
		d.events, n = beatmap.FilterSlice(d.events, within((*Event).IsBPMChange))
	case beatmap.KindRotationEvent:
		d.events, n = beatmap.FilterSlice(d.events, within((*Event).IsLaneRotation))
	case beatmap.KindColorBoostEvent:
		d.events, n = beatmap.FilterSlice(d.events, within((*Event).IsColorBoost))
	}
	return n
}

// Walk visits the header at "/" and then every entity with its pointer.
func (d *Difficulty) Walk(fn func(schema.PathRef, beatmap.Entity)) {
	root := schema.Root()
	fn(root, d)
	beatmap.WalkSlice(root, "_notes", d.notes, fn)
	beatmap.WalkSlice(root, "_sliders", d.sliders, fn)
	beatmap.WalkSlice(root, "_obstacles", d.obstacles, fn)
	beatmap.WalkSlice(root, "_events", d.events, fn)
	beatmap.WalkSlice(root, "_waypoints", d.waypoints, fn)
}

// Sort orders notes and arcs by time then lane, and the rest by time.
func (d *Difficulty) Sort() {
	beatmap.SortNotes(d.notes)
	beatmap.SortNotes(d.sliders)
	beatmap.SortObjects(d.obstacles)
	beatmap.SortObjects(d.events)
	beatmap.SortObjects(d.waypoints)
}

// ToObject composes the header with every collection.
func (d *Difficulty) ToObject() map[string]any {
	out := d.Object.ToObject()
	out["_notes"] = beatmap.ToObjects(d.notes)
	out["_sliders"] = beatmap.ToObjects(d.sliders)
	out["_obstacles"] = beatmap.ToObjects(d.obstacles)
	out["_events"] = beatmap.ToObjects(d.events)
	out["_waypoints"] = beatmap.ToObjects(d.waypoints)
	return out
}
