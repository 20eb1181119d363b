package v3

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/schema"
)

const DefaultFileName = "UnnamedDifficulty.dat"

// FakeKeys are the custom-data arrays holding non-interactable objects.
var FakeKeys = []string{"fakeColorNotes", "fakeBombNotes", "fakeObstacles", "fakeBurstSliders"}

// Difficulty is a 3.x difficulty file.
type Difficulty struct {
	beatmap.Object
	fileName string

	bpmEvents                      []*BPMEvent
	rotationEvents                 []*RotationEvent
	colorNotes                     []*ColorNote
	bombNotes                      []*BombNote
	obstacles                      []*Obstacle
	sliders                        []*Slider
	burstSliders                   []*BurstSlider
	waypoints                      []*Waypoint
	basicEvents                    []*BasicEvent
	colorBoostEvents               []*ColorBoostEvent
	lightColorEventBoxGroups       []*LightColorEventBoxGroup
	lightRotationEventBoxGroups    []*LightRotationEventBoxGroup
	lightTranslationEventBoxGroups []*LightTranslationEventBoxGroup
}

var _ beatmap.Difficulty = (*Difficulty)(nil)

// NewDifficulty builds a difficulty from a decoded document; missing
// collections are empty.
func NewDifficulty(p beatmap.Partial) *Difficulty {
	d := &Difficulty{Object: beatmap.NewObject(DifficultyTable, p), fileName: DefaultFileName}
	rec := d.Record()
	d.bpmEvents = beatmap.Build(rec, "bpmEvents", NewBPMEvent)
	d.rotationEvents = beatmap.Build(rec, "rotationEvents", NewRotationEvent)
	d.colorNotes = beatmap.Build(rec, "colorNotes", NewColorNote)
	d.bombNotes = beatmap.Build(rec, "bombNotes", NewBombNote)
	d.obstacles = beatmap.Build(rec, "obstacles", NewObstacle)
	d.sliders = beatmap.Build(rec, "sliders", NewSlider)
	d.burstSliders = beatmap.Build(rec, "burstSliders", NewBurstSlider)
	d.waypoints = beatmap.Build(rec, "waypoints", NewWaypoint)
	d.basicEvents = beatmap.Build(rec, "basicBeatmapEvents", NewBasicEvent)
	d.colorBoostEvents = beatmap.Build(rec, "colorBoostBeatmapEvents", NewColorBoostEvent)
	d.lightColorEventBoxGroups = beatmap.Build(rec, "lightColorEventBoxGroups", NewLightColorEventBoxGroup)
	d.lightRotationEventBoxGroups = beatmap.Build(rec, "lightRotationEventBoxGroups", NewLightRotationEventBoxGroup)
	d.lightTranslationEventBoxGroups = beatmap.Build(rec, "lightTranslationEventBoxGroups", NewLightTranslationEventBoxGroup)
	return d
}

func (d *Difficulty) Family() beatmap.Family { return beatmap.FamilyV3 }
func (d *Difficulty) Version() string        { return d.Text("version") }
func (d *Difficulty) SetVersion(v string)    { d.Set("version", v) }
func (d *Difficulty) FileName() string       { return d.fileName }
func (d *Difficulty) SetFileName(v string)   { d.fileName = v }

// UseNormalEventsAsCompatibleEvents reports whether basic events drive
// environments that also support event boxes.
func (d *Difficulty) UseNormalEventsAsCompatibleEvents() bool {
	return d.Bool("useNormalEventsAsCompatibleEvents")
}

func (d *Difficulty) SetUseNormalEventsAsCompatibleEvents(v bool) {
	d.Set("useNormalEventsAsCompatibleEvents", v)
}

// Keywords returns the basic event types enabled per keyword.
func (d *Difficulty) Keywords() map[string][]int {
	out := map[string][]int{}
	kw, _ := d.Get("basicEventTypesWithKeywords").(map[string]any)
	list, _ := kw["d"].([]any)
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		k, _ := m["k"].(string)
		types, _ := schema.AsFloats(m["e"])
		ints := make([]int, len(types))
		for i, t := range types {
			ints[i] = int(t)
		}
		out[k] = ints
	}
	return out
}

// AddColorNotes appends one color note per partial.
func (d *Difficulty) AddColorNotes(ps ...beatmap.Partial) {
	d.colorNotes = append(d.colorNotes, CreateColorNote(ps...)...)
}

// AddBombNotes appends one bomb per partial.
func (d *Difficulty) AddBombNotes(ps ...beatmap.Partial) {
	d.bombNotes = append(d.bombNotes, CreateBombNote(ps...)...)
}

// AddObstacles appends one wall per partial.
func (d *Difficulty) AddObstacles(ps ...beatmap.Partial) {
	d.obstacles = append(d.obstacles, CreateObstacle(ps...)...)
}

// AddBasicEvents appends one basic event per partial.
func (d *Difficulty) AddBasicEvents(ps ...beatmap.Partial) {
	d.basicEvents = append(d.basicEvents, CreateBasicEvent(ps...)...)
}

// AddBPMEvents appends one BPM change per partial.
func (d *Difficulty) AddBPMEvents(ps ...beatmap.Partial) {
	d.bpmEvents = append(d.bpmEvents, CreateBPMEvent(ps...)...)
}

// AddLightColorEventBoxGroups appends one light color group per partial.
func (d *Difficulty) AddLightColorEventBoxGroups(ps ...beatmap.Partial) {
	d.lightColorEventBoxGroups = append(d.lightColorEventBoxGroups, CreateLightColorEventBoxGroup(ps...)...)
}

func (d *Difficulty) BPMEvents() []beatmap.BPMEvent {
	return beatmap.Upcast(d.bpmEvents, func(e *BPMEvent) beatmap.BPMEvent { return e })
}

func (d *Difficulty) RotationEvents() []beatmap.RotationEvent {
	return beatmap.Upcast(d.rotationEvents, func(e *RotationEvent) beatmap.RotationEvent { return e })
}

func (d *Difficulty) ColorNotes() []beatmap.ColorNote {
	return beatmap.Upcast(d.colorNotes, func(n *ColorNote) beatmap.ColorNote { return n })
}

func (d *Difficulty) BombNotes() []beatmap.BombNote {
	return beatmap.Upcast(d.bombNotes, func(n *BombNote) beatmap.BombNote { return n })
}

func (d *Difficulty) Obstacles() []beatmap.Obstacle {
	return beatmap.Upcast(d.obstacles, func(o *Obstacle) beatmap.Obstacle { return o })
}

func (d *Difficulty) Sliders() []beatmap.Slider {
	return beatmap.Upcast(d.sliders, func(s *Slider) beatmap.Slider { return s })
}

func (d *Difficulty) BurstSliders() []beatmap.BurstSlider {
	return beatmap.Upcast(d.burstSliders, func(s *BurstSlider) beatmap.BurstSlider { return s })
}

func (d *Difficulty) Waypoints() []beatmap.Waypoint {
	return beatmap.Upcast(d.waypoints, func(w *Waypoint) beatmap.Waypoint { return w })
}

// BasicEvents returns the basic beatmap events.
func (d *Difficulty) BasicEvents() []beatmap.Event {
	return beatmap.Upcast(d.basicEvents, func(e *BasicEvent) beatmap.Event { return e })
}

func (d *Difficulty) ColorBoostEvents() []beatmap.ColorBoostEvent {
	return beatmap.Upcast(d.colorBoostEvents, func(e *ColorBoostEvent) beatmap.ColorBoostEvent { return e })
}

func (d *Difficulty) LightColorEventBoxGroups() []beatmap.EventBoxGroup {
	return beatmap.Upcast(d.lightColorEventBoxGroups, func(g *LightColorEventBoxGroup) beatmap.EventBoxGroup { return g })
}

func (d *Difficulty) LightRotationEventBoxGroups() []beatmap.EventBoxGroup {
	return beatmap.Upcast(d.lightRotationEventBoxGroups, func(g *LightRotationEventBoxGroup) beatmap.EventBoxGroup { return g })
}

func (d *Difficulty) LightTranslationEventBoxGroups() []beatmap.EventBoxGroup {
	return beatmap.Upcast(d.lightTranslationEventBoxGroups, func(g *LightTranslationEventBoxGroup) beatmap.EventBoxGroup { return g })
}

// Filter applies keep to one collection and reports how many were removed.
func (d *Difficulty) Filter(kind beatmap.ObjectKind, keep func(beatmap.BaseObject) bool) int {
	var n int
	switch kind {
	case beatmap.KindBPMEvent:
		d.bpmEvents, n = beatmap.FilterSlice(d.bpmEvents, keep)
	case beatmap.KindRotationEvent:
		d.rotationEvents, n = beatmap.FilterSlice(d.rotationEvents, keep)
	case beatmap.KindColorNote:
		d.colorNotes, n = beatmap.FilterSlice(d.colorNotes, keep)
	case beatmap.KindBombNote:
		d.bombNotes, n = beatmap.FilterSlice(d.bombNotes, keep)
	case beatmap.KindObstacle:
		d.obstacles, n = beatmap.FilterSlice(d.obstacles, keep)
	case beatmap.KindSlider:
		d.sliders, n = beatmap.FilterSlice(d.sliders, keep)
	case beatmap.KindBurstSlider:
		d.burstSliders, n = beatmap.FilterSlice(d.burstSliders, keep)
	case beatmap.KindWaypoint:
		d.waypoints, n = beatmap.FilterSlice(d.waypoints, keep)
	case beatmap.KindBasicEvent:
		d.basicEvents, n = beatmap.FilterSlice(d.basicEvents, keep)
	case beatmap.KindColorBoostEvent:
		d.colorBoostEvents, n = beatmap.FilterSlice(d.colorBoostEvents, keep)
	case beatmap.KindLightColorEventBoxGroup:
		d.lightColorEventBoxGroups, n = beatmap.FilterSlice(d.lightColorEventBoxGroups, keep)
	case beatmap.KindLightRotationEventBoxGroup:
		d.lightRotationEventBoxGroups, n = beatmap.FilterSlice(d.lightRotationEventBoxGroups, keep)
	case beatmap.KindLightTranslationEventBoxGroup:
		d.lightTranslationEventBoxGroups, n = beatmap.FilterSlice(d.lightTranslationEventBoxGroups, keep)
	}
	return n
}

// FilterFakes applies keep to the raw fake-object arrays in custom data,
// reading each element's beat time, and reports how many were removed.
func (d *Difficulty) FilterFakes(keep func(time float64) bool) int {
	cd := d.CustomData()
	n := 0
	for _, k := range FakeKeys {
		list, ok := cd[k].([]any)
		if !ok {
			continue
		}
		out := list[:0]
		for _, e := range list {
			m, _ := e.(map[string]any)
			t, _ := schema.AsFloat(m["b"])
			if keep(t) {
				out = append(out, e)
			}
		}
		n += len(list) - len(out)
		cd[k] = out
	}
	return n
}

func walkGroups[G interface {
	beatmap.Entity
	walk(schema.PathRef, func(schema.PathRef, beatmap.Entity))
}](at schema.PathRef, key string, groups []G, fn func(schema.PathRef, beatmap.Entity)) {
	base := at.Field(key)
	for i, g := range groups {
		g.walk(base.Index(i), fn)
	}
}

// Walk visits the header at "/" and then every entity, event boxes,
// index filters and light events included.
func (d *Difficulty) Walk(fn func(schema.PathRef, beatmap.Entity)) {
	root := schema.Root()
	fn(root, d)
	beatmap.WalkSlice(root, "bpmEvents", d.bpmEvents, fn)
	beatmap.WalkSlice(root, "rotationEvents", d.rotationEvents, fn)
	beatmap.WalkSlice(root, "colorNotes", d.colorNotes, fn)
	beatmap.WalkSlice(root, "bombNotes", d.bombNotes, fn)
	beatmap.WalkSlice(root, "obstacles", d.obstacles, fn)
	beatmap.WalkSlice(root, "sliders", d.sliders, fn)
	beatmap.WalkSlice(root, "burstSliders", d.burstSliders, fn)
	beatmap.WalkSlice(root, "waypoints", d.waypoints, fn)
	beatmap.WalkSlice(root, "basicBeatmapEvents", d.basicEvents, fn)
	beatmap.WalkSlice(root, "colorBoostBeatmapEvents", d.colorBoostEvents, fn)
	walkGroups(root, "lightColorEventBoxGroups", d.lightColorEventBoxGroups, fn)
	walkGroups(root, "lightRotationEventBoxGroups", d.lightRotationEventBoxGroups, fn)
	walkGroups(root, "lightTranslationEventBoxGroups", d.lightTranslationEventBoxGroups, fn)
}

// Sort orders notes and sliders by time then lane, and the rest by time.
func (d *Difficulty) Sort() {
	beatmap.SortObjects(d.bpmEvents)
	beatmap.SortObjects(d.rotationEvents)
	beatmap.SortNotes(d.colorNotes)
	beatmap.SortNotes(d.bombNotes)
	beatmap.SortObjects(d.obstacles)
	beatmap.SortNotes(d.sliders)
	beatmap.SortNotes(d.burstSliders)
	beatmap.SortObjects(d.waypoints)
	beatmap.SortObjects(d.basicEvents)
	beatmap.SortObjects(d.colorBoostEvents)
	beatmap.SortObjects(d.lightColorEventBoxGroups)
	beatmap.SortObjects(d.lightRotationEventBoxGroups)
	beatmap.SortObjects(d.lightTranslationEventBoxGroups)
}

// ToObject composes the header with every collection.
func (d *Difficulty) ToObject() map[string]any {
	out := d.Object.ToObject()
	out["bpmEvents"] = beatmap.ToObjects(d.bpmEvents)
	out["rotationEvents"] = beatmap.ToObjects(d.rotationEvents)
	out["colorNotes"] = beatmap.ToObjects(d.colorNotes)
	out["bombNotes"] = beatmap.ToObjects(d.bombNotes)
	out["obstacles"] = beatmap.ToObjects(d.obstacles)
	out["sliders"] = beatmap.ToObjects(d.sliders)
	out["burstSliders"] = beatmap.ToObjects(d.burstSliders)
	out["waypoints"] = beatmap.ToObjects(d.waypoints)
	out["basicBeatmapEvents"] = beatmap.ToObjects(d.basicEvents)
	out["colorBoostBeatmapEvents"] = beatmap.ToObjects(d.colorBoostEvents)
	out["lightColorEventBoxGroups"] = beatmap.ToObjects(d.lightColorEventBoxGroups)
	out["lightRotationEventBoxGroups"] = beatmap.ToObjects(d.lightRotationEventBoxGroups)
	out["lightTranslationEventBoxGroups"] = beatmap.ToObjects(d.lightTranslationEventBoxGroups)
	return out
}
