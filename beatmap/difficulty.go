package beatmap

import "github.com/reoring/bsmap/schema"

// Family is the schema family carried by a difficulty container. It selects
// the adapter and the check table.
type Family int

const (
	FamilyV2 Family = 2
	FamilyV3 Family = 3
)

func (f Family) String() string {
	switch f {
	case FamilyV2:
		return "v2"
	case FamilyV3:
		return "v3"
	}
	return "unknown"
}

// ObjectKind names one entity collection of a difficulty.
type ObjectKind int

const (
	KindBPMEvent ObjectKind = iota
	KindRotationEvent
	KindColorNote
	KindBombNote
	KindObstacle
	KindSlider
	KindBurstSlider
	KindWaypoint
	KindBasicEvent
	KindColorBoostEvent
	KindLightColorEventBoxGroup
	KindLightRotationEventBoxGroup
	KindLightTranslationEventBoxGroup
)

// Kinds lists every collection kind.
var Kinds = []ObjectKind{
	KindBPMEvent, KindRotationEvent, KindColorNote, KindBombNote, KindObstacle,
	KindSlider, KindBurstSlider, KindWaypoint, KindBasicEvent, KindColorBoostEvent,
	KindLightColorEventBoxGroup, KindLightRotationEventBoxGroup, KindLightTranslationEventBoxGroup,
}

func (k ObjectKind) String() string {
	switch k {
	case KindBPMEvent:
		return "bpmEvents"
	case KindRotationEvent:
		return "rotationEvents"
	case KindColorNote:
		return "colorNotes"
	case KindBombNote:
		return "bombNotes"
	case KindObstacle:
		return "obstacles"
	case KindSlider:
		return "sliders"
	case KindBurstSlider:
		return "burstSliders"
	case KindWaypoint:
		return "waypoints"
	case KindBasicEvent:
		return "basicEvents"
	case KindColorBoostEvent:
		return "colorBoostEvents"
	case KindLightColorEventBoxGroup:
		return "lightColorEventBoxGroups"
	case KindLightRotationEventBoxGroup:
		return "lightRotationEventBoxGroups"
	case KindLightTranslationEventBoxGroup:
		return "lightTranslationEventBoxGroups"
	}
	return "unknown"
}

// Difficulty aggregates every entity collection of one difficulty file. Each
// instance owns its entities exclusively.
type Difficulty interface {
	// Entity exposes the difficulty header: every top-level field except
	// the entity collections.
	Entity
	Family() Family
	Version() string
	SetVersion(string)
	FileName() string
	SetFileName(string)
	CustomData() CustomData

	BPMEvents() []BPMEvent
	RotationEvents() []RotationEvent
	ColorNotes() []ColorNote
	BombNotes() []BombNote
	Obstacles() []Obstacle
	Sliders() []Slider
	BurstSliders() []BurstSlider
	Waypoints() []Waypoint
	BasicEvents() []Event
	ColorBoostEvents() []ColorBoostEvent
	LightColorEventBoxGroups() []EventBoxGroup
	LightRotationEventBoxGroups() []EventBoxGroup
	LightTranslationEventBoxGroups() []EventBoxGroup

	// Filter keeps the objects of one collection for which keep returns true
	// and reports how many were removed.
	Filter(kind ObjectKind, keep func(BaseObject) bool) int
	// Walk visits the header at the root pointer, then every entity,
	// nested ones included, with its JSON pointer.
	Walk(fn func(at schema.PathRef, e Entity))
	// Sort orders every collection by time (notes by time then position).
	Sort()
}

// Count returns the number of objects in a collection.
func Count(d Difficulty, kind ObjectKind) int {
	switch kind {
	case KindBPMEvent:
		return len(d.BPMEvents())
	case KindRotationEvent:
		return len(d.RotationEvents())
	case KindColorNote:
		return len(d.ColorNotes())
	case KindBombNote:
		return len(d.BombNotes())
	case KindObstacle:
		return len(d.Obstacles())
	case KindSlider:
		return len(d.Sliders())
	case KindBurstSlider:
		return len(d.BurstSliders())
	case KindWaypoint:
		return len(d.Waypoints())
	case KindBasicEvent:
		return len(d.BasicEvents())
	case KindColorBoostEvent:
		return len(d.ColorBoostEvents())
	case KindLightColorEventBoxGroup:
		return len(d.LightColorEventBoxGroups())
	case KindLightRotationEventBoxGroup:
		return len(d.LightRotationEventBoxGroups())
	case KindLightTranslationEventBoxGroup:
		return len(d.LightTranslationEventBoxGroups())
	}
	return 0
}

// FilterSlice keeps the elements of s for which keep returns true, preserving
// order, and returns the kept slice and the number removed.
func FilterSlice[T BaseObject](s []T, keep func(BaseObject) bool) ([]T, int) {
	out := s[:0]
	for _, o := range s {
		if keep(o) {
			out = append(out, o)
		}
	}
	removed := len(s) - len(out)
	clear(s[len(out):])
	return out, removed
}

// Upcast converts a typed slice to a slice of its wrapper interface.
func Upcast[T any, I any](s []T, conv func(T) I) []I {
	out := make([]I, len(s))
	for i, o := range s {
		out[i] = conv(o)
	}
	return out
}

// ToObjects serializes a collection.
func ToObjects[T Entity](s []T) []any {
	out := make([]any, len(s))
	for i, o := range s {
		out[i] = o.ToObject()
	}
	return out
}

// Build constructs one entity per element of rec[key] and removes the key
// from rec. Non-object elements yield default entities.
func Build[T any](rec schema.Record, key string, ctor func(Partial) T) []T {
	raw, _ := rec[key].([]any)
	delete(rec, key)
	out := make([]T, 0, len(raw))
	for _, e := range raw {
		m, _ := e.(map[string]any)
		out = append(out, ctor(m))
	}
	return out
}

// WalkSlice visits each element of s under at/key/i.
func WalkSlice[T Entity](at schema.PathRef, key string, s []T, fn func(schema.PathRef, Entity)) {
	base := at.Field(key)
	for i, o := range s {
		fn(base.Index(i), o)
	}
}
