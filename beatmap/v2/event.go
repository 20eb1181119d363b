package v2

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/schema"
)

// Event is a v2 basic event. BPM changes (type 100), lane rotations (14, 15)
// and color boosts (5) share the collection and are exposed as typed views.
type Event struct {
	beatmap.Object
}

var (
	_ beatmap.Event           = (*Event)(nil)
	_ beatmap.BPMEvent        = (*Event)(nil)
	_ beatmap.RotationEvent   = (*Event)(nil)
	_ beatmap.ColorBoostEvent = (*Event)(nil)
)

// NewEvent builds an event from a partial record, filling defaults.
func NewEvent(p beatmap.Partial) *Event {
	return &Event{beatmap.NewObject(EventTable, p)}
}

// CreateEvent returns one event per partial, or a single default event.
func CreateEvent(ps ...beatmap.Partial) []*Event { return beatmap.Create(NewEvent, ps...) }

func (e *Event) Type() int               { return e.Int("type") }
func (e *Event) SetType(v int)           { e.Set("type", v) }
func (e *Event) Value() int              { return e.Int("value") }
func (e *Event) SetValue(v int)          { e.Set("value", v) }
func (e *Event) FloatValue() float64     { return e.Float("floatValue") }
func (e *Event) SetFloatValue(v float64) { e.Set("floatValue", v) }

// BPM is stored in the float value of a type 100 event.
func (e *Event) BPM() float64     { return e.FloatValue() }
func (e *Event) SetBPM(v float64) { e.SetFloatValue(v) }

// ExecutionTime is 0 for early (14) and 1 for late (15) rotation.
func (e *Event) ExecutionTime() int {
	if e.Type() == beatmap.EventLateRotation {
		return 1
	}
	return 0
}

// Rotation prefers the noodle "_rotation" override, then decodes the value.
func (e *Event) Rotation() float64 {
	if f, ok := schema.AsFloat(e.CustomData()["_rotation"]); ok {
		return f
	}
	return beatmap.LaneRotation(e.Value())
}

func (e *Event) Toggle() bool      { return e.Value() == 1 }
func (e *Event) SetToggle(on bool) { e.SetFlag("value", on) }

func (e *Event) IsLightEvent() bool   { return beatmap.IsLightEvent(e.Type()) }
func (e *Event) IsColorBoost() bool   { return beatmap.IsColorBoostEvent(e.Type()) }
func (e *Event) IsLaneRotation() bool { return beatmap.IsLaneRotationEvent(e.Type()) }
func (e *Event) IsBPMChange() bool    { return beatmap.IsBPMChangeEvent(e.Type()) }
func (e *Event) IsOldChroma() bool    { return beatmap.IsOldChromaValue(e.Value()) }
func (e *Event) IsChroma() bool       { return e.CustomData().HasAny(beatmap.ChromaEventKeysV2...) }

func (e *Event) IsNoodleExtensions() bool {
	return e.IsLaneRotation() && e.CustomData().Has("_rotation")
}

// IsValid checks BPM changes for a positive tempo and other events for
// non-negative type and value.
func (e *Event) IsValid() bool {
	if e.IsBPMChange() {
		return e.BPM() > 0
	}
	return e.Type() >= 0 && e.Value() >= 0
}
