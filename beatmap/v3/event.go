package v3

import "github.com/reoring/bsmap/beatmap"

// BPMEvent changes the tempo from its beat onwards.
type BPMEvent struct {
	beatmap.Object
}

var _ beatmap.BPMEvent = (*BPMEvent)(nil)

// NewBPMEvent builds a BPM change from a partial record, filling defaults.
func NewBPMEvent(p beatmap.Partial) *BPMEvent {
	return &BPMEvent{beatmap.NewObject(BPMEventTable, p)}
}

// CreateBPMEvent returns one BPM change per partial, or a single default one.
func CreateBPMEvent(ps ...beatmap.Partial) []*BPMEvent { return beatmap.Create(NewBPMEvent, ps...) }

func (e *BPMEvent) BPM() float64     { return e.Float("bpm") }
func (e *BPMEvent) SetBPM(v float64) { e.Set("bpm", v) }
func (e *BPMEvent) IsValid() bool    { return e.BPM() > 0 }

// RotationEvent rotates the lanes in 360 and 90 degree maps.
type RotationEvent struct {
	beatmap.Object
}

var _ beatmap.RotationEvent = (*RotationEvent)(nil)

// NewRotationEvent builds a rotation event from a partial record.
func NewRotationEvent(p beatmap.Partial) *RotationEvent {
	return &RotationEvent{beatmap.NewObject(RotationEventTable, p)}
}

// CreateRotationEvent returns one rotation event per partial.
func CreateRotationEvent(ps ...beatmap.Partial) []*RotationEvent {
	return beatmap.Create(NewRotationEvent, ps...)
}

func (e *RotationEvent) ExecutionTime() int     { return e.Int("executionTime") }
func (e *RotationEvent) SetExecutionTime(v int) { e.Set("executionTime", v) }
func (e *RotationEvent) Rotation() float64      { return e.Float("rotation") }
func (e *RotationEvent) SetRotation(v float64)  { e.Set("rotation", v) }

// BasicEvent is a legacy-style light or effect trigger.
type BasicEvent struct {
	beatmap.Object
}

var _ beatmap.Event = (*BasicEvent)(nil)

// NewBasicEvent builds a basic event from a partial record.
func NewBasicEvent(p beatmap.Partial) *BasicEvent {
	return &BasicEvent{beatmap.NewObject(BasicEventTable, p)}
}

// CreateBasicEvent returns one basic event per partial.
func CreateBasicEvent(ps ...beatmap.Partial) []*BasicEvent {
	return beatmap.Create(NewBasicEvent, ps...)
}

func (e *BasicEvent) Type() int               { return e.Int("type") }
func (e *BasicEvent) SetType(v int)           { e.Set("type", v) }
func (e *BasicEvent) Value() int              { return e.Int("value") }
func (e *BasicEvent) SetValue(v int)          { e.Set("value", v) }
func (e *BasicEvent) FloatValue() float64     { return e.Float("floatValue") }
func (e *BasicEvent) SetFloatValue(v float64) { e.Set("floatValue", v) }
func (e *BasicEvent) IsLightEvent() bool      { return beatmap.IsLightEvent(e.Type()) }
func (e *BasicEvent) IsOldChroma() bool       { return beatmap.IsOldChromaValue(e.Value()) }
func (e *BasicEvent) IsChroma() bool          { return e.CustomData().HasAny(beatmap.ChromaEventKeysV3...) }

// ColorBoostEvent switches the boost color scheme on or off.
type ColorBoostEvent struct {
	beatmap.Object
}

var _ beatmap.ColorBoostEvent = (*ColorBoostEvent)(nil)

// NewColorBoostEvent builds a boost event from a partial record.
func NewColorBoostEvent(p beatmap.Partial) *ColorBoostEvent {
	return &ColorBoostEvent{beatmap.NewObject(ColorBoostEventTable, p)}
}

// CreateColorBoostEvent returns one boost event per partial.
func CreateColorBoostEvent(ps ...beatmap.Partial) []*ColorBoostEvent {
	return beatmap.Create(NewColorBoostEvent, ps...)
}

func (e *ColorBoostEvent) Toggle() bool     { return e.Bool("toggle") }
func (e *ColorBoostEvent) SetToggle(v bool) { e.Set("toggle", v) }
