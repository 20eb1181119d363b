package beatmap

import (
	"github.com/reoring/bsmap/eventbox"
	"github.com/reoring/bsmap/schema"
)

// Entity is anything backed by a field table.
type Entity interface {
	Table() *schema.Table
	Record() schema.Record
	ToObject() map[string]any
}

// BaseObject is a timed entity. Time is always in beats.
type BaseObject interface {
	Entity
	Time() float64
	SetTime(float64)
	CustomData() CustomData
	SetCustomData(CustomData)
}

// GridObject sits on the 4x3 lane grid.
type GridObject interface {
	BaseObject
	PosX() int
	SetPosX(int)
	PosY() int
	SetPosY(int) error
	// Position returns lane coordinates centered on the grid for the given
	// mod context.
	Position(mod ModType) Vector2
	Mirror(flipColor bool)
	IsChroma() bool
	IsNoodleExtensions() bool
	IsMappingExtensions() bool
	IsValid() bool
}

// BaseNote is a grid object with a cut direction.
type BaseNote interface {
	GridObject
	Direction() int
	SetDirection(int)
}

type ColorNote interface {
	BaseNote
	// Color is 0 (red) or 1 (blue); v2 bombs report 3.
	Color() int
	SetColor(int)
	AngleOffset() int
	SetAngleOffset(int)
	IsNote() bool
	IsBomb() bool
}

type BombNote interface {
	GridObject
}

type Obstacle interface {
	GridObject
	Duration() float64
	SetDuration(float64)
	Width() int
	SetWidth(int)
	Height() int
	SetHeight(int) error
}

// BaseSlider joins a head and a tail note.
type BaseSlider interface {
	BaseNote
	Color() int
	SetColor(int)
	TailTime() float64
	SetTailTime(float64)
	TailPosX() int
	SetTailPosX(int)
	TailPosY() int
	SetTailPosY(int)
}

type Slider interface {
	BaseSlider
	LengthMultiplier() float64
	SetLengthMultiplier(float64)
	TailDirection() int
	SetTailDirection(int)
	TailLengthMultiplier() float64
	SetTailLengthMultiplier(float64)
	MidAnchor() int
	SetMidAnchor(int)
}

type BurstSlider interface {
	BaseSlider
	SliceCount() int
	SetSliceCount(int)
	Squish() float64
	SetSquish(float64)
}

type Waypoint interface {
	GridObject
	Direction() int
	SetDirection(int)
}

// Event is a legacy light/effect trigger.
type Event interface {
	BaseObject
	Type() int
	SetType(int)
	Value() int
	SetValue(int)
	FloatValue() float64
	SetFloatValue(float64)
}

type BPMEvent interface {
	BaseObject
	BPM() float64
	SetBPM(float64)
	IsValid() bool
}

type RotationEvent interface {
	BaseObject
	// ExecutionTime is 0 for early and 1 for late rotation.
	ExecutionTime() int
	Rotation() float64
}

type ColorBoostEvent interface {
	BaseObject
	Toggle() bool
	SetToggle(bool)
}

// IndexFilter selects and orders the light indices an event box targets.
type IndexFilter interface {
	Entity
	Filter() eventbox.Filter
}

// EventBox spreads its sub-events over the indices chosen by its filter.
type EventBox interface {
	Entity
	IndexFilter() IndexFilter
	BeatDistribution() float64
	SetBeatDistribution(float64)
	BeatDistributionType() int
	Easing() int
	Events() []BaseObject
	// Distribution is the beat spread applied per selected index.
	Distribution() eventbox.Distribution
}

// EventBoxGroup addresses one light group.
type EventBoxGroup interface {
	BaseObject
	ID() int
	SetID(int)
	Boxes() []EventBox
}

// Schedule expands a group over n lights into timed hits, ordered by box then
// light then sub-event.
func Schedule(g EventBoxGroup, n int) []eventbox.Hit {
	var hits []eventbox.Hit
	for bi, b := range g.Boxes() {
		places := eventbox.Place(b.IndexFilter().Filter(), b.Distribution(), n)
		evs := b.Events()
		times := make([]float64, len(evs))
		for i, e := range evs {
			times[i] = e.Time()
		}
		for _, h := range eventbox.Expand(g.Time(), places, times) {
			h.Box = bi
			hits = append(hits, h)
		}
	}
	return hits
}
