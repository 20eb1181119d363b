package v3

import (
	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/eventbox"
)

// LightColorBase is one color step of a light color box.
type LightColorBase struct {
	beatmap.Object
}

// NewLightColorBase builds a color step from a partial record.
func NewLightColorBase(p beatmap.Partial) *LightColorBase {
	return &LightColorBase{beatmap.NewObject(LightColorBaseTable, p)}
}

func (e *LightColorBase) Transition() int         { return e.Int("transition") }
func (e *LightColorBase) Color() int              { return e.Int("color") }
func (e *LightColorBase) SetColor(v int)          { e.Set("color", v) }
func (e *LightColorBase) Brightness() float64     { return e.Float("brightness") }
func (e *LightColorBase) SetBrightness(v float64) { e.Set("brightness", v) }
func (e *LightColorBase) Frequency() int          { return e.Int("frequency") }

// LightRotationBase is one rotation step of a light rotation box.
type LightRotationBase struct {
	beatmap.Object
}

// NewLightRotationBase builds a rotation step from a partial record.
func NewLightRotationBase(p beatmap.Partial) *LightRotationBase {
	return &LightRotationBase{beatmap.NewObject(LightRotationBaseTable, p)}
}

func (e *LightRotationBase) Previous() bool        { return e.Bool("previous") }
func (e *LightRotationBase) Easing() int           { return e.Int("easing") }
func (e *LightRotationBase) Loop() int             { return e.Int("loop") }
func (e *LightRotationBase) Rotation() float64     { return e.Float("rotation") }
func (e *LightRotationBase) SetRotation(v float64) { e.Set("rotation", v) }
func (e *LightRotationBase) Direction() int        { return e.Int("direction") }

// LightTranslationBase is one translation step of a light translation box.
type LightTranslationBase struct {
	beatmap.Object
}

// NewLightTranslationBase builds a translation step from a partial record.
func NewLightTranslationBase(p beatmap.Partial) *LightTranslationBase {
	return &LightTranslationBase{beatmap.NewObject(LightTranslationBaseTable, p)}
}

func (e *LightTranslationBase) Previous() bool           { return e.Bool("previous") }
func (e *LightTranslationBase) Easing() int              { return e.Int("easing") }
func (e *LightTranslationBase) Translation() float64     { return e.Float("translation") }
func (e *LightTranslationBase) SetTranslation(v float64) { e.Set("translation", v) }

var (
	colorBoxSpec = &boxSpec[*LightColorBase]{
		table: LightColorEventBoxTable, eventsKey: "e", newBase: NewLightColorBase,
	}
	rotationBoxSpec = &boxSpec[*LightRotationBase]{
		table: LightRotationEventBoxTable, eventsKey: "l", newBase: NewLightRotationBase,
	}
	translationBoxSpec = &boxSpec[*LightTranslationBase]{
		table: LightTranslationEventBoxTable, eventsKey: "l", newBase: NewLightTranslationBase,
	}
)

// LightColorEventBox applies color steps to the lights its filter selects.
type LightColorEventBox struct {
	eventBox[*LightColorBase]
}

var _ beatmap.EventBox = (*LightColorEventBox)(nil)

// NewLightColorEventBox builds a box with its filter and color steps.
func NewLightColorEventBox(p beatmap.Partial) *LightColorEventBox {
	return &LightColorEventBox{newEventBox(colorBoxSpec, p)}
}

// BrightnessDistribution spreads brightness across the selected lights.
func (b *LightColorEventBox) BrightnessDistribution() eventbox.Distribution {
	return eventbox.Distribution{
		Width:  b.Float("brightnessDistribution"),
		Type:   b.Int("brightnessDistributionType"),
		Easing: b.Easing(),
	}
}

// LightRotationEventBox applies rotation steps around one axis.
type LightRotationEventBox struct {
	eventBox[*LightRotationBase]
}

var _ beatmap.EventBox = (*LightRotationEventBox)(nil)

// NewLightRotationEventBox builds a box with its filter and rotation steps.
func NewLightRotationEventBox(p beatmap.Partial) *LightRotationEventBox {
	return &LightRotationEventBox{newEventBox(rotationBoxSpec, p)}
}

func (b *LightRotationEventBox) Axis() int  { return b.Int("axis") }
func (b *LightRotationEventBox) Flip() bool { return b.Bool("flip") }

// RotationDistribution spreads rotation across the selected lights.
func (b *LightRotationEventBox) RotationDistribution() eventbox.Distribution {
	return eventbox.Distribution{
		Width:  b.Float("rotationDistribution"),
		Type:   b.Int("rotationDistributionType"),
		Easing: b.Easing(),
	}
}

// LightTranslationEventBox applies translation steps along one axis.
type LightTranslationEventBox struct {
	eventBox[*LightTranslationBase]
}

var _ beatmap.EventBox = (*LightTranslationEventBox)(nil)

// NewLightTranslationEventBox builds a box with its filter and translation steps.
func NewLightTranslationEventBox(p beatmap.Partial) *LightTranslationEventBox {
	return &LightTranslationEventBox{newEventBox(translationBoxSpec, p)}
}

func (b *LightTranslationEventBox) Axis() int  { return b.Int("axis") }
func (b *LightTranslationEventBox) Flip() bool { return b.Bool("flip") }

// TranslationDistribution spreads translation across the selected lights.
func (b *LightTranslationEventBox) TranslationDistribution() eventbox.Distribution {
	return eventbox.Distribution{
		Width:  b.Float("translationDistribution"),
		Type:   b.Int("translationDistributionType"),
		Easing: b.Easing(),
	}
}

// LightColorEventBoxGroup addresses one light group with color boxes.
type LightColorEventBoxGroup struct {
	eventBoxGroup[*LightColorEventBox]
}

var _ beatmap.EventBoxGroup = (*LightColorEventBoxGroup)(nil)

// NewLightColorEventBoxGroup builds a group and its boxes from a partial record.
func NewLightColorEventBoxGroup(p beatmap.Partial) *LightColorEventBoxGroup {
	return &LightColorEventBoxGroup{newEventBoxGroup(LightColorEventBoxGroupTable, p, NewLightColorEventBox)}
}

// CreateLightColorEventBoxGroup returns one group per partial.
func CreateLightColorEventBoxGroup(ps ...beatmap.Partial) []*LightColorEventBoxGroup {
	return beatmap.Create(NewLightColorEventBoxGroup, ps...)
}

// LightRotationEventBoxGroup addresses one light group with rotation boxes.
type LightRotationEventBoxGroup struct {
	eventBoxGroup[*LightRotationEventBox]
}

var _ beatmap.EventBoxGroup = (*LightRotationEventBoxGroup)(nil)

// NewLightRotationEventBoxGroup builds a group and its boxes from a partial record.
func NewLightRotationEventBoxGroup(p beatmap.Partial) *LightRotationEventBoxGroup {
	return &LightRotationEventBoxGroup{newEventBoxGroup(LightRotationEventBoxGroupTable, p, NewLightRotationEventBox)}
}

// CreateLightRotationEventBoxGroup returns one group per partial.
func CreateLightRotationEventBoxGroup(ps ...beatmap.Partial) []*LightRotationEventBoxGroup {
	return beatmap.Create(NewLightRotationEventBoxGroup, ps...)
}

// LightTranslationEventBoxGroup addresses one light group with translation boxes.
type LightTranslationEventBoxGroup struct {
	eventBoxGroup[*LightTranslationEventBox]
}

var _ beatmap.EventBoxGroup = (*LightTranslationEventBoxGroup)(nil)

// NewLightTranslationEventBoxGroup builds a group and its boxes from a partial record.
func NewLightTranslationEventBoxGroup(p beatmap.Partial) *LightTranslationEventBoxGroup {
	return &LightTranslationEventBoxGroup{
		newEventBoxGroup(LightTranslationEventBoxGroupTable, p, NewLightTranslationEventBox),
	}
}

// CreateLightTranslationEventBoxGroup returns one group per partial.
func CreateLightTranslationEventBoxGroup(ps ...beatmap.Partial) []*LightTranslationEventBoxGroup {
	return beatmap.Create(NewLightTranslationEventBoxGroup, ps...)
}
