package v3

import "github.com/reoring/bsmap/beatmap"

// slider holds the head/tail accessors shared by arcs and chains.
type slider struct {
	beatmap.Grid
}

func (s *slider) Color() int            { return s.Int("color") }
func (s *slider) SetColor(v int)        { s.Set("color", v) }
func (s *slider) Direction() int        { return s.Int("direction") }
func (s *slider) SetDirection(v int)    { s.Set("direction", v) }
func (s *slider) TailTime() float64     { return s.Float("tailTime") }
func (s *slider) SetTailTime(v float64) { s.Set("tailTime", v) }
func (s *slider) TailPosX() int         { return s.Int("tailPosX") }
func (s *slider) SetTailPosX(v int)     { s.Set("tailPosX", v) }
func (s *slider) TailPosY() int         { return s.Int("tailPosY") }
func (s *slider) SetTailPosY(v int)     { s.Set("tailPosY", v) }

func (s *slider) mirror(flipColor bool) {
	s.MirrorX(1)
	s.SetTailPosX(beatmap.MirrorPosX(s.TailPosX(), 1))
	s.SetDirection(beatmap.MirrorDirection(s.Direction()))
	cd := s.CustomData()
	if v, ok := cd.Floats("tailCoordinates"); ok && len(v) > 0 {
		cd["tailCoordinates"] = append([]any{-v[0] - 1}, floatsToAny(v[1:])...)
	}
	if flipColor {
		s.SetColor(beatmap.MirrorColor(s.Color()))
	}
}

func floatsToAny(v []float64) []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = f
	}
	return out
}

func (s *slider) IsMappingExtensions() bool {
	return s.Grid.IsMappingExtensions() || beatmap.IsMEValue(s.TailPosX()) || beatmap.IsMEValue(s.TailPosY())
}

func (s *slider) validLanes() bool {
	return !s.IsMappingExtensions() && beatmap.InGrid(s.PosX(), s.PosY()) &&
		beatmap.InGrid(s.TailPosX(), s.TailPosY()) && beatmap.IsValidDirection(s.Direction())
}

// Slider is an arc.
type Slider struct {
	slider
}

var _ beatmap.Slider = (*Slider)(nil)

// NewSlider builds an arc from a partial record, filling defaults.
func NewSlider(p beatmap.Partial) *Slider {
	return &Slider{slider{beatmap.NewGrid(SliderTable, p, beatmap.ExtensionsV3)}}
}

// CreateSlider returns one arc per partial, or a single default arc.
func CreateSlider(ps ...beatmap.Partial) []*Slider { return beatmap.Create(NewSlider, ps...) }

func (s *Slider) LengthMultiplier() float64         { return s.Float("lengthMultiplier") }
func (s *Slider) SetLengthMultiplier(v float64)     { s.Set("lengthMultiplier", v) }
func (s *Slider) TailDirection() int                { return s.Int("tailDirection") }
func (s *Slider) SetTailDirection(v int)            { s.Set("tailDirection", v) }
func (s *Slider) TailLengthMultiplier() float64     { return s.Float("tailLengthMultiplier") }
func (s *Slider) SetTailLengthMultiplier(v float64) { s.Set("tailLengthMultiplier", v) }
func (s *Slider) MidAnchor() int                    { return s.Int("midAnchor") }
func (s *Slider) SetMidAnchor(v int)                { s.Set("midAnchor", v) }

// Mirror flips both ends of the arc, the tail direction included.
func (s *Slider) Mirror(flipColor bool) {
	s.mirror(flipColor)
	s.SetTailDirection(beatmap.MirrorDirection(s.TailDirection()))
}

func (s *Slider) IsValid() bool {
	return s.validLanes() && beatmap.IsValidDirection(s.TailDirection())
}

// BurstSlider is a chain; the head counts as the first slice.
type BurstSlider struct {
	slider
}

var _ beatmap.BurstSlider = (*BurstSlider)(nil)

// NewBurstSlider builds a chain from a partial record, filling defaults.
func NewBurstSlider(p beatmap.Partial) *BurstSlider {
	return &BurstSlider{slider{beatmap.NewGrid(BurstSliderTable, p, beatmap.ExtensionsV3)}}
}

// CreateBurstSlider returns one chain per partial, or a single default chain.
func CreateBurstSlider(ps ...beatmap.Partial) []*BurstSlider {
	return beatmap.Create(NewBurstSlider, ps...)
}

func (s *BurstSlider) SliceCount() int       { return s.Int("sliceCount") }
func (s *BurstSlider) SetSliceCount(v int)   { s.Set("sliceCount", v) }
func (s *BurstSlider) Squish() float64       { return s.Float("squish") }
func (s *BurstSlider) SetSquish(v float64)   { s.Set("squish", v) }
func (s *BurstSlider) Mirror(flipColor bool) { s.mirror(flipColor) }

// IsValid also rejects a zero squish, which crashes the game.
func (s *BurstSlider) IsValid() bool {
	return s.validLanes() && s.SliceCount() > 0 && s.Squish() != 0
}
