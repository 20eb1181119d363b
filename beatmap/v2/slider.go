package v2

import "github.com/reoring/bsmap/beatmap"

// Slider is an arc between a head and a tail note.
type Slider struct {
	beatmap.Grid
}

var _ beatmap.Slider = (*Slider)(nil)

// NewSlider builds an arc from a partial record, filling defaults.
func NewSlider(p beatmap.Partial) *Slider {
	return &Slider{beatmap.NewGrid(SliderTable, p, beatmap.ExtensionsV2)}
}

// CreateSlider returns one arc per partial, or a single default arc.
func CreateSlider(ps ...beatmap.Partial) []*Slider { return beatmap.Create(NewSlider, ps...) }

func (s *Slider) Color() int                        { return s.Int("color") }
func (s *Slider) SetColor(v int)                    { s.Set("color", v) }
func (s *Slider) Direction() int                    { return s.Int("direction") }
func (s *Slider) SetDirection(v int)                { s.Set("direction", v) }
func (s *Slider) LengthMultiplier() float64         { return s.Float("lengthMultiplier") }
func (s *Slider) SetLengthMultiplier(v float64)     { s.Set("lengthMultiplier", v) }
func (s *Slider) TailTime() float64                 { return s.Float("tailTime") }
func (s *Slider) SetTailTime(v float64)             { s.Set("tailTime", v) }
func (s *Slider) TailPosX() int                     { return s.Int("tailPosX") }
func (s *Slider) SetTailPosX(v int)                 { s.Set("tailPosX", v) }
func (s *Slider) TailPosY() int                     { return s.Int("tailPosY") }
func (s *Slider) SetTailPosY(v int)                 { s.Set("tailPosY", v) }
func (s *Slider) TailDirection() int                { return s.Int("tailDirection") }
func (s *Slider) SetTailDirection(v int)            { s.Set("tailDirection", v) }
func (s *Slider) TailLengthMultiplier() float64     { return s.Float("tailLengthMultiplier") }
func (s *Slider) SetTailLengthMultiplier(v float64) { s.Set("tailLengthMultiplier", v) }
func (s *Slider) MidAnchor() int                    { return s.Int("midAnchor") }
func (s *Slider) SetMidAnchor(v int)                { s.Set("midAnchor", v) }

// Mirror flips both ends of the arc.
func (s *Slider) Mirror(flipColor bool) {
	s.MirrorX(1)
	s.SetTailPosX(beatmap.MirrorPosX(s.TailPosX(), 1))
	s.SetDirection(beatmap.MirrorDirection(s.Direction()))
	s.SetTailDirection(beatmap.MirrorDirection(s.TailDirection()))
	if flipColor {
		s.SetColor(beatmap.MirrorColor(s.Color()))
	}
}

func (s *Slider) IsMappingExtensions() bool {
	return s.Grid.IsMappingExtensions() || beatmap.IsMEValue(s.TailPosX()) || beatmap.IsMEValue(s.TailPosY())
}

// IsValid requires both ends inside the grid with valid directions.
func (s *Slider) IsValid() bool {
	return !s.IsMappingExtensions() &&
		beatmap.InGrid(s.PosX(), s.PosY()) && beatmap.InGrid(s.TailPosX(), s.TailPosY()) &&
		beatmap.IsValidDirection(s.Direction()) && beatmap.IsValidDirection(s.TailDirection())
}
