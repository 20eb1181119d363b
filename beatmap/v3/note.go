package v3

import "github.com/reoring/bsmap/beatmap"

// ColorNote is a red or blue note.
type ColorNote struct {
	beatmap.Grid
}

var _ beatmap.ColorNote = (*ColorNote)(nil)

// NewColorNote builds a color note from a partial record, filling defaults.
func NewColorNote(p beatmap.Partial) *ColorNote {
	return &ColorNote{beatmap.NewGrid(ColorNoteTable, p, beatmap.ExtensionsV3)}
}

// CreateColorNote returns one note per partial, or a single default note.
func CreateColorNote(ps ...beatmap.Partial) []*ColorNote { return beatmap.Create(NewColorNote, ps...) }

func (n *ColorNote) Color() int           { return n.Int("color") }
func (n *ColorNote) SetColor(v int)       { n.Set("color", v) }
func (n *ColorNote) Direction() int       { return n.Int("direction") }
func (n *ColorNote) SetDirection(v int)   { n.Set("direction", v) }
func (n *ColorNote) AngleOffset() int     { return n.Int("angleOffset") }
func (n *ColorNote) SetAngleOffset(v int) { n.Set("angleOffset", v) }
func (n *ColorNote) IsBomb() bool         { return false }

func (n *ColorNote) IsNote() bool {
	c := n.Color()
	return c == 0 || c == 1
}

// Mirror flips the lane, the cut direction and the angle offset, and the
// color when asked.
func (n *ColorNote) Mirror(flipColor bool) {
	n.MirrorX(1)
	n.SetDirection(beatmap.MirrorDirection(n.Direction()))
	n.SetAngleOffset(-n.AngleOffset())
	if flipColor {
		n.SetColor(beatmap.MirrorColor(n.Color()))
	}
}

func (n *ColorNote) IsChroma() bool {
	return n.Grid.IsChroma() || n.CustomData().HasAny("spawnEffect", "disableDebris")
}

// IsMappingExtensions also covers the precise cut-angle encodings 1000-1360
// and 2000-2360.
func (n *ColorNote) IsMappingExtensions() bool {
	d := n.Direction()
	return n.Grid.IsMappingExtensions() || (d >= 1000 && d <= 1360) || (d >= 2000 && d <= 2360)
}

// IsValid requires a vanilla note inside the grid with a valid direction.
func (n *ColorNote) IsValid() bool {
	return !n.IsMappingExtensions() && n.IsNote() &&
		beatmap.InGrid(n.PosX(), n.PosY()) && beatmap.IsValidDirection(n.Direction())
}

// BombNote is a bomb.
type BombNote struct {
	beatmap.Grid
}

var _ beatmap.BombNote = (*BombNote)(nil)

// NewBombNote builds a bomb from a partial record, filling defaults.
func NewBombNote(p beatmap.Partial) *BombNote {
	return &BombNote{beatmap.NewGrid(BombNoteTable, p, beatmap.ExtensionsV3)}
}

// CreateBombNote returns one bomb per partial, or a single default bomb.
func CreateBombNote(ps ...beatmap.Partial) []*BombNote { return beatmap.Create(NewBombNote, ps...) }

func (b *BombNote) Mirror(bool) { b.MirrorX(1) }

func (b *BombNote) IsChroma() bool {
	return b.Grid.IsChroma() || b.CustomData().HasAny("spawnEffect", "disableDebris")
}

// IsValid requires a vanilla bomb inside the grid.
func (b *BombNote) IsValid() bool {
	return !b.IsMappingExtensions() && beatmap.InGrid(b.PosX(), b.PosY())
}
