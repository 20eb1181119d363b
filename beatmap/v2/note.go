package v2

import "github.com/reoring/bsmap/beatmap"

// BombType is the note type v2 uses for bombs.
const BombType = 3

// Note is a v2 note; type 3 makes it a bomb.
type Note struct {
	beatmap.Grid
}

var (
	_ beatmap.ColorNote = (*Note)(nil)
	_ beatmap.BombNote  = (*Note)(nil)
)

// NewNote builds a note from a partial record, filling defaults.
func NewNote(p beatmap.Partial) *Note {
	return &Note{beatmap.NewGrid(NoteTable, p, beatmap.ExtensionsV2)}
}

// CreateNote returns one note per partial, or a single default note.
func CreateNote(ps ...beatmap.Partial) []*Note { return beatmap.Create(NewNote, ps...) }

func (n *Note) Color() int         { return n.Int("color") }
func (n *Note) SetColor(v int)     { n.Set("color", v) }
func (n *Note) Direction() int     { return n.Int("direction") }
func (n *Note) SetDirection(v int) { n.Set("direction", v) }
func (n *Note) AngleOffset() int   { return 0 }
func (n *Note) SetAngleOffset(int) {}
func (n *Note) IsBomb() bool       { return n.Color() == BombType }

// IsNote reports a red or blue note.
func (n *Note) IsNote() bool {
	c := n.Color()
	return c == 0 || c == 1
}

// Mirror flips the lane and the cut direction, and the color when asked.
func (n *Note) Mirror(flipColor bool) {
	n.MirrorX(1)
	n.SetDirection(beatmap.MirrorDirection(n.Direction()))
	if flipColor {
		n.SetColor(beatmap.MirrorColor(n.Color()))
	}
}

func (n *Note) IsChroma() bool {
	cd := n.CustomData()
	return n.Grid.IsChroma() || cd.Has("_disableSpawnEffect")
}

// IsMappingExtensions also covers the precise cut-angle encodings 1000-1360
// and 2000-2360.
func (n *Note) IsMappingExtensions() bool {
	d := n.Direction()
	return n.Grid.IsMappingExtensions() || (d >= 1000 && d <= 1360) || (d >= 2000 && d <= 2360)
}

// IsValid rejects mapping-extensions values, lanes outside the grid and
// unknown types or directions.
func (n *Note) IsValid() bool {
	if n.IsMappingExtensions() || !beatmap.InGrid(n.PosX(), n.PosY()) {
		return false
	}
	return (n.IsNote() || n.IsBomb()) && beatmap.IsValidDirection(n.Direction())
}
