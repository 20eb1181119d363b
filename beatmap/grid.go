package beatmap

import (
	"errors"
	"fmt"

	"github.com/reoring/bsmap/schema"
)

// ErrInvalidValue is returned by setters that only accept a fixed set of
// values.
var ErrInvalidValue = errors.New("beatmap: invalid value")

// Invalid wraps ErrInvalidValue with the offending field.
func Invalid(field string, v int) error {
	return fmt.Errorf("%w: %s=%d", ErrInvalidValue, field, v)
}

// Extensions names the custom-data keys one schema family uses for the
// community extensions.
type Extensions struct {
	Position string
	Chroma   []string
	Noodle   []string
}

var (
	ExtensionsV2 = Extensions{Position: "_position", Chroma: ChromaKeysV2, Noodle: NoodleKeysV2}
	ExtensionsV3 = Extensions{Position: "coordinates", Chroma: ChromaKeysV3, Noodle: NoodleKeysV3}
)

// Grid implements the lane accessors shared by grid entities. Tables must
// alias the lane keys as "posX" and "posY".
type Grid struct {
	Object
	Ext Extensions
}

func NewGrid(t *schema.Table, p Partial, ext Extensions) Grid {
	return Grid{Object: NewObject(t, p), Ext: ext}
}

func (g *Grid) PosX() int     { return g.Int("posX") }
func (g *Grid) SetPosX(v int) { g.Set("posX", v) }
func (g *Grid) PosY() int     { return g.Int("posY") }

func (g *Grid) SetPosY(v int) error {
	g.Set("posY", v)
	return nil
}

// Override returns the noodle position override, if any.
func (g *Grid) Override() *Vector2 {
	if v, ok := g.CustomData().Vector2(g.Ext.Position); ok {
		return &v
	}
	return nil
}

func (g *Grid) Position(mod ModType) Vector2 {
	return GridPosition(g.PosX(), g.PosY(), g.Override(), mod)
}

func (g *Grid) IsChroma() bool           { return g.CustomData().HasAny(g.Ext.Chroma...) }
func (g *Grid) IsNoodleExtensions() bool { return g.CustomData().HasAny(g.Ext.Noodle...) }

func (g *Grid) IsMappingExtensions() bool {
	return IsMEValue(g.PosX()) || IsMEValue(g.PosY())
}

// MirrorX flips the lane of an object width lanes wide, including its
// position override.
func (g *Grid) MirrorX(width int) {
	g.SetPosX(MirrorPosX(g.PosX(), width))
	cd := g.CustomData()
	if v, ok := cd.Floats(g.Ext.Position); ok && len(v) > 0 {
		v[0] = -v[0] - float64(width)
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		cd[g.Ext.Position] = out
	}
}

// MirrorPosX mirrors a lane index for an object width lanes wide. Mapping
// extensions values are mirrored in their fixed-point scale.
func MirrorPosX(x, width int) int {
	if IsMEValue(x) {
		return (LineCount-width)*1000 - x
	}
	return LineCount - width - x
}
