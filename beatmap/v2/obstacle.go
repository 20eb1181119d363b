package v2

import "github.com/reoring/bsmap/beatmap"

// Obstacle heights and rows are derived from the legacy type: 1 is a crouch
// wall, anything else a full-height wall.
const (
	ObstacleFull   = 0
	ObstacleCrouch = 1
)

// ObstacleHeight returns the derived height of a v2 wall type.
func ObstacleHeight(typ int) int {
	if typ == ObstacleCrouch {
		return 3
	}
	return 5
}

// ObstaclePosY returns the derived row of a v2 wall type.
func ObstaclePosY(typ int) int {
	if typ == ObstacleCrouch {
		return 0
	}
	return 2
}

// ObstacleTypeForHeight maps a legal height back to its type.
func ObstacleTypeForHeight(h int) (int, bool) {
	switch h {
	case 3:
		return ObstacleCrouch, true
	case 5:
		return ObstacleFull, true
	}
	return ObstacleFull, false
}

// ObstacleTypeForPosY maps a legal row back to its type.
func ObstacleTypeForPosY(y int) (int, bool) {
	switch y {
	case 0:
		return ObstacleCrouch, true
	case 2:
		return ObstacleFull, true
	}
	return ObstacleFull, false
}

// Obstacle is a v2 wall. Its height and row are derived from its type.
type Obstacle struct {
	beatmap.Grid
}

var _ beatmap.Obstacle = (*Obstacle)(nil)

// NewObstacle builds a wall from a partial record, filling defaults.
func NewObstacle(p beatmap.Partial) *Obstacle {
	return &Obstacle{beatmap.NewGrid(ObstacleTable, p, beatmap.ExtensionsV2)}
}

// CreateObstacle returns one wall per partial, or a single default wall.
func CreateObstacle(ps ...beatmap.Partial) []*Obstacle { return beatmap.Create(NewObstacle, ps...) }

func (o *Obstacle) Type() int             { return o.Int("type") }
func (o *Obstacle) SetType(v int)         { o.Set("type", v) }
func (o *Obstacle) Duration() float64     { return o.Float("duration") }
func (o *Obstacle) SetDuration(v float64) { o.Set("duration", v) }
func (o *Obstacle) Width() int            { return o.Int("width") }
func (o *Obstacle) SetWidth(v int)        { o.Set("width", v) }
func (o *Obstacle) PosY() int             { return ObstaclePosY(o.Type()) }
func (o *Obstacle) Height() int           { return ObstacleHeight(o.Type()) }

// SetPosY accepts 0 or 2. Any other row resets the type to a full wall and
// returns an error.
func (o *Obstacle) SetPosY(v int) error {
	typ, ok := ObstacleTypeForPosY(v)
	o.SetType(typ)
	if !ok {
		return beatmap.Invalid("posY", v)
	}
	return nil
}

// SetHeight accepts 3 or 5. Any other height resets the type to a full wall
// and returns an error.
func (o *Obstacle) SetHeight(v int) error {
	typ, ok := ObstacleTypeForHeight(v)
	o.SetType(typ)
	if !ok {
		return beatmap.Invalid("height", v)
	}
	return nil
}

// Position centers the wall; mapping-extensions rows sit half a lane lower.
func (o *Obstacle) Position(mod beatmap.ModType) beatmap.Vector2 {
	switch mod {
	case beatmap.ModVanilla:
		return beatmap.GridPosition(o.PosX(), o.PosY(), nil, mod)
	case beatmap.ModNoodle:
		if v := o.Override(); v != nil {
			return *v
		}
	}
	return beatmap.Vector2{beatmap.DecodeME(o.PosX()) - 2, beatmap.DecodeME(o.PosY()) - 0.5}
}

func (o *Obstacle) Mirror(bool) { o.MirrorX(o.Width()) }

// IsMappingExtensions covers the extended wall types above 2.
func (o *Obstacle) IsMappingExtensions() bool {
	return o.Type() > 2 || beatmap.IsMEValue(o.PosX())
}

// IsValid requires a positive width, a non-zero duration and a lane in the grid.
func (o *Obstacle) IsValid() bool {
	return !o.IsMappingExtensions() && o.Width() > 0 && o.Duration() != 0 &&
		beatmap.InGrid(o.PosX(), o.PosY())
}
