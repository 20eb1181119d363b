package v3

import "github.com/reoring/bsmap/beatmap"

// Obstacle is a wall with an explicit row and height.
type Obstacle struct {
	beatmap.Grid
}

var _ beatmap.Obstacle = (*Obstacle)(nil)

// NewObstacle builds a wall from a partial record, filling defaults.
func NewObstacle(p beatmap.Partial) *Obstacle {
	return &Obstacle{beatmap.NewGrid(ObstacleTable, p, beatmap.ExtensionsV3)}
}

// CreateObstacle returns one wall per partial, or a single default wall.
func CreateObstacle(ps ...beatmap.Partial) []*Obstacle { return beatmap.Create(NewObstacle, ps...) }

func (o *Obstacle) Duration() float64     { return o.Float("duration") }
func (o *Obstacle) SetDuration(v float64) { o.Set("duration", v) }
func (o *Obstacle) Width() int            { return o.Int("width") }
func (o *Obstacle) SetWidth(v int)        { o.Set("width", v) }
func (o *Obstacle) Height() int           { return o.Int("height") }

// SetHeight stores any height; v3 walls have no derived rows.
func (o *Obstacle) SetHeight(v int) error {
	o.Set("height", v)
	return nil
}

func (o *Obstacle) Mirror(bool) { o.MirrorX(o.Width()) }

func (o *Obstacle) IsMappingExtensions() bool {
	return o.Grid.IsMappingExtensions() || beatmap.IsMEValue(o.Width()) || beatmap.IsMEValue(o.Height())
}

// IsValid requires a positive size, a non-zero duration and a lane in the grid.
func (o *Obstacle) IsValid() bool {
	return !o.IsMappingExtensions() && o.Width() > 0 && o.Height() > 0 && o.Duration() != 0 &&
		beatmap.InGrid(o.PosX(), o.PosY())
}
