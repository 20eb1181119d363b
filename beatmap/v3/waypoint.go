package v3

import "github.com/reoring/bsmap/beatmap"

// Waypoint marks a point on the player's path.
type Waypoint struct {
	beatmap.Grid
}

var _ beatmap.Waypoint = (*Waypoint)(nil)

// NewWaypoint builds a waypoint from a partial record, filling defaults.
func NewWaypoint(p beatmap.Partial) *Waypoint {
	return &Waypoint{beatmap.NewGrid(WaypointTable, p, beatmap.ExtensionsV3)}
}

// CreateWaypoint returns one waypoint per partial, or a single default waypoint.
func CreateWaypoint(ps ...beatmap.Partial) []*Waypoint { return beatmap.Create(NewWaypoint, ps...) }

func (w *Waypoint) Direction() int     { return w.Int("direction") }
func (w *Waypoint) SetDirection(v int) { w.Set("direction", v) }

func (w *Waypoint) Mirror(bool) {
	w.MirrorX(1)
	w.SetDirection(beatmap.MirrorDirection(w.Direction()))
}

// IsValid requires a lane in the grid and a direction from 0 to 9 other
// than 8.
func (w *Waypoint) IsValid() bool {
	return !w.IsMappingExtensions() && beatmap.InGrid(w.PosX(), w.PosY()) &&
		beatmap.IsValidWaypointDirection(w.Direction())
}
