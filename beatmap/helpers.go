package beatmap

import (
	"cmp"
	"slices"
)

const (
	// LaneSize is the width of one grid lane in engine units.
	LaneSize = 0.6
	// LineCount is the number of lanes.
	LineCount = 4
	// LayerCount is the number of rows.
	LayerCount = 3
)

// Vector2 is an (x, y) pair in lane units.
type Vector2 [2]float64

// GridToUnityUnit converts lane units to engine units.
func GridToUnityUnit(v float64) float64 { return v * LaneSize }

// UnityToGridUnit converts engine units to lane units.
func UnityToGridUnit(v float64) float64 { return v / LaneSize }

// ModType selects how out-of-grid positions are interpreted.
type ModType string

const (
	ModVanilla ModType = "vanilla"
	ModNoodle  ModType = "ne"
	ModMapping ModType = "me"
)

// DecodeME converts a mapping-extensions fixed-point lane value; values at or
// beyond ±1000 are divided by 1000, others are returned unchanged.
func DecodeME(v int) float64 {
	if v <= -1000 || v >= 1000 {
		return float64(v) / 1000
	}
	return float64(v)
}

// IsMEValue reports whether v uses the mapping-extensions encoding.
func IsMEValue(v int) bool { return v <= -1000 || v >= 1000 }

// GridPosition centers (posX, posY) on the grid. Vanilla clamps to the legal
// lanes; noodle uses override when present and otherwise behaves like
// mapping-extensions, which decodes fixed-point values.
func GridPosition(posX, posY int, override *Vector2, mod ModType) Vector2 {
	switch mod {
	case ModVanilla:
		return Vector2{float64(clamp(posX, 0, LineCount-1)) - 2, float64(clamp(posY, 0, LayerCount-1))}
	case ModNoodle:
		if override != nil {
			return *override
		}
	}
	return Vector2{DecodeME(posX) - 2, DecodeME(posY)}
}

func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }

// MirrorDirection swaps horizontal cut directions (2↔3, 4↔5, 6↔7).
func MirrorDirection(d int) int {
	switch d {
	case 2:
		return 3
	case 3:
		return 2
	case 4:
		return 5
	case 5:
		return 4
	case 6:
		return 7
	case 7:
		return 6
	}
	return d
}

// MirrorColor swaps red and blue; other values are returned unchanged.
func MirrorColor(c int) int {
	if c == 0 || c == 1 {
		return 1 - c
	}
	return c
}

// SortObjectFn orders objects by time.
func SortObjectFn(a, b BaseObject) int { return cmp.Compare(a.Time(), b.Time()) }

// positionOverrideKeys are the custom-data keys that override note position,
// v3 first then v2.
var positionOverrideKeys = []string{"coordinates", "_position"}

// SortNoteFn orders notes by time, then by the custom position override when
// both notes carry the same one, otherwise by posX then posY.
func SortNoteFn(a, b GridObject) int {
	if c := cmp.Compare(a.Time(), b.Time()); c != 0 {
		return c
	}
	ca, cb := a.CustomData(), b.CustomData()
	for _, k := range positionOverrideKeys {
		pa, okA := ca.Vector2(k)
		pb, okB := cb.Vector2(k)
		if okA && okB {
			return cmp.Or(cmp.Compare(pa[0], pb[0]), cmp.Compare(pa[1], pb[1]))
		}
	}
	return cmp.Or(cmp.Compare(a.PosX(), b.PosX()), cmp.Compare(a.PosY(), b.PosY()))
}

// SortObjects stably sorts s by time.
func SortObjects[T BaseObject](s []T) {
	slices.SortStableFunc(s, func(a, b T) int { return SortObjectFn(a, b) })
}

// SortNotes stably sorts s with SortNoteFn.
func SortNotes[T GridObject](s []T) {
	slices.SortStableFunc(s, func(a, b T) int { return SortNoteFn(a, b) })
}
