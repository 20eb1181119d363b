package beatmap

// Basic event types with a fixed meaning.
const (
	EventBackLasers       = 0
	EventRingLights       = 1
	EventLeftLasers       = 2
	EventRightLasers      = 3
	EventCenterLights     = 4
	EventColorBoost       = 5
	EventRingRotation     = 8
	EventRingZoom         = 9
	EventLeftLaserSpeed   = 12
	EventRightLaserSpeed  = 13
	EventEarlyRotation    = 14
	EventLateRotation     = 15
	EventBPMChange        = 100
	OldChromaColorMinimum = 2000000000
)

// Light event values.
const (
	LightOff       = 0
	LightBlueOn    = 1
	LightBlueFlash = 2
	LightBlueFade  = 3
	LightBlueTrans = 4
	LightRedOn     = 5
	LightRedFlash  = 6
	LightRedFade   = 7
	LightRedTrans  = 8
	LightWhiteOn   = 9
)

var (
	ChromaEventKeysV2 = []string{
		"_color", "_lightID", "_propID", "_lightGradient", "_easing", "_lerpType",
		"_lockPosition", "_nameFilter", "_rotation", "_step", "_prop", "_speed",
		"_preciseSpeed", "_direction", "_reset", "_counterSpin", "_stepMult", "_propMult",
	}
	ChromaEventKeysV3 = []string{
		"color", "lightID", "easing", "lerpType", "lockRotation", "nameFilter",
		"rotation", "step", "prop", "speed", "direction",
	}
)

// IsLightEvent reports whether t drives a light group.
func IsLightEvent(t int) bool {
	return (t >= 0 && t <= 4) || t == 6 || t == 7 || t == 10 || t == 11
}

func IsRingEvent(t int) bool          { return t == EventRingRotation || t == EventRingZoom }
func IsLaserRotationEvent(t int) bool { return t == EventLeftLaserSpeed || t == EventRightLaserSpeed }
func IsLaneRotationEvent(t int) bool  { return t == EventEarlyRotation || t == EventLateRotation }
func IsColorBoostEvent(t int) bool    { return t == EventColorBoost }
func IsBPMChangeEvent(t int) bool     { return t == EventBPMChange }

// IsOldChromaValue reports whether v packs an RGB color the legacy way.
func IsOldChromaValue(v int) bool { return v >= OldChromaColorMinimum }

var laneRotations = [...]float64{-60, -45, -30, -15, 15, 30, 45, 60}

// LaneRotation decodes a legacy lane-rotation event value to degrees.
// Values 1000-1720 encode 1360 + degrees.
func LaneRotation(v int) float64 {
	switch {
	case v >= 0 && v < len(laneRotations):
		return laneRotations[v]
	case v >= 1000 && v <= 1720:
		return float64(v - 1360)
	}
	return 0
}

// LaneRotationValue encodes degrees as a legacy event value, preferring the
// compact table.
func LaneRotationValue(deg float64) int {
	for i, r := range laneRotations {
		if r == deg {
			return i
		}
	}
	return int(deg) + 1360
}
