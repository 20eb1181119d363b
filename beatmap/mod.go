package beatmap

// Custom-data keys that mark an object as using a community extension.
var (
	ChromaKeysV2 = []string{"_color"}
	ChromaKeysV3 = []string{"color"}

	NoodleKeysV2 = []string{
		"_animation", "_fake", "_interactable", "_localRotation",
		"_noteJumpMovementSpeed", "_noteJumpStartBeatOffset", "_position",
		"_rotation", "_scale", "_flip", "_disableNoteGravity", "_disableNoteLook",
	}
	NoodleKeysV3 = []string{
		"animation", "uninteractable", "localRotation", "worldRotation",
		"noteJumpMovementSpeed", "noteJumpStartBeatOffset", "coordinates",
		"tailCoordinates", "size", "flip", "disableNoteGravity", "disableNoteLook",
	}
)

// IsValidDirection reports whether a note cut direction is 0-8.
func IsValidDirection(d int) bool { return d >= 0 && d <= 8 }

// IsValidWaypointDirection reports whether an offset direction is 0-9 except 8.
func IsValidWaypointDirection(d int) bool { return d >= 0 && d <= 9 && d != 8 }

// InGrid reports whether a lane position lies on the vanilla grid.
func InGrid(x, y int) bool { return x >= 0 && x < LineCount && y >= 0 && y < LayerCount }
