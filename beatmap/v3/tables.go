// Package v3 adapts the 3.x difficulty schema to the wrapper API.
package v3

import "github.com/reoring/bsmap/schema"

// VersionPattern matches every 3.x schema tag.
const VersionPattern = `^3\.\d+\.\d+$`

const DefaultVersion = "3.2.0"

var (
	BPMEventTable = schema.Object("v3.bpmEvent").
			Float("b").Alias("time").
			Float("m").Alias("bpm").
			CustomData("customData").
			MustBuild()

	RotationEventTable = schema.Object("v3.rotationEvent").
				Float("b").Alias("time").
				Int("e").Alias("executionTime").Enum(0, 1).
				Float("r").Alias("rotation").
				CustomData("customData").
				MustBuild()

	ColorNoteTable = schema.Object("v3.colorNote").
			Float("b").Alias("time").
			Int("c").Alias("color").Enum(0, 1).
			Int("x").Alias("posX").
			Int("y").Alias("posY").
			Int("d").Alias("direction").
			Int("a").Alias("angleOffset").
			CustomData("customData").
			MustBuild()

	BombNoteTable = schema.Object("v3.bombNote").
			Float("b").Alias("time").
			Int("x").Alias("posX").
			Int("y").Alias("posY").
			CustomData("customData").
			MustBuild()

	ObstacleTable = schema.Object("v3.obstacle").
			Float("b").Alias("time").
			Int("x").Alias("posX").
			Int("y").Alias("posY").
			Float("d").Alias("duration").Default(1).
			Int("w").Alias("width").Default(1).
			Int("h").Alias("height").Default(1).
			CustomData("customData").
			MustBuild()

	SliderTable = schema.Object("v3.slider").
			Float("b").Alias("time").
			Int("c").Alias("color").Enum(0, 1).
			Int("x").Alias("posX").
			Int("y").Alias("posY").
			Int("d").Alias("direction").
			Float("mu").Alias("lengthMultiplier").Default(1).
			Float("tb").Alias("tailTime").
			Int("tx").Alias("tailPosX").
			Int("ty").Alias("tailPosY").
			Int("tc").Alias("tailDirection").
			Float("tmu").Alias("tailLengthMultiplier").Default(1).
			Int("m").Alias("midAnchor").Enum(0, 1, 2).
			CustomData("customData").
			MustBuild()

	BurstSliderTable = schema.Object("v3.burstSlider").
				Float("b").Alias("time").
				Int("c").Alias("color").Enum(0, 1).
				Int("x").Alias("posX").
				Int("y").Alias("posY").
				Int("d").Alias("direction").
				Float("tb").Alias("tailTime").
				Int("tx").Alias("tailPosX").
				Int("ty").Alias("tailPosY").
				Int("sc").Alias("sliceCount").Default(1).
				Float("s").Alias("squish").Default(1).
				CustomData("customData").
				MustBuild()

	WaypointTable = schema.Object("v3.waypoint").
			Float("b").Alias("time").
			Int("x").Alias("posX").
			Int("y").Alias("posY").
			Int("d").Alias("direction").
			CustomData("customData").
			MustBuild()

	BasicEventTable = schema.Object("v3.basicEvent").
			Float("b").Alias("time").
			Int("et").Alias("type").
			Int("i").Alias("value").
			Float("f").Alias("floatValue").Default(1).
			CustomData("customData").
			MustBuild()

	ColorBoostEventTable = schema.Object("v3.colorBoostEvent").
				Float("b").Alias("time").
				Bool("o").Alias("toggle").
				CustomData("customData").
				MustBuild()

	IndexFilterTable = schema.Object("v3.indexFilter").
				Int("f").Alias("type").Default(1).Enum(1, 2).
				Int("p").Alias("peak").
				Int("t").Alias("param").
				Int("r").Alias("reverse").Enum(0, 1).
				Int("c").Alias("chunks").Since("3.1.0").
				Float("l").Alias("limit").Since("3.1.0").
				Int("d").Alias("limitAffects").Since("3.1.0").
				Int("n").Alias("randomType").Since("3.1.0").
				Int("s").Alias("seed").Since("3.1.0").
				CustomData("customData").
				MustBuild()

	LightColorBaseTable = schema.Object("v3.lightColorBase").
				Float("b").Alias("time").
				Int("i").Alias("transition").Enum(0, 1, 2).
				Int("c").Alias("color").Enum(-1, 0, 1, 2).
				Float("s").Alias("brightness").Default(1).
				Int("f").Alias("frequency").
				CustomData("customData").
				MustBuild()

	LightRotationBaseTable = schema.Object("v3.lightRotationBase").
				Float("b").Alias("time").
				Int("p").Alias("previous").Enum(0, 1).
				Int("e").Alias("easing").
				Int("l").Alias("loop").
				Float("r").Alias("rotation").
				Int("o").Alias("direction").Enum(0, 1, 2).
				CustomData("customData").
				MustBuild()

	LightTranslationBaseTable = schema.Object("v3.lightTranslationBase").
					Float("b").Alias("time").
					Int("p").Alias("previous").Enum(0, 1).
					Int("e").Alias("easing").
					Float("t").Alias("translation").
					CustomData("customData").
					MustBuild()

	LightColorEventBoxTable = schema.Object("v3.lightColorEventBox").
				Nested("f", IndexFilterTable).Alias("filter").
				Float("w").Alias("beatDistribution").
				Int("d").Alias("beatDistributionType").Default(1).
				Float("r").Alias("brightnessDistribution").
				Int("t").Alias("brightnessDistributionType").Default(1).
				Int("b").Alias("affectFirst").Enum(0, 1).
				Int("i").Alias("easing").Since("3.2.0").
				Array("e", LightColorBaseTable).Alias("events").
				CustomData("customData").
				MustBuild()

	LightRotationEventBoxTable = schema.Object("v3.lightRotationEventBox").
					Nested("f", IndexFilterTable).Alias("filter").
					Float("w").Alias("beatDistribution").
					Int("d").Alias("beatDistributionType").Default(1).
					Float("s").Alias("rotationDistribution").
					Int("t").Alias("rotationDistributionType").Default(1).
					Int("a").Alias("axis").Enum(0, 1, 2).
					Int("r").Alias("flip").Enum(0, 1).
					Int("b").Alias("affectFirst").Enum(0, 1).
					Int("i").Alias("easing").Since("3.2.0").
					Array("l", LightRotationBaseTable).Alias("events").
					CustomData("customData").
					MustBuild()

	LightTranslationEventBoxTable = schema.Object("v3.lightTranslationEventBox").
					Nested("f", IndexFilterTable).Alias("filter").
					Float("w").Alias("beatDistribution").
					Int("d").Alias("beatDistributionType").Default(1).
					Float("s").Alias("translationDistribution").
					Int("t").Alias("translationDistributionType").Default(1).
					Int("a").Alias("axis").Enum(0, 1, 2).
					Int("r").Alias("flip").Enum(0, 1).
					Int("b").Alias("affectFirst").Enum(0, 1).
					Int("i").Alias("easing").
					Array("l", LightTranslationBaseTable).Alias("events").
					CustomData("customData").
					MustBuild()

	LightColorEventBoxGroupTable       = groupTable("v3.lightColorEventBoxGroup", LightColorEventBoxTable)
	LightRotationEventBoxGroupTable    = groupTable("v3.lightRotationEventBoxGroup", LightRotationEventBoxTable)
	LightTranslationEventBoxGroupTable = groupTable("v3.lightTranslationEventBoxGroup", LightTranslationEventBoxTable)

	basicEventTypesForKeywordsTable = schema.Object("v3.basicEventTypesForKeywords").
					String("k").Alias("keyword").
					Array("e", nil).Alias("events").
					MustBuild()

	BasicEventTypesWithKeywordsTable = schema.Object("v3.basicEventTypesWithKeywords").
						Array("d", basicEventTypesForKeywordsTable).Alias("list").
						MustBuild()

	DifficultyTable = schema.Object("v3.difficulty").
			String("version").Default(DefaultVersion).Required().Pattern(VersionPattern).
			Array("bpmEvents", BPMEventTable).Required().
			Array("rotationEvents", RotationEventTable).Required().
			Array("colorNotes", ColorNoteTable).Required().
			Array("bombNotes", BombNoteTable).Required().
			Array("obstacles", ObstacleTable).Required().
			Array("sliders", SliderTable).Required().
			Array("burstSliders", BurstSliderTable).Required().
			Array("waypoints", WaypointTable).Required().
			Array("basicBeatmapEvents", BasicEventTable).Alias("basicEvents").Required().
			Array("colorBoostBeatmapEvents", ColorBoostEventTable).Alias("colorBoostEvents").Required().
			Array("lightColorEventBoxGroups", LightColorEventBoxGroupTable).Required().
			Array("lightRotationEventBoxGroups", LightRotationEventBoxGroupTable).Required().
			Array("lightTranslationEventBoxGroups", LightTranslationEventBoxGroupTable).Since("3.2.0").Required().
			Nested("basicEventTypesWithKeywords", BasicEventTypesWithKeywordsTable).Required().
			Bool("useNormalEventsAsCompatibleEvents").Required().
			CustomData("customData").
			MustBuild()
)

func groupTable(name string, box *schema.Table) *schema.Table {
	return schema.Object(name).
		Float("b").Alias("time").
		Int("g").Alias("id").
		Array("e", box).Alias("boxes").
		CustomData("customData").
		MustBuild()
}
