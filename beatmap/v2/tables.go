// Package v2 adapts the legacy 2.x difficulty schema to the wrapper API.
package v2

import "github.com/reoring/bsmap/schema"

// VersionPattern matches every 2.x schema tag.
const VersionPattern = `^2\.\d+\.\d+$`

// DefaultVersion is written by newly created difficulties.
const DefaultVersion = "2.6.0"

var (
	NoteTable = schema.Object("v2.note").
			Float("_time").Alias("time").
			Int("_lineIndex").Alias("posX").
			Int("_lineLayer").Alias("posY").
			Int("_type").Alias("color").Enum(0, 1, 3).
			Int("_cutDirection").Alias("direction").
			CustomData("_customData").
			MustBuild()

	ObstacleTable = schema.Object("v2.obstacle").
			Float("_time").Alias("time").
			Int("_lineIndex").Alias("posX").
			Int("_type").Alias("type").
			Float("_duration").Alias("duration").Default(1).
			Int("_width").Alias("width").Default(1).
			CustomData("_customData").
			MustBuild()

	EventTable = schema.Object("v2.event").
			Float("_time").Alias("time").
			Int("_type").Alias("type").
			Int("_value").Alias("value").
			Float("_floatValue").Alias("floatValue").Default(1).
			CustomData("_customData").
			MustBuild()

	WaypointTable = schema.Object("v2.waypoint").
			Float("_time").Alias("time").
			Int("_lineIndex").Alias("posX").
			Int("_lineLayer").Alias("posY").
			Int("_offsetDirection").Alias("direction").
			CustomData("_customData").
			MustBuild()

	SliderTable = schema.Object("v2.slider").
			Int("_colorType").Alias("color").Enum(0, 1).
			Float("_headTime").Alias("time").
			Int("_headLineIndex").Alias("posX").
			Int("_headLineLayer").Alias("posY").
			Int("_headCutDirection").Alias("direction").
			Float("_headControlPointLengthMultiplier").Alias("lengthMultiplier").Default(1).
			Float("_tailTime").Alias("tailTime").
			Int("_tailLineIndex").Alias("tailPosX").
			Int("_tailLineLayer").Alias("tailPosY").
			Int("_tailCutDirection").Alias("tailDirection").
			Float("_tailControlPointLengthMultiplier").Alias("tailLengthMultiplier").Default(1).
			Int("_sliderMidAnchorMode").Alias("midAnchor").
			CustomData("_customData").
			MustBuild()

	keywordTable = schema.Object("v2.keyword").
			String("_keyword").Alias("keyword").
			Array("_specialEvents", nil).Alias("events").
			MustBuild()

	SpecialEventsKeywordFiltersTable = schema.Object("v2.specialEventsKeywordFilters").
						Array("_keywords", keywordTable).Alias("list").
						MustBuild()

	DifficultyTable = schema.Object("v2.difficulty").
			String("_version").Alias("version").Default(DefaultVersion).Required().Pattern(VersionPattern).
			Array("_notes", NoteTable).Required().
			Array("_sliders", SliderTable).Since("2.6.0").Required().
			Array("_obstacles", ObstacleTable).Required().
			Array("_events", EventTable).Required().
			Array("_waypoints", WaypointTable).Since("2.2.0").Required().
			Nested("_specialEventsKeywordFilters", SpecialEventsKeywordFiltersTable).Since("2.4.0").
			CustomData("_customData").
			MustBuild()
)
