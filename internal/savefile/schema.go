package savefile

import "encoding/json"

// CurrentSchemaVersion is the version Encode writes.
const CurrentSchemaVersion = 2

// versionHeader reads just enough of a record to pick its migration path.
// Legacy saves have no schema_version; they carry a release string in
// "version" next to a campaign_progress or game_state payload.
type versionHeader struct {
	SchemaVersion    *int            `json:"schema_version"`
	Version          string          `json:"version"`
	CampaignProgress json.RawMessage `json:"campaign_progress"`
	GameState        json.RawMessage `json:"game_state"`
}

// recordV2 is the current on-disk layout.
type recordV2 struct {
	SchemaVersion int            `json:"schema_version"`
	Slot          int            `json:"slot"`
	Meta          metaRecord     `json:"meta"`
	Campaign      campaignRecord `json:"campaign"`
}

type metaRecord struct {
	SavedAt       string  `json:"saved_at"`
	CompletionPct float64 `json:"completion_pct"`
	MissionName   string  `json:"mission_name"`
}

type campaignRecord struct {
	ID            string          `json:"id"`
	Difficulty    string          `json:"difficulty"`
	UnlockedIndex int             `json:"unlocked_index"`
	StartedAt     string          `json:"started_at"`
	Outcomes      []outcomeRecord `json:"outcomes"`
}

type outcomeRecord struct {
	MissionID  string         `json:"mission_id"`
	Completed  bool           `json:"completed"`
	ElapsedSec float64        `json:"elapsed_sec"`
	Score      int            `json:"score"`
	Pressure   pressureRecord `json:"pressure"`
}

type pressureRecord struct {
	CivilianImpact     float64 `json:"civilian_impact"`
	EconomicDisruption float64 `json:"economic_disruption"`
	MediaAttention     float64 `json:"media_attention"`
	EliteInfluence     float64 `json:"elite_influence"`
	MilitaryMorale     float64 `json:"military_morale"`
}

// legacyRecord is the slot save written by the first release, whatever its
// "version" string says. Mission and difficulty names are enum labels
// ("InitialRaid", "Veteran"). The game_state blob belongs to the combat layer
// and is not read. Older single-file saves carry only game_state, timestamp
// and version.
type legacyRecord struct {
	CampaignProgress legacyCampaign `json:"campaign_progress"`
	Timestamp        string         `json:"timestamp"`
	Version          string         `json:"version"`
	SlotNumber       int            `json:"slot_number"`
	MissionName      string         `json:"mission_name"`
	PlaytimeSeconds  uint64         `json:"playtime_seconds"`
}

type legacyCampaign struct {
	CurrentMission    string             `json:"current_mission"`
	CompletedMissions []string           `json:"completed_missions"`
	DifficultyLevel   string             `json:"difficulty_level"`
	TotalScore        int                `json:"total_score"`
	BestTimes         map[string]float64 `json:"best_times"`
}
