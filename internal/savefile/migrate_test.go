package savefile

import (
	"testing"
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacySave is a slot save as the first release wrote it.
const legacySave = `{
  "game_state": {
    "cartel_score": 120,
    "military_score": 40,
    "game_phase": "BlockConvoy",
    "ovidio_captured": false,
    "mission_timer": 401.2
  },
  "campaign_progress": {
    "current_mission": "LasFloresiDefense",
    "completed_missions": ["InitialRaid", "UrbanWarfare"],
    "difficulty_level": "Elite",
    "total_score": 2215,
    "best_times": {"InitialRaid": 244.5, "UrbanWarfare": 401.0}
  },
  "timestamp": "2019-10-17T19:45:12.500+00:00",
  "version": "2.0.0",
  "slot_number": 3,
  "mission_name": "Las Flores Defense",
  "playtime_seconds": 401
}`

func TestDecode_MigratesLegacySave(t *testing.T) {
	got, err := Decode([]byte(legacySave))
	require.NoError(t, err)

	ts := time.Date(2019, 10, 17, 19, 45, 12, 500_000_000, time.UTC)
	assert.Equal(t, 3, got.Number)
	assert.Equal(t, CurrentSchemaVersion, got.Meta.SchemaVersion)
	assert.Equal(t, ts, got.Meta.SavedAt)
	assert.Equal(t, ts, got.Progress.StartedAt)
	assert.Equal(t, "Las Flores Defense", got.Meta.MissionName)

	p := got.Progress
	assert.Equal(t, domain.DifficultyElite, p.Difficulty)
	assert.Equal(t, 2, p.UnlockedIndex)
	require.Len(t, p.Outcomes, 2)
	assert.Equal(t, domain.MissionOutcome{MissionID: domain.MissionInitialRaid, Completed: true, ElapsedSec: 244.5}, p.Outcomes[0])
	assert.Equal(t, domain.MissionUrbanWarfare, p.Outcomes[1].MissionID)
	assert.Equal(t, domain.PressureState{}, p.Outcomes[1].Final)
	assert.Equal(t, 2215, p.TotalScore())
	assert.Equal(t, 2215, p.Outcomes[1].Score)
}

func TestDecode_LegacyKeepsProgressPastLasFlores(t *testing.T) {
	data := `{"game_state": {}, "version": "2.0.0", "slot_number": 1, "timestamp": "2019-10-17T20:10:00Z",
		"mission_name": "Centro Battle", "playtime_seconds": 0,
		"campaign_progress": {"current_mission": "CentroUrbanFight",
			"completed_missions": ["InitialRaid", "UrbanWarfare", "LasFloresiDefense", "TierraBlancaRoadblocks"],
			"difficulty_level": "Veteran", "total_score": 0,
			"best_times": {"LasFloresiDefense": 333.0}}}`
	got, err := Decode([]byte(data))
	require.NoError(t, err)

	p := got.Progress
	assert.Equal(t, 4, p.UnlockedIndex)
	require.Len(t, p.Outcomes, 4)
	assert.Equal(t, domain.MissionLasFloresDefense, p.Outcomes[2].MissionID)
	assert.Equal(t, 333.0, p.Outcomes[2].ElapsedSec)
	assert.Equal(t, "Centro Battle", got.Meta.MissionName)
}

func TestDecode_LegacyKeepsOnlyUnbrokenPrefix(t *testing.T) {
	data := `{"version": "2.0.0", "timestamp": "2019-10-17T19:45:12Z", "slot_number": 0,
		"campaign_progress": {"current_mission": "CivilianEvacuation",
			"completed_missions": ["InitialRaid", "GovernmentResponse"], "difficulty_level": "Veteran",
			"total_score": 0, "best_times": {}}}`
	got, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Progress.UnlockedIndex)
	assert.Len(t, got.Progress.Outcomes, 1)
}

func TestDecode_LegacyUnknownDifficultyFallsBack(t *testing.T) {
	data := `{"version": "2.0.0", "timestamp": "", "slot_number": 0,
		"campaign_progress": {"completed_missions": [], "difficulty_level": "Nightmare"}}`
	got, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyVeteran, got.Progress.Difficulty)
	assert.Equal(t, 0, got.Progress.UnlockedIndex)
	assert.Equal(t, "Initial Raid", got.Meta.MissionName)
}

func TestDecode_SingleFileSaveStartsFresh(t *testing.T) {
	data := `{"game_state": {"cartel_score": 10}, "timestamp": "2019-10-17T16:00:00Z", "version": "1.0.0"}`
	got, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Number)
	assert.Equal(t, domain.DifficultyVeteran, got.Progress.Difficulty)
	assert.Empty(t, got.Progress.Outcomes)
}

func TestDecode_LegacyBadRecordsAreCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"slot out of range", `{"version": "2.0.0", "slot_number": 42, "campaign_progress": {}}`},
		{"negative score", `{"version": "2.0.0", "slot_number": 1, "campaign_progress": {"total_score": -5}}`},
		{"wrong field type", `{"version": "2.0.0", "slot_number": "one", "campaign_progress": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestMigrations_ChainToCurrent(t *testing.T) {
	for v := 1; v < CurrentSchemaVersion; v++ {
		_, ok := migrations[v]
		assert.True(t, ok, "missing migration from version %d", v)
	}
}

func TestLegacyMissionID(t *testing.T) {
	tests := []struct {
		label string
		want  domain.MissionID
	}{
		{"InitialRaid", domain.MissionInitialRaid},
		{"LasFloresiDefense", domain.MissionLasFloresDefense},
		{"GovernmentResponse", domain.MissionGovernmentResponse},
		{"Resolution", domain.MissionResolution},
		{"airport_assault", domain.MissionAirportAssault},
	}
	for _, tt := range tests {
		got, ok := legacyMissionID(tt.label)
		assert.True(t, ok, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}

	_, ok := legacyMissionID("MoonLanding")
	assert.False(t, ok)
}

func TestLegacyMissionID_CoversCatalog(t *testing.T) {
	seen := make(map[domain.MissionID]bool)
	for _, id := range legacyMissions {
		seen[id] = true
	}
	for _, m := range domain.Missions() {
		assert.True(t, seen[m.ID], "no legacy label for %s", m.ID)
	}
}
