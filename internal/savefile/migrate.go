package savefile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/culiacan/internal/domain"
)

// migrations maps a schema version to the step that rewrites a record of
// that version into the next one. Steps operate on raw JSON so they chain.
var migrations = map[int]func([]byte) ([]byte, error){
	1: migrateV1ToV2,
}

// legacyMissions maps the enum labels of legacy saves to catalog ids. The
// third mission was written as "LasFloresiDefense".
var legacyMissions = map[string]domain.MissionID{
	"InitialRaid":            domain.MissionInitialRaid,
	"UrbanWarfare":           domain.MissionUrbanWarfare,
	"LasFloresiDefense":      domain.MissionLasFloresDefense,
	"TierraBlancaRoadblocks": domain.MissionTierraBlancaRoadblocks,
	"CentroUrbanFight":       domain.MissionCentroUrbanFight,
	"LasQuintasSiege":        domain.MissionLasQuintasSiege,
	"AirportAssault":         domain.MissionAirportAssault,
	"GovernmentResponse":     domain.MissionGovernmentResponse,
	"CivilianEvacuation":     domain.MissionCivilianEvacuation,
	"PoliticalNegotiation":   domain.MissionPoliticalNegotiation,
	"CeasefireNegotiation":   domain.MissionCeasefireNegotiation,
	"OrderedWithdrawal":      domain.MissionOrderedWithdrawal,
	"Resolution":             domain.MissionResolution,
}

// migrateV1ToV2 rebuilds the outcome list from the legacy completed set.
//
// Legacy saves kept no pressure, so each outcome gets a zero snapshot, and
// the best time becomes the outcome's elapsed time. Only the unbroken prefix
// of the mission sequence survives, since later missions cannot be
// completed without the ones before them. Legacy saves kept only a running
// score total; it is booked against the last surviving completion.
func migrateV1ToV2(data []byte) ([]byte, error) {
	var v1 legacyRecord
	if err := json.Unmarshal(data, &v1); err != nil {
		return nil, err
	}
	cp := v1.CampaignProgress

	difficulty := domain.DifficultyLevel(strings.ToLower(cp.DifficultyLevel))
	if !domain.ValidDifficulties[string(difficulty)] {
		difficulty = domain.DifficultyVeteran
	}
	if cp.TotalScore < 0 {
		return nil, fmt.Errorf("legacy total score %d is negative", cp.TotalScore)
	}

	completed := make(map[domain.MissionID]bool, len(cp.CompletedMissions))
	for _, name := range cp.CompletedMissions {
		if id, ok := legacyMissionID(name); ok {
			completed[id] = true
		}
	}
	best := make(map[domain.MissionID]float64, len(cp.BestTimes))
	for name, sec := range cp.BestTimes {
		if id, ok := legacyMissionID(name); ok {
			best[id] = sec
		}
	}

	slot := v1.SlotNumber
	if slot < MinSlot || slot > MaxSlot {
		return nil, fmt.Errorf("legacy slot %d out of range", slot)
	}

	rec := recordV2{
		SchemaVersion: 2,
		Slot:          slot,
		Meta:          metaRecord{SavedAt: v1.Timestamp},
		Campaign: campaignRecord{
			Difficulty: string(difficulty),
			StartedAt:  v1.Timestamp,
		},
	}
	for _, m := range domain.Missions() {
		if !completed[m.ID] {
			break
		}
		elapsed := best[m.ID]
		if elapsed < 0 {
			elapsed = 0
		}
		rec.Campaign.Outcomes = append(rec.Campaign.Outcomes, outcomeRecord{
			MissionID:  string(m.ID),
			Completed:  true,
			ElapsedSec: elapsed,
		})
	}
	if n := len(rec.Campaign.Outcomes); n > 0 {
		rec.Campaign.Outcomes[n-1].Score = cp.TotalScore
	}
	rec.Campaign.UnlockedIndex = len(rec.Campaign.Outcomes)

	progress := domain.CampaignProgress{UnlockedIndex: rec.Campaign.UnlockedIndex}
	rec.Meta.CompletionPct = progress.CompletionPct()
	rec.Meta.MissionName = MissionName(&progress)

	return json.Marshal(rec)
}

// legacyMissionID resolves a legacy enum label. Catalog ids pass through.
func legacyMissionID(name string) (domain.MissionID, bool) {
	if id, ok := legacyMissions[name]; ok {
		return id, true
	}
	if _, err := domain.MissionByID(domain.MissionID(name)); err == nil {
		return domain.MissionID(name), true
	}
	return "", false
}
