package savefile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var savedAt = time.Date(2019, 10, 17, 20, 30, 0, 0, time.UTC)

func progressWithTwoMissions(t *testing.T) *domain.CampaignProgress {
	t.Helper()
	p := domain.NewCampaignProgress("camp-1", domain.DifficultyElite, savedAt.Add(-time.Hour))
	p.CompleteCurrentMission(domain.MissionOutcome{
		Completed: true, ElapsedSec: 212.5,
		Final: domain.PressureState{CivilianImpact: 0.4, EconomicDisruption: 0.3, MediaAttention: 0.5, EliteInfluence: 0.2, MilitaryMorale: 0.6},
	}, domain.DefaultCarry)
	p.CompleteCurrentMission(domain.MissionOutcome{Completed: false, ElapsedSec: 90}, domain.DefaultCarry)
	p.CompleteCurrentMission(domain.MissionOutcome{
		Completed: true, ElapsedSec: 301,
		Final: domain.PressureState{CivilianImpact: 0.7, EconomicDisruption: 0.65, MediaAttention: 0.8, EliteInfluence: 0.55, MilitaryMorale: 0.3},
	}, domain.DefaultCarry)
	require.NoError(t, p.Validate())
	return p
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	slot := NewSaveSlot(3, progressWithTwoMissions(t), savedAt)

	data, err := Encode(slot)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, slot, got)
	assert.Equal(t, "Las Flores Defense", got.Meta.MissionName)
	assert.InDelta(t, 2.0/13*100, got.Meta.CompletionPct, 1e-9)
}

func TestEncodeDecode_FreshCampaign(t *testing.T) {
	slot := NewSaveSlot(0, domain.NewCampaignProgress("fresh", domain.DifficultyRecruit, savedAt), savedAt)

	data, err := Encode(slot)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, slot, got)
	assert.Nil(t, got.Progress.Outcomes)
}

func TestEncode_WritesCurrentSchemaVersion(t *testing.T) {
	data, err := Encode(NewSaveSlot(1, progressWithTwoMissions(t), savedAt))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, CurrentSchemaVersion, raw["schema_version"])
	assert.EqualValues(t, 1, raw["slot"])
	campaign := raw["campaign"].(map[string]any)
	assert.EqualValues(t, 2, campaign["unlocked_index"])
	outcomes := campaign["outcomes"].([]any)
	require.Len(t, outcomes, 3)
	pressure := outcomes[0].(map[string]any)["pressure"].(map[string]any)
	assert.Len(t, pressure, 5)
	assert.EqualValues(t, 387+domain.SurvivalBonus, outcomes[0].(map[string]any)["score"])
}

func TestEncode_RejectsBadInput(t *testing.T) {
	t.Run("slot out of range", func(t *testing.T) {
		_, err := Encode(NewSaveSlot(10, progressWithTwoMissions(t), savedAt))
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})
	t.Run("inconsistent progress", func(t *testing.T) {
		p := progressWithTwoMissions(t)
		p.UnlockedIndex = 5
		_, err := Encode(NewSaveSlot(2, p, savedAt))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCorruptData)
	})
}

func TestDecode_Corrupt(t *testing.T) {
	valid, err := Encode(NewSaveSlot(4, progressWithTwoMissions(t), savedAt))
	require.NoError(t, err)

	tamper := func(mutate func(rec map[string]any)) []byte {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(valid, &rec))
		mutate(rec)
		out, err := json.Marshal(rec)
		require.NoError(t, err)
		return out
	}
	campaign := func(rec map[string]any) map[string]any { return rec["campaign"].(map[string]any) }

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not json", []byte("{\"schema_version\": 2, ")},
		{"truncated", valid[:len(valid)/2]},
		{"no version", []byte(`{"slot": 1}`)},
		{"future version", tamper(func(r map[string]any) { r["schema_version"] = 3 })},
		{"zero version", tamper(func(r map[string]any) { r["schema_version"] = 0 })},
		{"slot out of range", tamper(func(r map[string]any) { r["slot"] = 12 })},
		{"unlocked index past end", tamper(func(r map[string]any) { campaign(r)["unlocked_index"] = 14 })},
		{"unlocked index mismatch", tamper(func(r map[string]any) { campaign(r)["unlocked_index"] = 1 })},
		{"unknown difficulty", tamper(func(r map[string]any) { campaign(r)["difficulty"] = "nightmare" })},
		{"bad timestamp", tamper(func(r map[string]any) { r["meta"].(map[string]any)["saved_at"] = "yesterday" })},
		{"pressure out of range", tamper(func(r map[string]any) {
			o := campaign(r)["outcomes"].([]any)[0].(map[string]any)
			o["pressure"].(map[string]any)["media_attention"] = 1.5
		})},
		{"unknown mission", tamper(func(r map[string]any) {
			campaign(r)["outcomes"].([]any)[0].(map[string]any)["mission_id"] = "moon_landing"
		})},
		{"legacy version without payload", []byte(`{"version": "2.0.0"}`)},
		{"negative score", tamper(func(r map[string]any) {
			campaign(r)["outcomes"].([]any)[0].(map[string]any)["score"] = -10
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestValidateSlot(t *testing.T) {
	for n := MinSlot; n <= MaxSlot; n++ {
		assert.NoError(t, ValidateSlot(n))
	}
	assert.ErrorIs(t, ValidateSlot(-1), ErrInvalidSlot)
	assert.ErrorIs(t, ValidateSlot(10), ErrInvalidSlot)
	assert.Equal(t, 10, SlotCount)
}

func TestSaveSlot_SummaryAndMissionName(t *testing.T) {
	p := progressWithTwoMissions(t)
	s := NewSaveSlot(7, p, savedAt)
	sum := s.Summary()
	assert.Equal(t, 7, sum.Number)
	assert.Equal(t, "camp-1", sum.CampaignID)
	assert.Equal(t, domain.DifficultyElite, sum.Difficulty)
	assert.Equal(t, 2, sum.UnlockedIndex)
	assert.False(t, sum.Empty)

	done := &domain.CampaignProgress{UnlockedIndex: domain.MissionCount}
	assert.Equal(t, "Campaign Complete", MissionName(done))
}

func TestNewSaveSlot_CopiesProgress(t *testing.T) {
	p := progressWithTwoMissions(t)
	s := NewSaveSlot(1, p, savedAt)
	p.Outcomes[0].ElapsedSec = 1
	assert.Equal(t, 212.5, s.Progress.Outcomes[0].ElapsedSec)
}
