// Package savefile defines the persisted campaign record: the on-disk JSON
// layout, its schema versions and the migrations between them.
package savefile

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
)

// Meta is the listing metadata stored alongside a campaign.
type Meta struct {
	SchemaVersion int
	SavedAt       time.Time
	CompletionPct float64
	MissionName   string
}

// SaveSlot is one slot's full contents.
type SaveSlot struct {
	Number   int
	Meta     Meta
	Progress domain.CampaignProgress
}

// SlotSummary describes a slot for listings. Empty and corrupt slots carry
// only Number and the matching flag.
type SlotSummary struct {
	Number        int
	Empty         bool
	Corrupt       bool
	CampaignID    string
	Difficulty    domain.DifficultyLevel
	UnlockedIndex int
	TotalScore    int
	Meta          Meta
}

// NewSaveSlot snapshots progress into a slot record stamped at now.
func NewSaveSlot(number int, progress *domain.CampaignProgress, now time.Time) *SaveSlot {
	return &SaveSlot{
		Number: number,
		Meta: Meta{
			SchemaVersion: CurrentSchemaVersion,
			SavedAt:       now.UTC(),
			CompletionPct: progress.CompletionPct(),
			MissionName:   MissionName(progress),
		},
		Progress: *progress.Clone(),
	}
}

// MissionName is the display name recorded for a campaign's current position.
func MissionName(p *domain.CampaignProgress) string {
	if m, ok := p.CurrentMission(); ok {
		return m.Name
	}
	return "Campaign Complete"
}

// Summary reports the listing view of a loaded slot.
func (s *SaveSlot) Summary() SlotSummary {
	return SlotSummary{
		Number:        s.Number,
		CampaignID:    s.Progress.ID,
		Difficulty:    s.Progress.Difficulty,
		UnlockedIndex: s.Progress.UnlockedIndex,
		TotalScore:    s.Progress.TotalScore(),
		Meta:          s.Meta,
	}
}
