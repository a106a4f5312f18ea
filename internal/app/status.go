package app

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
)

type SignalView struct {
	Signal domain.Signal
	Value  float64
	Weight float64
}

type ObjectiveView struct {
	ID     string
	Kind   domain.ObjectiveKind
	Target string
	Amount int
	Done   bool
}

// SessionStatus is the per-frame HUD snapshot of a session.
type SessionStatus struct {
	CampaignID   string
	Difficulty   domain.DifficultyLevel
	MissionID    domain.MissionID
	MissionName  string
	MissionIndex int
	Neighborhood string
	Timestamp    string

	Phase      domain.MissionPhase
	PhaseLabel string

	Stability            float64
	NegotiationThreshold float64
	ResolutionThreshold  float64
	Signals              []SignalView

	Elapsed time.Duration
	// ConflictRemaining is set only during UrbanConflict.
	ConflictRemaining *time.Duration
	Objectives        []ObjectiveView

	UnlockedCount    int
	MissionCount     int
	CompletionPct    float64
	TotalScore       int
	CampaignComplete bool
	// LastSaved is when the session was last written to a slot.
	LastSaved *time.Time
}

// SlotView is one row of the save-slot listing.
type SlotView struct {
	Number        int
	Empty         bool
	Corrupt       bool
	CampaignID    string
	Difficulty    domain.DifficultyLevel
	MissionName   string
	CompletionPct float64
	UnlockedIndex int
	TotalScore    int
	SavedAt       *time.Time
}

// HistoryView is one recorded save of a slot.
type HistoryView struct {
	CampaignID    string
	CompletionPct float64
	UnlockedIndex int
	SavedAt       time.Time
}
