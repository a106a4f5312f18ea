package app

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
)

// SignalKind names an output event emitted by a gameplay session.
type SignalKind string

const (
	SignalPhaseChanged     SignalKind = "phase_changed"
	SignalMissionComplete  SignalKind = "mission_complete"
	SignalCampaignComplete SignalKind = "campaign_complete"
	SignalInputClamped     SignalKind = "input_clamped"
)

// Signal is one host-facing event. Only the fields relevant to Kind are set.
type Signal struct {
	Kind      SignalKind
	MissionID domain.MissionID
	From      domain.MissionPhase
	To        domain.MissionPhase
	Reason    string
	// At is the mission clock when the signal was raised.
	At      time.Duration
	Message string
}
