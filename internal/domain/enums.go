package domain

import "fmt"

type Signal string

const (
	SignalCivilianImpact     Signal = "civilian_impact"
	SignalEconomicDisruption Signal = "economic_disruption"
	SignalMediaAttention     Signal = "media_attention"
	SignalEliteInfluence     Signal = "elite_influence"
	SignalMilitaryMorale     Signal = "military_morale"
)

// AllSignals lists the signals in display order.
var AllSignals = []Signal{
	SignalCivilianImpact,
	SignalEconomicDisruption,
	SignalMediaAttention,
	SignalEliteInfluence,
	SignalMilitaryMorale,
}

type EventKind string

const (
	EventCivilianCasualties EventKind = "civilian_casualties"
	EventEconomicDisruption EventKind = "economic_disruption"
	EventMediaEngagement    EventKind = "media_engagement"
	EventElitePressure      EventKind = "elite_pressure"
	EventMorale             EventKind = "morale"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[string]bool{
	"civilian_casualties": true, "economic_disruption": true,
	"media_engagement": true, "elite_pressure": true, "morale": true,
}

// Signal returns the pressure signal an event kind feeds.
func (k EventKind) Signal() (Signal, bool) {
	switch k {
	case EventCivilianCasualties:
		return SignalCivilianImpact, true
	case EventEconomicDisruption:
		return SignalEconomicDisruption, true
	case EventMediaEngagement:
		return SignalMediaAttention, true
	case EventElitePressure:
		return SignalEliteInfluence, true
	case EventMorale:
		return SignalMilitaryMorale, true
	default:
		return "", false
	}
}

type MissionPhase string

const (
	PhaseInitialRaid          MissionPhase = "initial_raid"
	PhaseUrbanConflict        MissionPhase = "urban_conflict"
	PhasePoliticalNegotiation MissionPhase = "political_negotiation"
	PhaseResolution           MissionPhase = "resolution"
)

// AllPhases lists the mission phases in progression order.
var AllPhases = []MissionPhase{
	PhaseInitialRaid,
	PhaseUrbanConflict,
	PhasePoliticalNegotiation,
	PhaseResolution,
}

// Order returns the position of the phase in the progression, or -1 for an
// unknown phase.
func (p MissionPhase) Order() int {
	for i, ph := range AllPhases {
		if ph == p {
			return i
		}
	}
	return -1
}

// Next returns the following phase. Resolution returns itself.
func (p MissionPhase) Next() MissionPhase {
	switch p {
	case PhaseInitialRaid:
		return PhaseUrbanConflict
	case PhaseUrbanConflict:
		return PhasePoliticalNegotiation
	case PhasePoliticalNegotiation, PhaseResolution:
		return PhaseResolution
	default:
		return PhaseInitialRaid
	}
}

// IsTerminal reports whether no transition can leave this phase.
func (p MissionPhase) IsTerminal() bool {
	return p == PhaseResolution
}

// Label returns the phase name for HUD display.
func (p MissionPhase) Label() string {
	switch p {
	case PhaseInitialRaid:
		return "Initial Raid"
	case PhaseUrbanConflict:
		return "Urban Conflict"
	case PhasePoliticalNegotiation:
		return "Political Negotiation"
	case PhaseResolution:
		return "Resolution"
	default:
		return string(p)
	}
}

// ParseMissionPhase converts a stored phase string back into a MissionPhase.
func ParseMissionPhase(s string) (MissionPhase, error) {
	p := MissionPhase(s)
	if p.Order() < 0 {
		return "", fmt.Errorf("unknown mission phase %q", s)
	}
	return p, nil
}

type ObjectiveKind string

const (
	ObjectiveDefend    ObjectiveKind = "defend"
	ObjectiveSurvive   ObjectiveKind = "survive"
	ObjectiveEliminate ObjectiveKind = "eliminate"
	ObjectiveControl   ObjectiveKind = "control"
)

type DifficultyLevel string

const (
	DifficultyRecruit    DifficultyLevel = "recruit"
	DifficultyVeteran    DifficultyLevel = "veteran"
	DifficultyElite      DifficultyLevel = "elite"
	DifficultyHistorical DifficultyLevel = "historical"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"recruit": true, "veteran": true, "elite": true, "historical": true,
}

// DifficultyModifiers adjusts mission pacing per difficulty level.
type DifficultyModifiers struct {
	// TimeLimitMultiplier scales the urban-conflict timer.
	TimeLimitMultiplier float64
}

// Modifiers returns the pacing modifiers for the difficulty. Unknown levels
// fall back to veteran.
func (d DifficultyLevel) Modifiers() DifficultyModifiers {
	switch d {
	case DifficultyRecruit:
		return DifficultyModifiers{TimeLimitMultiplier: 1.3}
	case DifficultyElite:
		return DifficultyModifiers{TimeLimitMultiplier: 0.8}
	case DifficultyHistorical:
		return DifficultyModifiers{TimeLimitMultiplier: 0.7}
	default:
		return DifficultyModifiers{TimeLimitMultiplier: 1.0}
	}
}

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	if !ValidDifficulties[s] {
		return "", fmt.Errorf("difficulty %q must be one of recruit, veteran, elite, historical", s)
	}
	return DifficultyLevel(s), nil
}
