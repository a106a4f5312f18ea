// Package mission implements the per-mission phase state machine.
//
// A mission moves strictly forward through InitialRaid, UrbanConflict,
// PoliticalNegotiation and Resolution. Each non-terminal phase has exactly one
// rule in the transition table; Evaluate is a pure function over that table so
// the rules can be tested without a running mission.
package mission

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
)

// Reason explains why a transition fired.
type Reason string

const (
	ReasonObjectives Reason = "objectives"
	ReasonStability  Reason = "stability"
	ReasonTimer      Reason = "timer"
)

// Inputs is everything a transition rule may read.
type Inputs struct {
	Stability float64

	// PhaseElapsed is how long the mission has been in its current phase.
	PhaseElapsed time.Duration

	InitialObjectivesDone     bool
	NegotiationObjectivesDone bool

	NegotiationThreshold float64
	ResolutionThreshold  float64
	ConflictTimer        time.Duration
}

// rule decides whether the phase it is keyed under may advance.
type rule struct {
	to    domain.MissionPhase
	check func(in Inputs) (Reason, bool)
}

// transitions is the exhaustive table for every non-terminal phase.
var transitions = map[domain.MissionPhase]rule{
	domain.PhaseInitialRaid: {
		to: domain.PhaseUrbanConflict,
		check: func(in Inputs) (Reason, bool) {
			if in.InitialObjectivesDone {
				return ReasonObjectives, true
			}
			return "", false
		},
	},
	domain.PhaseUrbanConflict: {
		to: domain.PhasePoliticalNegotiation,
		check: func(in Inputs) (Reason, bool) {
			if in.Stability >= in.NegotiationThreshold {
				return ReasonStability, true
			}
			if in.ConflictTimer > 0 && in.PhaseElapsed >= in.ConflictTimer {
				return ReasonTimer, true
			}
			return "", false
		},
	},
	domain.PhasePoliticalNegotiation: {
		to: domain.PhaseResolution,
		check: func(in Inputs) (Reason, bool) {
			if in.Stability >= in.ResolutionThreshold {
				return ReasonStability, true
			}
			if in.NegotiationObjectivesDone {
				return ReasonObjectives, true
			}
			return "", false
		},
	},
}

// Evaluate returns the phase that follows from in, if any. Terminal and
// unknown phases never transition.
func Evaluate(phase domain.MissionPhase, in Inputs) (domain.MissionPhase, Reason, bool) {
	r, ok := transitions[phase]
	if !ok {
		return phase, "", false
	}
	reason, fire := r.check(in)
	if !fire {
		return phase, "", false
	}
	return r.to, reason, true
}
