package mission

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
)

// Transition records one phase change.
type Transition struct {
	From   domain.MissionPhase
	To     domain.MissionPhase
	Reason Reason
	// At is the mission clock when the transition fired.
	At time.Duration
}

// Run is a single instance of a mission being played.
type Run struct {
	mission       domain.Mission
	conflictTimer time.Duration

	phase        domain.MissionPhase
	elapsed      time.Duration
	phaseElapsed time.Duration
	done         map[string]bool
}

// NewRun starts a mission in InitialRaid. The conflict timer is scaled by
// the difficulty's time-limit multiplier.
func NewRun(m domain.Mission, difficulty domain.DifficultyLevel) *Run {
	return &Run{
		mission:       m,
		conflictTimer: m.ScaledConflictTimer(difficulty),
		phase:         domain.PhaseInitialRaid,
		done:          make(map[string]bool),
	}
}

func (r *Run) Mission() domain.Mission              { return r.mission }
func (r *Run) Phase() domain.MissionPhase           { return r.phase }
func (r *Run) Elapsed() time.Duration               { return r.elapsed }
func (r *Run) PhaseElapsed() time.Duration          { return r.phaseElapsed }
func (r *Run) ConflictTimer() time.Duration         { return r.conflictTimer }
func (r *Run) Complete() bool                       { return r.phase.IsTerminal() }
func (r *Run) ObjectiveDone(id string) bool         { return r.done[id] }
func (r *Run) CompletedObjectives() map[string]bool { return copyDone(r.done) }

// CompleteObjective marks an objective of this mission as done. Objectives
// only count while their phase is active: initial objectives during
// InitialRaid, negotiation objectives during PoliticalNegotiation. Unknown,
// repeated, out-of-phase or post-resolution completions return false and
// change nothing.
func (r *Run) CompleteObjective(id string) bool {
	if r.done[id] || !hasObjective(r.activeObjectives(), id) {
		return false
	}
	r.done[id] = true
	return true
}

// PendingObjectives lists the objectives still gating the current phase.
// UrbanConflict has none; it ends on stability or the timer.
func (r *Run) PendingObjectives() []domain.Objective {
	var pending []domain.Objective
	for _, o := range r.activeObjectives() {
		if !r.done[o.ID] {
			pending = append(pending, o)
		}
	}
	return pending
}

// Step advances the mission clock by elapsed and applies every transition
// that fires for the given stability. Several phases may be crossed in one
// step; the phase never moves backwards and nothing happens once Resolution
// is reached.
func (r *Run) Step(elapsed time.Duration, stability float64) []Transition {
	if r.Complete() {
		return nil
	}
	if elapsed > 0 {
		r.elapsed += elapsed
		r.phaseElapsed += elapsed
	}

	var fired []Transition
	for !r.Complete() {
		next, reason, ok := Evaluate(r.phase, r.inputs(stability))
		if !ok || next.Order() <= r.phase.Order() {
			break
		}
		fired = append(fired, Transition{From: r.phase, To: next, Reason: reason, At: r.elapsed})
		r.phase = next
		r.phaseElapsed = 0
	}
	return fired
}

func (r *Run) inputs(stability float64) Inputs {
	return Inputs{
		Stability:                 stability,
		PhaseElapsed:              r.phaseElapsed,
		InitialObjectivesDone:     r.allDone(r.mission.InitialObjectives),
		NegotiationObjectivesDone: r.allDone(r.mission.NegotiationObjectives),
		NegotiationThreshold:      r.mission.NegotiationThreshold,
		ResolutionThreshold:       r.mission.ResolutionThreshold,
		ConflictTimer:             r.conflictTimer,
	}
}

func (r *Run) allDone(objs []domain.Objective) bool {
	for _, o := range objs {
		if !r.done[o.ID] {
			return false
		}
	}
	return true
}

func (r *Run) activeObjectives() []domain.Objective {
	switch r.phase {
	case domain.PhaseInitialRaid:
		return r.mission.InitialObjectives
	case domain.PhasePoliticalNegotiation:
		return r.mission.NegotiationObjectives
	}
	return nil
}

func hasObjective(objs []domain.Objective, id string) bool {
	for _, o := range objs {
		if o.ID == id {
			return true
		}
	}
	return false
}

func copyDone(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
