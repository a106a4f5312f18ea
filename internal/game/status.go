package game

import (
	"slices"

	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
)

// Status reports the HUD snapshot for the current frame.
func (s *Session) Status() contract.SessionStatus {
	st := contract.SessionStatus{
		CampaignID:       s.progress.ID,
		Difficulty:       s.progress.Difficulty,
		Stability:        s.acc.Stability(),
		Signals:          s.signalViews(),
		UnlockedCount:    len(s.progress.UnlockedMissions()),
		MissionCount:     domain.MissionCount,
		CompletionPct:    s.progress.CompletionPct(),
		TotalScore:       s.progress.TotalScore(),
		CampaignComplete: s.run == nil,
		Phase:            s.Phase(),
		PhaseLabel:       s.Phase().Label(),
		LastSaved:        s.lastSaved,
	}
	if s.run == nil {
		return st
	}

	m := s.run.Mission()
	st.MissionID = m.ID
	st.MissionName = m.Name
	st.MissionIndex = m.Index
	st.Neighborhood = m.Neighborhood
	st.Timestamp = m.TimestampLabel
	st.NegotiationThreshold = m.NegotiationThreshold
	st.ResolutionThreshold = m.ResolutionThreshold
	st.Elapsed = s.run.Elapsed()

	if s.run.Phase() == domain.PhaseUrbanConflict && s.run.ConflictTimer() > 0 {
		remaining := s.run.ConflictTimer() - s.run.PhaseElapsed()
		if remaining < 0 {
			remaining = 0
		}
		st.ConflictRemaining = &remaining
	}

	for _, o := range slices.Concat(m.InitialObjectives, m.NegotiationObjectives) {
		st.Objectives = append(st.Objectives, contract.ObjectiveView{
			ID:     o.ID,
			Kind:   o.Kind,
			Target: o.Target,
			Amount: o.Amount,
			Done:   s.run.ObjectiveDone(o.ID),
		})
	}
	return st
}

func (s *Session) signalViews() []contract.SignalView {
	state := s.acc.State()
	w := s.opts.Tuning.Weights
	views := make([]contract.SignalView, 0, len(domain.AllSignals))
	for _, sig := range domain.AllSignals {
		views = append(views, contract.SignalView{Signal: sig, Value: state.Get(sig), Weight: w.Of(sig)})
	}
	return views
}
