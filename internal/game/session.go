// Package game binds the pressure accumulator, the phase state machine and
// the campaign sequencer into the per-frame API a host drives.
//
// A Session never returns errors. Malformed inputs are sanitized and
// reported as input_clamped signals; everything else is a state change
// reported through the returned signals.
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/mission"
)

// Options tunes a session.
type Options struct {
	Tuning domain.PressureTuning
	// Carry is the share of end-of-mission pressure carried forward.
	Carry float64
}

func DefaultOptions() Options {
	return Options{Tuning: domain.DefaultPressureTuning(), Carry: domain.DefaultCarry}
}

// Session is one player's live campaign. It owns its progress exclusively.
type Session struct {
	progress  *domain.CampaignProgress
	opts      Options
	acc       *domain.PressureAccumulator
	run       *mission.Run
	lastSaved *time.Time
}

// NewSession resumes progress at its current mission, seeded from the
// pressure carried forward by the last recorded outcome. The session works
// on a copy of progress.
func NewSession(progress *domain.CampaignProgress, opts Options) *Session {
	if math.IsNaN(opts.Carry) || opts.Carry < 0 || opts.Carry > 1 {
		opts.Carry = domain.DefaultCarry
	}
	s := &Session{progress: progress.Clone(), opts: opts}
	s.startMission(s.progress.CarriedPressure(opts.Carry))
	return s
}

func (s *Session) startMission(seed domain.PressureState) {
	s.acc = domain.NewPressureAccumulator(seed, s.opts.Tuning)
	m, ok := s.progress.CurrentMission()
	if !ok {
		s.run = nil
		return
	}
	s.run = mission.NewRun(m, s.progress.Difficulty)
}

// ApplyEvent feeds a gameplay event into the active mission's pressure.
func (s *Session) ApplyEvent(e domain.PressureEvent) []contract.Signal {
	if s.run == nil {
		return nil
	}
	if sanitized := s.acc.ApplyEvent(e); sanitized {
		return []contract.Signal{s.clamped(fmt.Sprintf("event %s sanitized (count=%d delta=%v)", e.Kind, e.Count, e.Delta))}
	}
	return nil
}

// CompleteObjective marks an objective of the active mission as done. The
// phase machine picks it up on the next Tick.
func (s *Session) CompleteObjective(id string) bool {
	if s.run == nil {
		return false
	}
	return s.run.CompleteObjective(id)
}

// CompleteNextObjective completes the first objective still gating the
// current phase and returns its id.
func (s *Session) CompleteNextObjective() (string, bool) {
	if s.run == nil {
		return "", false
	}
	pending := s.run.PendingObjectives()
	if len(pending) == 0 {
		return "", false
	}
	id := pending[0].ID
	return id, s.run.CompleteObjective(id)
}

// Tick advances the simulation by one frame: pressure drift first, then the
// phase machine against the fresh stability, then campaign bookkeeping when
// the mission resolves.
func (s *Session) Tick(elapsed time.Duration) []contract.Signal {
	if s.run == nil {
		return nil
	}
	var out []contract.Signal
	if elapsed < 0 {
		out = append(out, s.clamped(fmt.Sprintf("negative frame time %s treated as zero", elapsed)))
		elapsed = 0
	}

	s.acc.Tick(elapsed.Seconds())
	for _, tr := range s.run.Step(elapsed, s.acc.Stability()) {
		out = append(out, contract.Signal{
			Kind:      contract.SignalPhaseChanged,
			MissionID: s.run.Mission().ID,
			From:      tr.From,
			To:        tr.To,
			Reason:    string(tr.Reason),
			At:        tr.At,
		})
	}
	if s.run.Complete() {
		out = append(out, s.finishMission(true)...)
	}
	return out
}

// AbandonMission records an incomplete attempt and restarts the current
// mission. The index does not advance.
func (s *Session) AbandonMission() []contract.Signal {
	if s.run == nil {
		return nil
	}
	return s.finishMission(false)
}

func (s *Session) finishMission(completed bool) []contract.Signal {
	m := s.run.Mission()
	at := s.run.Elapsed()
	seed, advanced := s.progress.CompleteCurrentMission(domain.MissionOutcome{
		Completed:  completed,
		Final:      s.acc.State(),
		ElapsedSec: at.Seconds(),
	}, s.opts.Carry)

	var out []contract.Signal
	if advanced {
		out = append(out, contract.Signal{
			Kind:      contract.SignalMissionComplete,
			MissionID: m.ID,
			At:        at,
			Message:   m.Name + " complete",
		})
	}
	s.startMission(seed)
	if s.progress.IsComplete() {
		out = append(out, contract.Signal{
			Kind:      contract.SignalCampaignComplete,
			MissionID: m.ID,
			At:        at,
			Message:   "campaign complete",
		})
	}
	return out
}

func (s *Session) clamped(msg string) contract.Signal {
	sig := contract.Signal{Kind: contract.SignalInputClamped, Message: msg}
	if s.run != nil {
		sig.MissionID = s.run.Mission().ID
		sig.At = s.run.Elapsed()
	}
	return sig
}

// Progress returns a copy of the campaign progress.
func (s *Session) Progress() *domain.CampaignProgress { return s.progress.Clone() }

func (s *Session) Pressure() domain.PressureState { return s.acc.State() }

func (s *Session) Stability() float64 { return s.acc.Stability() }

// Phase is the active mission's phase, or Resolution once the campaign is over.
func (s *Session) Phase() domain.MissionPhase {
	if s.run == nil {
		return domain.PhaseResolution
	}
	return s.run.Phase()
}

func (s *Session) CampaignComplete() bool { return s.run == nil }

// MarkSaved records a successful write of this session.
func (s *Session) MarkSaved(at time.Time) {
	t := at.UTC()
	s.lastSaved = &t
}
