package domain

import "math"

// PressureState holds the five pressure signals. Every field stays in [0, 1].
// Stability is never stored here; it is derived on demand from the signals.
type PressureState struct {
	CivilianImpact     float64
	EconomicDisruption float64
	MediaAttention     float64
	EliteInfluence     float64
	MilitaryMorale     float64
}

// Weights are the fixed coefficients of the stability sum. Morale is
// subtracted, the other four are added.
type Weights struct {
	Civilian float64
	Economic float64
	Media    float64
	Elite    float64
	Morale   float64
}

// DefaultWeights returns the escalation weights used by the campaign.
// The four pressure weights sum to 1 so that saturated signals with zero
// morale reach the capitulation threshold exactly.
func DefaultWeights() Weights {
	return Weights{
		Civilian: 0.30,
		Economic: 0.25,
		Media:    0.25,
		Elite:    0.20,
		Morale:   0.30,
	}
}

// Of returns the weight applied to one signal.
func (w Weights) Of(sig Signal) float64 {
	switch sig {
	case SignalCivilianImpact:
		return w.Civilian
	case SignalEconomicDisruption:
		return w.Economic
	case SignalMediaAttention:
		return w.Media
	case SignalEliteInfluence:
		return w.Elite
	case SignalMilitaryMorale:
		return w.Morale
	default:
		return 0
	}
}

// PressureTuning groups the weights with the per-event and per-second rates.
type PressureTuning struct {
	Weights Weights

	// CasualtyImpact is the civilian impact added per civilian casualty.
	CasualtyImpact float64

	// MediaDriftPerSec is how fast media attention grows while a mission runs.
	MediaDriftPerSec float64

	// MoraleFatiguePerSec is how fast military morale erodes while a mission runs.
	MoraleFatiguePerSec float64
}

// DefaultPressureTuning returns the tuning used when no override is configured.
func DefaultPressureTuning() PressureTuning {
	return PressureTuning{
		Weights:             DefaultWeights(),
		CasualtyImpact:      0.05,
		MediaDriftPerSec:    0.0005,
		MoraleFatiguePerSec: 0.0004,
	}
}

// HistoricalSeed returns the starting signals for a new campaign:
// 17 October 2019, 15:15, before the first shots in Tres Ríos.
func HistoricalSeed() PressureState {
	return PressureState{
		CivilianImpact:     0,
		EconomicDisruption: 0,
		MediaAttention:     0.10,
		EliteInfluence:     0.20,
		MilitaryMorale:     0.80,
	}
}

// Stability computes the government-stability scalar for the given weights.
// Higher values mean the government is closer to capitulating.
func (s PressureState) Stability(w Weights) float64 {
	v := w.Civilian*s.CivilianImpact +
		w.Economic*s.EconomicDisruption +
		w.Media*s.MediaAttention +
		w.Elite*s.EliteInfluence -
		w.Morale*s.MilitaryMorale
	return clampUnit(v)
}

// Get returns the value of a single signal.
func (s PressureState) Get(sig Signal) float64 {
	switch sig {
	case SignalCivilianImpact:
		return s.CivilianImpact
	case SignalEconomicDisruption:
		return s.EconomicDisruption
	case SignalMediaAttention:
		return s.MediaAttention
	case SignalEliteInfluence:
		return s.EliteInfluence
	case SignalMilitaryMorale:
		return s.MilitaryMorale
	default:
		return 0
	}
}

// add adds delta to one signal and clamps the result.
func (s *PressureState) add(sig Signal, delta float64) {
	switch sig {
	case SignalCivilianImpact:
		s.CivilianImpact = clampUnit(s.CivilianImpact + delta)
	case SignalEconomicDisruption:
		s.EconomicDisruption = clampUnit(s.EconomicDisruption + delta)
	case SignalMediaAttention:
		s.MediaAttention = clampUnit(s.MediaAttention + delta)
	case SignalEliteInfluence:
		s.EliteInfluence = clampUnit(s.EliteInfluence + delta)
	case SignalMilitaryMorale:
		s.MilitaryMorale = clampUnit(s.MilitaryMorale + delta)
	}
}

// Clamped returns a copy with every signal forced into [0, 1].
// Non-finite values become 0.
func (s PressureState) Clamped() PressureState {
	return PressureState{
		CivilianImpact:     clampUnit(finiteOrZero(s.CivilianImpact)),
		EconomicDisruption: clampUnit(finiteOrZero(s.EconomicDisruption)),
		MediaAttention:     clampUnit(finiteOrZero(s.MediaAttention)),
		EliteInfluence:     clampUnit(finiteOrZero(s.EliteInfluence)),
		MilitaryMorale:     clampUnit(finiteOrZero(s.MilitaryMorale)),
	}
}

// InRange reports whether every signal is finite and within [0, 1].
func (s PressureState) InRange() bool {
	for _, sig := range AllSignals {
		v := s.Get(sig)
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Decay blends s toward baseline. carry is the share of s that survives:
// 1 keeps s unchanged, 0 resets to baseline.
func (s PressureState) Decay(baseline PressureState, carry float64) PressureState {
	carry = clampUnit(finiteOrZero(carry))
	blend := func(from, base float64) float64 {
		return clampUnit(base + (from-base)*carry)
	}
	return PressureState{
		CivilianImpact:     blend(s.CivilianImpact, baseline.CivilianImpact),
		EconomicDisruption: blend(s.EconomicDisruption, baseline.EconomicDisruption),
		MediaAttention:     blend(s.MediaAttention, baseline.MediaAttention),
		EliteInfluence:     blend(s.EliteInfluence, baseline.EliteInfluence),
		MilitaryMorale:     blend(s.MilitaryMorale, baseline.MilitaryMorale),
	}
}

// PressureEvent is a tagged gameplay event feeding the accumulator.
// CivilianCasualties uses Count; every other kind uses Delta.
type PressureEvent struct {
	Kind  EventKind
	Count int
	Delta float64
}

// PressureAccumulator owns a PressureState and applies events to it.
// It never fails: malformed input is replaced by zero and reported.
type PressureAccumulator struct {
	state  PressureState
	tuning PressureTuning
}

// NewPressureAccumulator creates an accumulator starting from seed.
// The seed is clamped so the range invariant holds from the first call.
func NewPressureAccumulator(seed PressureState, tuning PressureTuning) *PressureAccumulator {
	return &PressureAccumulator{state: seed.Clamped(), tuning: tuning}
}

// ApplyEvent applies one event. It returns true when the input had to be
// sanitized (non-finite delta, negative count, unknown kind); the event is
// still applied with the sanitized value.
func (a *PressureAccumulator) ApplyEvent(e PressureEvent) (sanitized bool) {
	sig, ok := e.Kind.Signal()
	if !ok {
		return true
	}

	var delta float64
	if e.Kind == EventCivilianCasualties {
		count := e.Count
		if count < 0 {
			count = 0
			sanitized = true
		}
		delta = float64(count) * a.tuning.CasualtyImpact
	} else {
		delta = e.Delta
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			delta = 0
			sanitized = true
		}
	}

	a.state.add(sig, delta)
	return sanitized
}

// Tick applies elapsed-time drift: media attention builds and morale erodes
// the longer the operation lasts. Non-positive or non-finite elapsed seconds
// are ignored.
func (a *PressureAccumulator) Tick(elapsedSec float64) {
	if !(elapsedSec > 0) || math.IsInf(elapsedSec, 0) {
		return
	}
	a.state.add(SignalMediaAttention, a.tuning.MediaDriftPerSec*elapsedSec)
	a.state.add(SignalMilitaryMorale, -a.tuning.MoraleFatiguePerSec*elapsedSec)
}

// Stability returns the current clamped stability scalar.
func (a *PressureAccumulator) Stability() float64 {
	return a.state.Stability(a.tuning.Weights)
}

// State returns a snapshot of the current signals.
func (a *PressureAccumulator) State() PressureState {
	return a.state
}

// Tuning returns the tuning the accumulator was built with.
func (a *PressureAccumulator) Tuning() PressureTuning {
	return a.tuning
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
