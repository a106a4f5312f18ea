package domain

import (
	"fmt"
	"math"
	"time"
)

// DefaultCarry is the share of end-of-mission pressure carried into the next
// mission. The remainder decays back toward the historical seed.
const DefaultCarry = 0.75

const (
	// ScoreTimeBudgetSec is the window in which a completion earns a time
	// bonus of one point per second left.
	ScoreTimeBudgetSec = 600
	// SurvivalBonus is awarded for every completed mission.
	SurvivalBonus = 500
)

// MissionOutcome records how one attempt at a mission ended.
type MissionOutcome struct {
	MissionID  MissionID
	Completed  bool
	Final      PressureState
	ElapsedSec float64
	Score      int
}

// CompletionBonus is the score a completion earns on top of its base score:
// the unused part of the time budget plus the survival bonus.
func CompletionBonus(elapsedSec float64) int {
	if math.IsNaN(elapsedSec) || elapsedSec < 0 {
		elapsedSec = 0
	}
	left := ScoreTimeBudgetSec - math.Min(elapsedSec, ScoreTimeBudgetSec)
	return int(left) + SurvivalBonus
}

// CampaignProgress is the player's run through the fixed mission sequence.
//
// UnlockedIndex points at the mission currently being played. It ranges over
// [0, MissionCount]; MissionCount means every mission is complete.
type CampaignProgress struct {
	ID            string
	Difficulty    DifficultyLevel
	UnlockedIndex int
	Outcomes      []MissionOutcome
	StartedAt     time.Time
}

// NewCampaignProgress starts a fresh campaign at the first mission.
func NewCampaignProgress(id string, difficulty DifficultyLevel, now time.Time) *CampaignProgress {
	if !ValidDifficulties[string(difficulty)] {
		difficulty = DifficultyVeteran
	}
	return &CampaignProgress{
		ID:         id,
		Difficulty: difficulty,
		StartedAt:  now.UTC(),
	}
}

// IsComplete reports whether the final mission has been completed.
func (c *CampaignProgress) IsComplete() bool {
	return c.UnlockedIndex >= MissionCount
}

// CurrentMission returns the mission being played. The second value is false
// once the campaign is complete.
func (c *CampaignProgress) CurrentMission() (Mission, bool) {
	return MissionAt(c.UnlockedIndex)
}

// CompleteCurrentMission records an outcome for the current mission.
//
// A completed outcome unlocks the next mission; an incomplete one is kept as
// an attempt and the index stays put. Once the campaign is complete the call
// is a no-op and advanced is false. A completion scores its base Score plus
// CompletionBonus; an incomplete attempt scores nothing. The returned seed is the pressure the next
// attempt starts from: the final snapshot decayed toward the historical seed.
func (c *CampaignProgress) CompleteCurrentMission(o MissionOutcome, carry float64) (seed PressureState, advanced bool) {
	if c.IsComplete() {
		return c.CarriedPressure(carry), false
	}

	current, _ := c.CurrentMission()
	o.MissionID = current.ID
	o.Final = o.Final.Clamped()
	if math.IsNaN(o.ElapsedSec) || o.ElapsedSec < 0 {
		o.ElapsedSec = 0
	}
	if o.Completed {
		o.Score = max(o.Score, 0) + CompletionBonus(o.ElapsedSec)
	} else {
		o.Score = 0
	}
	c.Outcomes = append(c.Outcomes, o)

	if o.Completed {
		c.UnlockedIndex++
		if c.UnlockedIndex > MissionCount {
			c.UnlockedIndex = MissionCount
		}
		advanced = true
	}

	return o.Final.Decay(HistoricalSeed(), carry), advanced
}

// UnlockedMissions returns every mission the player can access, in order.
func (c *CampaignProgress) UnlockedMissions() []Mission {
	last := c.UnlockedIndex
	if last > MissionCount-1 {
		last = MissionCount - 1
	}
	if last < 0 {
		last = 0
	}
	all := Missions()
	return all[:last+1]
}

// IsMissionUnlocked reports whether the mission is reachable.
func (c *CampaignProgress) IsMissionUnlocked(id MissionID) bool {
	m, err := MissionByID(id)
	if err != nil {
		return false
	}
	return m.Index <= c.UnlockedIndex
}

// CarriedPressure returns the seed for the current mission: the latest
// outcome's snapshot decayed toward the historical seed, or the seed itself
// when nothing has been played yet.
func (c *CampaignProgress) CarriedPressure(carry float64) PressureState {
	if len(c.Outcomes) == 0 {
		return HistoricalSeed()
	}
	last := c.Outcomes[len(c.Outcomes)-1]
	return last.Final.Decay(HistoricalSeed(), carry)
}

// CompletedCount returns how many missions have been completed.
func (c *CampaignProgress) CompletedCount() int {
	if c.UnlockedIndex > MissionCount {
		return MissionCount
	}
	return c.UnlockedIndex
}

// CompletionPct returns campaign completion in [0, 100].
func (c *CampaignProgress) CompletionPct() float64 {
	return float64(c.CompletedCount()) / float64(MissionCount) * 100
}

// BestTime returns the fastest completed attempt for a mission.
func (c *CampaignProgress) BestTime(id MissionID) (float64, bool) {
	best, found := 0.0, false
	for _, o := range c.Outcomes {
		if o.MissionID != id || !o.Completed {
			continue
		}
		if !found || o.ElapsedSec < best {
			best, found = o.ElapsedSec, true
		}
	}
	return best, found
}

// TotalScore sums the score of every recorded outcome.
func (c *CampaignProgress) TotalScore() int {
	total := 0
	for _, o := range c.Outcomes {
		total += o.Score
	}
	return total
}

// Validate checks the structural invariants of a progress value loaded from
// storage: the index is in range, outcomes reference real missions in
// sequence order, and exactly UnlockedIndex of them are completions.
func (c *CampaignProgress) Validate() error {
	if c.UnlockedIndex < 0 || c.UnlockedIndex > MissionCount {
		return fmt.Errorf("unlocked index %d out of range [0, %d]", c.UnlockedIndex, MissionCount)
	}
	if !ValidDifficulties[string(c.Difficulty)] {
		return fmt.Errorf("invalid difficulty %q", c.Difficulty)
	}

	completed := 0
	for i, o := range c.Outcomes {
		m, err := MissionByID(o.MissionID)
		if err != nil {
			return fmt.Errorf("outcome %d: %w", i, err)
		}
		if m.Index != completed {
			return fmt.Errorf("outcome %d: mission %q out of sequence (expected index %d)", i, o.MissionID, completed)
		}
		if !o.Final.InRange() {
			return fmt.Errorf("outcome %d: pressure snapshot out of range", i)
		}
		if o.Score < 0 {
			return fmt.Errorf("outcome %d: negative score %d", i, o.Score)
		}
		if o.Completed {
			completed++
		}
	}
	if completed != c.UnlockedIndex {
		return fmt.Errorf("unlocked index %d does not match %d completed missions", c.UnlockedIndex, completed)
	}
	return nil
}

// Clone returns a deep copy.
func (c *CampaignProgress) Clone() *CampaignProgress {
	cp := *c
	cp.Outcomes = append([]MissionOutcome(nil), c.Outcomes...)
	return &cp
}
