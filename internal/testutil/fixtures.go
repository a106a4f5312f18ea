package testutil

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/savefile"
	"github.com/google/uuid"
)

// FixedTime is the reference clock used by fixtures.
var FixedTime = time.Date(2019, 10, 17, 15, 15, 0, 0, time.UTC)

// Progress options
type ProgressOption func(*domain.CampaignProgress)

func WithDifficulty(d domain.DifficultyLevel) ProgressOption {
	return func(p *domain.CampaignProgress) {
		p.Difficulty = d
	}
}

// WithCompletedMissions completes the first n missions, each ending on the
// given pressure snapshot.
func WithCompletedMissions(n int, final domain.PressureState) ProgressOption {
	return func(p *domain.CampaignProgress) {
		for i := 0; i < n; i++ {
			p.CompleteCurrentMission(domain.MissionOutcome{
				Completed:  true,
				Final:      final,
				ElapsedSec: float64(120 + 10*i),
			}, domain.DefaultCarry)
		}
	}
}

// WithFailedAttempt records an incomplete attempt at the current mission.
func WithFailedAttempt(elapsedSec float64) ProgressOption {
	return func(p *domain.CampaignProgress) {
		p.CompleteCurrentMission(domain.MissionOutcome{ElapsedSec: elapsedSec}, domain.DefaultCarry)
	}
}

func NewTestProgress(opts ...ProgressOption) *domain.CampaignProgress {
	p := domain.NewCampaignProgress(uuid.New().String(), domain.DifficultyVeteran, FixedTime)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestSlot wraps progress in a slot record saved at FixedTime.
func NewTestSlot(number int, opts ...ProgressOption) *savefile.SaveSlot {
	return savefile.NewSaveSlot(number, NewTestProgress(opts...), FixedTime.Add(time.Hour))
}

// MidCampaignPressure is a plausible end-of-mission snapshot.
func MidCampaignPressure() domain.PressureState {
	return domain.PressureState{
		CivilianImpact:     0.45,
		EconomicDisruption: 0.35,
		MediaAttention:     0.6,
		EliteInfluence:     0.4,
		MilitaryMorale:     0.5,
	}
}
