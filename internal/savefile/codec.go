package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
)

// Encode serializes a slot at CurrentSchemaVersion. The slot number and
// progress are validated first so a bad record is never written.
func Encode(s *SaveSlot) ([]byte, error) {
	if err := ValidateSlot(s.Number); err != nil {
		return nil, err
	}
	if err := s.Progress.Validate(); err != nil {
		return nil, fmt.Errorf("encoding slot %d: %w", s.Number, err)
	}

	rec := recordV2{
		SchemaVersion: CurrentSchemaVersion,
		Slot:          s.Number,
		Meta: metaRecord{
			SavedAt:       formatTime(s.Meta.SavedAt),
			CompletionPct: s.Meta.CompletionPct,
			MissionName:   s.Meta.MissionName,
		},
		Campaign: campaignRecord{
			ID:            s.Progress.ID,
			Difficulty:    string(s.Progress.Difficulty),
			UnlockedIndex: s.Progress.UnlockedIndex,
			StartedAt:     formatTime(s.Progress.StartedAt),
		},
	}
	for _, o := range s.Progress.Outcomes {
		rec.Campaign.Outcomes = append(rec.Campaign.Outcomes, outcomeRecord{
			MissionID:  string(o.MissionID),
			Completed:  o.Completed,
			ElapsedSec: o.ElapsedSec,
			Score:      o.Score,
			Pressure:   toPressureRecord(o.Final),
		})
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding slot %d: %w", s.Number, err)
	}
	return data, nil
}

// Decode parses a record of any supported schema version, migrating it
// forward one version at a time, and validates the result. Every failure
// wraps ErrCorruptData.
func Decode(data []byte) (*SaveSlot, error) {
	var header versionHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, corrupt("malformed record: %v", err)
	}
	version, err := header.version()
	if err != nil {
		return nil, err
	}

	for version < CurrentSchemaVersion {
		step, ok := migrations[version]
		if !ok {
			return nil, corrupt("no migration from schema version %d", version)
		}
		if data, err = step(data); err != nil {
			return nil, fmt.Errorf("%w: migrating from schema version %d: %w", ErrCorruptData, version, err)
		}
		version++
	}

	var rec recordV2
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, corrupt("malformed record: %v", err)
	}
	if rec.SchemaVersion != CurrentSchemaVersion {
		return nil, corrupt("schema version %d after migration", rec.SchemaVersion)
	}
	return rec.toSlot()
}

// version reports the schema a record was written with. A record without
// schema_version is a legacy save, version 1, regardless of its release
// string.
func (p versionHeader) version() (int, error) {
	if p.SchemaVersion == nil {
		if p.Version == "" || (isNull(p.CampaignProgress) && isNull(p.GameState)) {
			return 0, corrupt("missing schema version")
		}
		return 1, nil
	}
	v := *p.SchemaVersion
	if v < 1 || v > CurrentSchemaVersion {
		return 0, corrupt("unsupported schema version %d", v)
	}
	return v, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func (r recordV2) toSlot() (*SaveSlot, error) {
	if err := ValidateSlot(r.Slot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	var errs []error
	savedAt, err := parseTime(r.Meta.SavedAt)
	if err != nil {
		errs = append(errs, fmt.Errorf("meta.saved_at: %w", err))
	}
	startedAt, err := parseTime(r.Campaign.StartedAt)
	if err != nil {
		errs = append(errs, fmt.Errorf("campaign.started_at: %w", err))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, errors.Join(errs...))
	}

	progress := domain.CampaignProgress{
		ID:            r.Campaign.ID,
		Difficulty:    domain.DifficultyLevel(r.Campaign.Difficulty),
		UnlockedIndex: r.Campaign.UnlockedIndex,
		StartedAt:     startedAt,
	}
	for _, o := range r.Campaign.Outcomes {
		progress.Outcomes = append(progress.Outcomes, domain.MissionOutcome{
			MissionID:  domain.MissionID(o.MissionID),
			Completed:  o.Completed,
			ElapsedSec: o.ElapsedSec,
			Score:      o.Score,
			Final:      o.Pressure.toState(),
		})
	}
	if err := progress.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	return &SaveSlot{
		Number: r.Slot,
		Meta: Meta{
			SchemaVersion: CurrentSchemaVersion,
			SavedAt:       savedAt,
			CompletionPct: r.Meta.CompletionPct,
			MissionName:   r.Meta.MissionName,
		},
		Progress: progress,
	}, nil
}

func toPressureRecord(s domain.PressureState) pressureRecord {
	return pressureRecord{
		CivilianImpact:     s.CivilianImpact,
		EconomicDisruption: s.EconomicDisruption,
		MediaAttention:     s.MediaAttention,
		EliteInfluence:     s.EliteInfluence,
		MilitaryMorale:     s.MilitaryMorale,
	}
}

func (p pressureRecord) toState() domain.PressureState {
	return domain.PressureState{
		CivilianImpact:     p.CivilianImpact,
		EconomicDisruption: p.EconomicDisruption,
		MediaAttention:     p.MediaAttention,
		EliteInfluence:     p.EliteInfluence,
		MilitaryMorale:     p.MilitaryMorale,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
