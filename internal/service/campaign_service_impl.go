package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/game"
	"github.com/alexanderramin/culiacan/internal/repository"
	"github.com/alexanderramin/culiacan/internal/savefile"
	"github.com/google/uuid"
)

type campaignService struct {
	slots    repository.SlotRepo
	opts     game.Options
	observer UseCaseObserver
	now      func() time.Time
}

func NewCampaignService(slots repository.SlotRepo, opts game.Options, observers ...UseCaseObserver) CampaignService {
	return &campaignService{
		slots:    slots,
		opts:     opts,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *campaignService) NewCampaign(ctx context.Context, slot int, difficulty domain.DifficultyLevel) (sess *game.Session, err error) {
	fields := map[string]any{"slot": slot, "difficulty": string(difficulty)}
	defer observe(ctx, s.observer, "new-campaign", s.now(), fields, &err)

	if err = savefile.ValidateSlot(slot); err != nil {
		return nil, err
	}
	if difficulty, err = domain.ParseDifficulty(string(difficulty)); err != nil {
		return nil, err
	}

	progress := domain.NewCampaignProgress(uuid.New().String(), difficulty, s.now())
	fields["campaign_id"] = progress.ID
	candidate := game.NewSession(progress, s.opts)
	at, err := s.write(ctx, slot, progress)
	if err != nil {
		return nil, err
	}
	candidate.MarkSaved(at)
	return candidate, nil
}

func (s *campaignService) Save(ctx context.Context, slot int, sess *game.Session) (err error) {
	fields := map[string]any{"slot": slot}
	defer observe(ctx, s.observer, "save", s.now(), fields, &err)

	if err = savefile.ValidateSlot(slot); err != nil {
		return err
	}
	progress := sess.Progress()
	fields["campaign_id"] = progress.ID
	at, err := s.write(ctx, slot, progress)
	if err != nil {
		return err
	}
	sess.MarkSaved(at)
	return nil
}

func (s *campaignService) SaveProgress(ctx context.Context, slot int, progress *domain.CampaignProgress) (at time.Time, err error) {
	fields := map[string]any{"slot": slot, "campaign_id": progress.ID}
	defer observe(ctx, s.observer, "save-progress", s.now(), fields, &err)

	if err = savefile.ValidateSlot(slot); err != nil {
		return time.Time{}, err
	}
	return s.write(ctx, slot, progress)
}

func (s *campaignService) write(ctx context.Context, slot int, progress *domain.CampaignProgress) (time.Time, error) {
	at := s.now()
	rec := savefile.NewSaveSlot(slot, progress, at)
	if err := s.slots.Save(ctx, slot, rec); err != nil {
		return time.Time{}, fmt.Errorf("saving slot %d: %w", slot, err)
	}
	return rec.Meta.SavedAt, nil
}

func (s *campaignService) Load(ctx context.Context, slot int) (sess *game.Session, err error) {
	fields := map[string]any{"slot": slot}
	defer observe(ctx, s.observer, "load", s.now(), fields, &err)

	rec, err := s.slots.Load(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("loading slot %d: %w", slot, err)
	}
	progress := rec.Progress
	if progress.ID == "" {
		// Legacy saves predate campaign ids.
		progress.ID = uuid.New().String()
	}
	fields["campaign_id"] = progress.ID
	fields["unlocked_index"] = progress.UnlockedIndex

	sess = game.NewSession(&progress, s.opts)
	if !rec.Meta.SavedAt.IsZero() {
		sess.MarkSaved(rec.Meta.SavedAt)
	}
	return sess, nil
}

func (s *campaignService) ListSlots(ctx context.Context) (views []contract.SlotView, err error) {
	defer observe(ctx, s.observer, "list-slots", s.now(), map[string]any{}, &err)

	summaries, err := s.slots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	views = make([]contract.SlotView, 0, len(summaries))
	for _, sum := range summaries {
		views = append(views, slotView(sum))
	}
	return views, nil
}

func (s *campaignService) DeleteSlot(ctx context.Context, slot int) (err error) {
	defer observe(ctx, s.observer, "delete-slot", s.now(), map[string]any{"slot": slot}, &err)

	if err = s.slots.Delete(ctx, slot); err != nil {
		return fmt.Errorf("deleting slot %d: %w", slot, err)
	}
	return nil
}

func (s *campaignService) SlotHistory(ctx context.Context, slot int) (out []contract.HistoryView, err error) {
	fields := map[string]any{"slot": slot}
	defer observe(ctx, s.observer, "slot-history", s.now(), fields, &err)

	if err = savefile.ValidateSlot(slot); err != nil {
		return nil, err
	}
	hist, ok := s.slots.(repository.SlotHistoryRepo)
	if !ok {
		fields["backend_history"] = false
		return nil, nil
	}
	entries, err := hist.History(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("reading history of slot %d: %w", slot, err)
	}
	fields["entries"] = len(entries)
	out = make([]contract.HistoryView, len(entries))
	for i, e := range entries {
		out[i] = contract.HistoryView{
			CampaignID:    e.CampaignID,
			CompletionPct: e.CompletionPct,
			UnlockedIndex: e.UnlockedIndex,
			SavedAt:       e.SavedAt,
		}
	}
	return out, nil
}

func slotView(sum savefile.SlotSummary) contract.SlotView {
	v := contract.SlotView{
		Number:  sum.Number,
		Empty:   sum.Empty,
		Corrupt: sum.Corrupt,
	}
	if sum.Empty || sum.Corrupt {
		return v
	}
	v.CampaignID = sum.CampaignID
	v.Difficulty = sum.Difficulty
	v.MissionName = sum.Meta.MissionName
	v.CompletionPct = sum.Meta.CompletionPct
	v.UnlockedIndex = sum.UnlockedIndex
	v.TotalScore = sum.TotalScore
	if !sum.Meta.SavedAt.IsZero() {
		t := sum.Meta.SavedAt
		v.SavedAt = &t
	}
	return v
}
