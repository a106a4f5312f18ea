package service

import (
	"context"
	"time"

	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/game"
)

// CampaignService is the persistence boundary between a live session and
// the slot store. Errors wrap the savefile sentinels.
type CampaignService interface {
	// NewCampaign starts a fresh campaign and writes it to slot.
	NewCampaign(ctx context.Context, slot int, difficulty domain.DifficultyLevel) (*game.Session, error)
	// Save writes the session's progress to slot. The session is marked
	// saved only after the write succeeds.
	Save(ctx context.Context, slot int, s *game.Session) error
	// SaveProgress writes a progress snapshot to slot without touching any
	// session and returns the recorded save time. Hosts saving off their
	// main loop call MarkSaved with it once the write is confirmed.
	SaveProgress(ctx context.Context, slot int, progress *domain.CampaignProgress) (time.Time, error)
	// Load resumes the campaign stored in slot. On error no session is
	// returned and caller state is untouched.
	Load(ctx context.Context, slot int) (*game.Session, error)
	ListSlots(ctx context.Context) ([]contract.SlotView, error)
	DeleteSlot(ctx context.Context, slot int) error
	// SlotHistory returns the save audit trail, or nil when the backend
	// keeps none.
	SlotHistory(ctx context.Context, slot int) ([]contract.HistoryView, error)
}
