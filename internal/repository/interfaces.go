package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/culiacan/internal/savefile"
)

// SlotRepo persists campaign saves in numbered slots. Slot numbers outside
// [savefile.MinSlot, savefile.MaxSlot] fail with savefile.ErrInvalidSlot
// before any I/O. Save atomically replaces the previous contents; a failed
// or cancelled save leaves them intact.
type SlotRepo interface {
	Save(ctx context.Context, slot int, s *savefile.SaveSlot) error
	Load(ctx context.Context, slot int) (*savefile.SaveSlot, error)
	// List returns one summary per slot in slot order, including empty and
	// corrupt ones.
	List(ctx context.Context) ([]savefile.SlotSummary, error)
	Delete(ctx context.Context, slot int) error
}

// HistoryEntry is one row of a slot's save audit trail.
type HistoryEntry struct {
	Slot          int
	CampaignID    string
	CompletionPct float64
	UnlockedIndex int
	SavedAt       time.Time
}

// SlotHistoryRepo is implemented by stores that keep a save audit trail.
type SlotHistoryRepo interface {
	// History lists saves newest first. A slot never written yields an
	// empty, non-nil slice.
	History(ctx context.Context, slot int) ([]HistoryEntry, error)
}
