package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/culiacan/internal/savefile"
)

// parseStoredTime parses an RFC3339 column value. Unreadable values become
// the zero time; the payload is authoritative over metadata columns.
func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func formatStoredTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// summaryFor maps a Load result to its listing entry. Only infrastructure
// errors are returned; empty and corrupt slots are reported in the summary.
func summaryFor(slot int, s *savefile.SaveSlot, err error) (savefile.SlotSummary, error) {
	switch {
	case err == nil:
		return s.Summary(), nil
	case errors.Is(err, savefile.ErrSlotEmpty):
		return savefile.SlotSummary{Number: slot, Empty: true}, nil
	case errors.Is(err, savefile.ErrCorruptData):
		return savefile.SlotSummary{Number: slot, Corrupt: true}, nil
	default:
		return savefile.SlotSummary{}, err
	}
}

// listSlots builds a full listing from a per-slot loader.
func listSlots(ctx context.Context, load func(context.Context, int) (*savefile.SaveSlot, error)) ([]savefile.SlotSummary, error) {
	out := make([]savefile.SlotSummary, 0, savefile.SlotCount)
	for n := savefile.MinSlot; n <= savefile.MaxSlot; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := load(ctx, n)
		sum, err := summaryFor(n, s, err)
		if err != nil {
			return nil, fmt.Errorf("listing slot %d: %w", n, err)
		}
		out = append(out, sum)
	}
	return out, nil
}
