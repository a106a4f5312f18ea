package savefile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSlot is returned for slot numbers outside [MinSlot, MaxSlot].
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrSlotEmpty is returned when loading a slot that holds no save.
	ErrSlotEmpty = errors.New("slot empty")
	// ErrCorruptData is returned when a stored record cannot be decoded,
	// migrated or validated.
	ErrCorruptData = errors.New("save file corrupted")
)

const (
	MinSlot = 0
	MaxSlot = 9
	// SlotCount is the number of addressable slots.
	SlotCount = MaxSlot - MinSlot + 1
)

// ValidateSlot reports ErrInvalidSlot for out-of-range slot numbers.
func ValidateSlot(n int) error {
	if n < MinSlot || n > MaxSlot {
		return fmt.Errorf("%w: %d (expected %d-%d)", ErrInvalidSlot, n, MinSlot, MaxSlot)
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptData, fmt.Sprintf(format, args...))
}
