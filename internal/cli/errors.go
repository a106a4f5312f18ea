package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/culiacan/internal/savefile"
)

// userError carries a message written for the player while keeping the
// underlying error reachable through errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// slotError rewrites persistence failures on slot into the three messages
// players see: slot empty, save file corrupted and invalid slot.
func slotError(slot int, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, savefile.ErrInvalidSlot):
		return &userError{msg: fmt.Sprintf("invalid slot: %d (slots are numbered %d-%d)", slot, savefile.MinSlot, savefile.MaxSlot), err: err}
	case errors.Is(err, savefile.ErrSlotEmpty):
		return &userError{msg: fmt.Sprintf("slot empty: slot %d has no saved campaign", slot), err: err}
	case errors.Is(err, savefile.ErrCorruptData):
		return &userError{
			msg: fmt.Sprintf("save file corrupted: slot %d cannot be loaded; overwrite it with 'culiacan new --slot %d --yes'", slot, slot),
			err: err,
		}
	default:
		return err
	}
}
