package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/culiacan/internal/savefile"
)

// FileSlotRepo implements SlotRepo with one save_slot_<n>.json file per slot.
// Saves go to a temp file in the same directory, are fsynced, then renamed
// over the target, so readers only ever see a complete file.
type FileSlotRepo struct {
	dir string
	// sync flushes a written temp file. Tests replace it to inject failures.
	sync func(*os.File) error
}

// NewFileSlotRepo stores saves under dir, which is created on first save.
func NewFileSlotRepo(dir string) *FileSlotRepo {
	return &FileSlotRepo{dir: dir, sync: (*os.File).Sync}
}

// Path returns the file that holds a slot.
func (r *FileSlotRepo) Path(slot int) string {
	return filepath.Join(r.dir, fmt.Sprintf("save_slot_%d.json", slot))
}

func (r *FileSlotRepo) Save(ctx context.Context, slot int, s *savefile.SaveSlot) error {
	if err := savefile.ValidateSlot(slot); err != nil {
		return err
	}
	rec := *s
	rec.Number = slot
	data, err := savefile.Encode(&rec)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, fmt.Sprintf(".save_slot_%d-*.tmp", slot))
	if err != nil {
		return fmt.Errorf("creating temp file for slot %d: %w", slot, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing slot %d: %w", slot, err)
	}
	if err := r.sync(tmp); err != nil {
		return fmt.Errorf("syncing slot %d: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing slot %d: %w", slot, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), r.Path(slot)); err != nil {
		return fmt.Errorf("replacing slot %d: %w", slot, err)
	}
	committed = true
	syncDir(r.dir)
	return nil
}

func (r *FileSlotRepo) Load(ctx context.Context, slot int) (*savefile.SaveSlot, error) {
	if err := savefile.ValidateSlot(slot); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.Path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("slot %d: %w", slot, savefile.ErrSlotEmpty)
		}
		return nil, fmt.Errorf("reading slot %d: %w", slot, err)
	}
	s, err := savefile.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot, err)
	}
	s.Number = slot
	return s, nil
}

func (r *FileSlotRepo) List(ctx context.Context) ([]savefile.SlotSummary, error) {
	return listSlots(ctx, r.Load)
}

func (r *FileSlotRepo) Delete(ctx context.Context, slot int) error {
	if err := savefile.ValidateSlot(slot); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(r.Path(slot)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("slot %d: %w", slot, savefile.ErrSlotEmpty)
		}
		return fmt.Errorf("deleting slot %d: %w", slot, err)
	}
	return nil
}

// syncDir flushes a directory entry after a rename. Not every platform
// supports it, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
