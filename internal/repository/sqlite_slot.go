package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/culiacan/internal/db"
	"github.com/alexanderramin/culiacan/internal/savefile"
)

// SQLiteSlotRepo implements SlotRepo and SlotHistoryRepo on the save_slots
// and slot_history tables. The payload column holds the savefile JSON; the
// other columns are listing metadata.
type SQLiteSlotRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteSlotRepo creates a SQLiteSlotRepo on an open database.
func NewSQLiteSlotRepo(database *sql.DB) *SQLiteSlotRepo {
	return NewSQLiteSlotRepoWithUoW(database, db.NewSQLiteUnitOfWork(database))
}

// NewSQLiteSlotRepoWithUoW creates a SQLiteSlotRepo that reads through conn
// and writes inside transactions opened by uow.
func NewSQLiteSlotRepoWithUoW(conn db.DBTX, uow db.UnitOfWork) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: conn, uow: uow}
}

// Save replaces the slot row and appends a history row in one transaction.
func (r *SQLiteSlotRepo) Save(ctx context.Context, slot int, s *savefile.SaveSlot) error {
	if err := savefile.ValidateSlot(slot); err != nil {
		return err
	}
	rec := *s
	rec.Number = slot
	payload, err := savefile.Encode(&rec)
	if err != nil {
		return err
	}
	savedAt := formatStoredTime(rec.Meta.SavedAt)

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO save_slots
			(slot, campaign_id, schema_version, mission_name, completion_pct, unlocked_index, difficulty, payload, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(slot) DO UPDATE SET
				campaign_id = excluded.campaign_id,
				schema_version = excluded.schema_version,
				mission_name = excluded.mission_name,
				completion_pct = excluded.completion_pct,
				unlocked_index = excluded.unlocked_index,
				difficulty = excluded.difficulty,
				payload = excluded.payload,
				saved_at = excluded.saved_at`,
			slot,
			rec.Progress.ID,
			savefile.CurrentSchemaVersion,
			rec.Meta.MissionName,
			rec.Meta.CompletionPct,
			rec.Progress.UnlockedIndex,
			string(rec.Progress.Difficulty),
			string(payload),
			savedAt,
		)
		if err != nil {
			return fmt.Errorf("writing slot %d: %w", slot, err)
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO slot_history
			(slot, campaign_id, completion_pct, unlocked_index, saved_at)
			VALUES (?, ?, ?, ?, ?)`,
			slot, rec.Progress.ID, rec.Meta.CompletionPct, rec.Progress.UnlockedIndex, savedAt,
		)
		if err != nil {
			return fmt.Errorf("recording slot %d history: %w", slot, err)
		}
		// A cancellation that arrived mid-write rolls back instead of committing.
		return ctx.Err()
	})
}

func (r *SQLiteSlotRepo) Load(ctx context.Context, slot int) (*savefile.SaveSlot, error) {
	if err := savefile.ValidateSlot(slot); err != nil {
		return nil, err
	}
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM save_slots WHERE slot = ?`, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("slot %d: %w", slot, savefile.ErrSlotEmpty)
		}
		return nil, fmt.Errorf("reading slot %d: %w", slot, err)
	}

	s, err := savefile.Decode([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot, err)
	}
	s.Number = slot
	return s, nil
}

func (r *SQLiteSlotRepo) List(ctx context.Context) ([]savefile.SlotSummary, error) {
	return listSlots(ctx, r.Load)
}

// Delete removes the slot and its history.
func (r *SQLiteSlotRepo) Delete(ctx context.Context, slot int) error {
	if err := savefile.ValidateSlot(slot); err != nil {
		return err
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM save_slots WHERE slot = ?`, slot)
		if err != nil {
			return fmt.Errorf("deleting slot %d: %w", slot, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting slot %d: %w", slot, err)
		}
		if n == 0 {
			return fmt.Errorf("slot %d: %w", slot, savefile.ErrSlotEmpty)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM slot_history WHERE slot = ?`, slot); err != nil {
			return fmt.Errorf("deleting slot %d history: %w", slot, err)
		}
		return nil
	})
}

// History returns the slot's saves, newest first.
func (r *SQLiteSlotRepo) History(ctx context.Context, slot int) ([]HistoryEntry, error) {
	if err := savefile.ValidateSlot(slot); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT slot, campaign_id, completion_pct, unlocked_index, saved_at
		FROM slot_history WHERE slot = ? ORDER BY saved_at DESC, id DESC`, slot)
	if err != nil {
		return nil, fmt.Errorf("querying slot %d history: %w", slot, err)
	}
	defer rows.Close()

	out := []HistoryEntry{}
	for rows.Next() {
		var (
			e       HistoryEntry
			savedAt string
		)
		if err := rows.Scan(&e.Slot, &e.CampaignID, &e.CompletionPct, &e.UnlockedIndex, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning slot history: %w", err)
		}
		e.SavedAt = parseStoredTime(savedAt)
		out = append(out, e)
	}
	return out, rows.Err()
}
