package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are re-run on every open,
// so each one must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillHistory(db); err != nil {
		return fmt.Errorf("backfilling slot history: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS save_slots (
		slot           INTEGER PRIMARY KEY CHECK(slot BETWEEN 0 AND 9),
		campaign_id    TEXT NOT NULL,
		schema_version INTEGER NOT NULL,
		mission_name   TEXT NOT NULL DEFAULT '',
		completion_pct REAL NOT NULL DEFAULT 0,
		unlocked_index INTEGER NOT NULL DEFAULT 0
		               CHECK(unlocked_index BETWEEN 0 AND 13),
		payload        TEXT NOT NULL,
		saved_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS slot_history (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		slot           INTEGER NOT NULL CHECK(slot BETWEEN 0 AND 9),
		campaign_id    TEXT NOT NULL,
		completion_pct REAL NOT NULL DEFAULT 0,
		unlocked_index INTEGER NOT NULL DEFAULT 0,
		saved_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_slot_history_slot ON slot_history(slot, saved_at)`,

	// Difficulty is denormalized so listings need not decode the payload.
	`ALTER TABLE save_slots ADD COLUMN difficulty TEXT NOT NULL DEFAULT 'veteran'`,
}

// migrateBackfillHistory gives every stored slot at least one history row.
// Databases created before slot_history existed have saves with no audit
// trail. Idempotent: slots that already have history are skipped.
func migrateBackfillHistory(db *sql.DB) error {
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `INSERT INTO slot_history (slot, campaign_id, completion_pct, unlocked_index, saved_at)
		SELECT s.slot, s.campaign_id, s.completion_pct, s.unlocked_index, s.saved_at
		FROM save_slots s
		WHERE NOT EXISTS (SELECT 1 FROM slot_history h WHERE h.slot = s.slot)`)
	if err != nil {
		return fmt.Errorf("inserting missing history rows: %w", err)
	}
	return nil
}
