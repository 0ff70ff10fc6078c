package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) RemindedOn(ctx context.Context, date, group string) (map[string]bool, error) {
	query := `
		SELECT username
		FROM reminder_log
		WHERE day = ? AND group_name = ?
	`

	rows, err := r.db.QueryContext(ctx, query, date, group)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder log: %w", err)
	}
	defer rows.Close()

	reminded := make(map[string]bool)
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan reminder log: %w", err)
		}
		reminded[entity.NormalizeUsername(username)] = true
	}

	return reminded, rows.Err()
}

// Record stores a sent reminder. Recording the same member twice for a day is a no-op.
func (r *reminderRepo) Record(ctx context.Context, entry entity.ReminderLogEntry) error {
	query := `
		INSERT OR IGNORE INTO reminder_log (day, group_name, username, sent_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.Date,
		entry.Group,
		entity.NormalizeUsername(entry.Username),
		entry.SentAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}

	return nil
}
