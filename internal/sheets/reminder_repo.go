package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

type reminderRepo struct {
	store *Store
}

func (r *reminderRepo) open(ctx context.Context) error {
	api := r.store.api
	_, err := r.store.ensureSheet(ctx, domain.ReminderLogSheet, logRows, logCols, func(int64) error {
		return api.AppendRow(ctx, domain.ReminderLogSheet, domain.ReminderLogHeader)
	})
	if err != nil {
		return fmt.Errorf("failed to open reminder log: %w", err)
	}
	return nil
}

// RemindedOn returns the lowercased usernames reminded on date for group.
func (r *reminderRepo) RemindedOn(ctx context.Context, date, group string) (map[string]bool, error) {
	if err := r.open(ctx); err != nil {
		return nil, err
	}

	rows, err := r.store.api.Values(ctx, domain.ReminderLogSheet)
	if err != nil {
		return nil, err
	}

	reminded := make(map[string]bool)
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		if row[0] == date && row[1] == group {
			reminded[entity.NormalizeUsername(row[2])] = true
		}
	}

	return reminded, nil
}

// Record appends one row to the reminder log.
func (r *reminderRepo) Record(ctx context.Context, entry entity.ReminderLogEntry) error {
	if err := r.open(ctx); err != nil {
		return err
	}

	return r.store.api.AppendRow(ctx, domain.ReminderLogSheet, []string{
		entry.Date,
		entry.Group,
		strings.ToLower(entry.Username),
		entry.SentAt.Format(time.RFC3339),
	})
}
