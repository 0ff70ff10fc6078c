package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

type updateRepo struct {
	db dbConn
}

func newUpdateRepo(db dbConn) contract.UpdateRepo {
	return &updateRepo{db: db}
}

// Upsert stores the given days of a group. Participants keep the position
// they got the first time they were seen and are never removed.
func (r *updateRepo) Upsert(ctx context.Context, group string, days []entity.DailyUpdate) error {
	if len(days) == 0 {
		return nil
	}

	return withTransaction(ctx, r.db, func(tx dbConn) error {
		for _, participant := range participants(days) {
			if err := r.addParticipant(ctx, tx, group, participant); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO daily_updates (group_name, day_label, day_date, username, content)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (group_name, day_label, username) DO UPDATE SET
				content = excluded.content,
				day_date = excluded.day_date,
				updated_at = CURRENT_TIMESTAMP
		`

		for _, day := range days {
			for participant, content := range day.Entries {
				_, err := tx.ExecContext(ctx, query, group, day.Label, day.Date, entity.ParticipantKey(participant), content)
				if err != nil {
					return fmt.Errorf("failed to upsert update of %s on %s: %w", participant, day.Label, err)
				}
			}
		}

		return nil
	})
}

func (r *updateRepo) addParticipant(ctx context.Context, tx dbConn, group, participant string) error {
	query := `
		INSERT OR IGNORE INTO participants (group_name, username, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM participants WHERE group_name = ?))
	`

	_, err := tx.ExecContext(ctx, query, group, entity.ParticipantKey(participant), group)
	if err != nil {
		return fmt.Errorf("failed to add participant %s: %w", participant, err)
	}

	return nil
}

// participants returns every participant of the given days in name order.
func participants(days []entity.DailyUpdate) []string {
	seen := make(map[string]bool)
	var names []string
	for _, day := range days {
		for participant := range day.Entries {
			key := entity.ParticipantKey(participant)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}
