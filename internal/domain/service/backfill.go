package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

// Backfill writes the complete history of every group's topic into the
// content matrix, one row per attendance day, oldest day first.
func (t *tracker) Backfill(ctx context.Context, groups []entity.RosterGroup) error {
	failed := 0
	for _, group := range groups {
		if err := t.backfillGroup(ctx, group); err != nil {
			t.log.Errorw("Failed backfilling batch", "group", group.Name, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrGroupsFailed, failed, len(groups))
	}
	return nil
}

func (t *tracker) backfillGroup(ctx context.Context, group entity.RosterGroup) error {
	byDate, labels, err := t.fetcher.FetchHistory(ctx, group.Channel, t.opts.Topic, t.opts.Location, t.opts.DayStartHour)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	if len(byDate) == 0 {
		t.log.Infof("No messages found for batch %s", group.Name)
		return nil
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]entity.DailyUpdate, 0, len(dates))
	for _, date := range dates {
		days = append(days, entity.DailyUpdate{
			Label:   labels[date],
			Date:    date,
			Entries: byDate[date].Entries(group.Members),
		})
	}

	if err := t.dm.Updates().Upsert(ctx, group.Name, days); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	t.log.Infof("Backfilled %d days for batch %s", len(days), group.Name)
	return nil
}
