package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// ErrGroupsFailed is returned when at least one roster group could not be processed.
var ErrGroupsFailed = errors.New("one or more groups failed")

type tracker struct {
	dm         contract.DataManager
	chat       contract.ChatClient
	fetcher    *fetcher
	dispatcher *dispatcher
	opts       Options
	now        func() time.Time
	log        *zap.SugaredLogger
}

func newTracker(dm contract.DataManager, chat contract.ChatClient, opts Options, now func() time.Time, log *zap.SugaredLogger) *tracker {
	return &tracker{
		dm:         dm,
		chat:       chat,
		fetcher:    newFetcher(chat, opts.FetchPageSize, log),
		dispatcher: newDispatcher(chat, dm.Reminders(), opts, now, log),
		opts:       opts,
		now:        now,
		log:        log,
	}
}

var _ contract.TrackerService = (*tracker)(nil)

// Track runs one reconciliation pass over every roster group. A failing group
// is logged and skipped; the remaining groups are still processed.
func (t *tracker) Track(ctx context.Context, groups []entity.RosterGroup) error {
	window := NewWindow(t.now(), t.opts.Location, t.opts.DayStartHour)
	t.log.Infof("Processing for date: %s (day starts at %s)", window.Date, window.Start.Format("2006-01-02 15:04:05"))
	t.log.Infof("Current hour (%s): %d", t.opts.Location, window.Now.Hour())

	failed := 0
	for _, group := range groups {
		if err := t.trackGroup(ctx, group, window); err != nil {
			t.log.Errorw("Failed processing batch", "group", group.Name, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrGroupsFailed, failed, len(groups))
	}
	return nil
}

func (t *tracker) trackGroup(ctx context.Context, group entity.RosterGroup, window entity.Window) error {
	log := t.log.With("group", group.Name)
	log.Infof("Processing batch: %s (channel: %s, %d students)", group.Name, group.Channel, len(group.Members))

	updates, err := t.fetcher.Fetch(ctx, group.Channel, t.opts.Topic, window.Start)
	if err != nil {
		return fmt.Errorf("failed to fetch updates: %w", err)
	}

	if len(updates) == 0 {
		log.Infof("No updates to record for batch %s, skipping", group.Name)
	} else {
		day := entity.DailyUpdate{
			Label:   window.Label,
			Date:    window.Date,
			Entries: updates.Entries(group.Members),
		}
		if err := t.dm.Updates().Upsert(ctx, group.Name, []entity.DailyUpdate{day}); err != nil {
			return fmt.Errorf("failed to record updates: %w", err)
		}
	}

	reminded, err := t.dm.Reminders().RemindedOn(ctx, window.Date, group.Name)
	if err != nil {
		return fmt.Errorf("failed to read reminder log: %w", err)
	}

	c := Classify(group.Members, updates.Posted(), reminded)
	log.Infof("Batch %s: %d posted, %d to DM, %d to mention", group.Name, len(c.Posted), len(c.Pending), len(c.Escalated))

	if _, err := t.dispatcher.Dispatch(ctx, group, window, c); err != nil {
		return err
	}

	return nil
}
