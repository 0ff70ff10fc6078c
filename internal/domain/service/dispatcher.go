package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// DispatchResult counts what a dispatch actually did.
type DispatchResult struct {
	Reminded  int
	Failed    int
	Mentioned int
}

type dispatcher struct {
	chat      contract.ChatClient
	reminders contract.ReminderRepo
	opts      Options
	now       func() time.Time
	log       *zap.SugaredLogger
}

func newDispatcher(chat contract.ChatClient, reminders contract.ReminderRepo, opts Options, now func() time.Time, log *zap.SugaredLogger) *dispatcher {
	return &dispatcher{
		chat:      chat,
		reminders: reminders,
		opts:      opts,
		now:       now,
		log:       log,
	}
}

// Dispatch sends private reminders to pending members at the DM hour and one
// aggregated public mention for escalated members inside the mention window.
// Every successful private reminder is appended to the reminder log.
//
// Two runs inside the DM hour will both remind the same pending members; the
// caller is expected to hold the run lease.
func (d *dispatcher) Dispatch(ctx context.Context, group entity.RosterGroup, window entity.Window, c entity.Classification) (DispatchResult, error) {
	var result DispatchResult

	hour := window.Now.Hour()
	log := d.log.With("group", group.Name)

	if hour == d.opts.DMHour {
		log.Infof("DM window active (%02d:00). Sending DMs.", d.opts.DMHour)
		for _, member := range c.Pending {
			if err := d.remind(ctx, group, member); err != nil {
				log.Errorw("DM failed", "username", member.Username, "error", err)
				result.Failed++
				continue
			}

			err := d.reminders.Record(ctx, entity.ReminderLogEntry{
				Date:     window.Date,
				Group:    group.Name,
				Username: member.Key(),
				SentAt:   d.now().In(d.opts.Location),
			})
			if err != nil {
				return result, fmt.Errorf("failed to record reminder for %s: %w", member.Username, err)
			}
			log.Infof("Recorded DM sent to %s for batch %s", member.Username, group.Name)
			result.Reminded++
		}
	} else if len(c.Pending) > 0 {
		log.Infof("Outside DM window (%02d:00 only). Skipping %d DMs.", d.opts.DMHour, len(c.Pending))
	}

	if hour >= d.opts.MentionStartHour && hour <= d.opts.MentionEndHour {
		if len(c.Escalated) > 0 {
			log.Infof("Mention window active (%02d:00 - %02d:59). Sending public mentions.", d.opts.MentionStartHour, d.opts.MentionEndHour)
			if err := d.mention(ctx, group, c.Escalated); err != nil {
				return result, fmt.Errorf("failed to send channel mention: %w", err)
			}
			log.Infof("Sent channel mention for %d students in #%s", len(c.Escalated), group.Channel)
			result.Mentioned = len(c.Escalated)
		}
	} else if len(c.Escalated) > 0 {
		log.Infof("Outside mention window (%02d:00 - %02d:59). Skipping %d mentions.", d.opts.MentionStartHour, d.opts.MentionEndHour, len(c.Escalated))
	}

	return result, nil
}

func (d *dispatcher) remind(ctx context.Context, group entity.RosterGroup, member entity.Member) error {
	message := renderTemplate(d.opts.DMMessage, group.Channel, d.opts.Topic)
	return d.chat.SendPrivateMessage(ctx, []string{member.Username}, message)
}

func (d *dispatcher) mention(ctx context.Context, group entity.RosterGroup, members []entity.Member) error {
	mentions := make([]string, 0, len(members))
	for _, member := range members {
		mentions = append(mentions, d.chat.Mention(member))
	}

	message := renderTemplate(d.opts.MentionMessage, group.Channel, d.opts.Topic)
	content := strings.Join(mentions, " ") + " " + message

	return d.chat.SendChannelMessage(ctx, group.Channel, d.opts.Topic, content)
}
