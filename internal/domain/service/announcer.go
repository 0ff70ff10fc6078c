package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

// Announce posts the daily prompt into the configured channel, or into every
// group's channel when no default channel is set.
func (t *tracker) Announce(ctx context.Context, groups []entity.RosterGroup) error {
	channels := announceChannels(t.opts.DefaultChannel, groups)
	if len(channels) == 0 {
		return fmt.Errorf("no channel to announce in")
	}

	failed := 0
	for _, channel := range channels {
		message := renderTemplate(t.opts.AnnounceMessage, channel, t.opts.Topic)
		if err := t.chat.SendChannelMessage(ctx, channel, t.opts.Topic, message); err != nil {
			t.log.Errorw("Failed to send announcement", "channel", channel, "error", err)
			failed++
			continue
		}
		t.log.Infof("Announcement sent to #%s > %s", channel, t.opts.Topic)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrGroupsFailed, failed, len(channels))
	}
	return nil
}

func announceChannels(defaultChannel string, groups []entity.RosterGroup) []string {
	if defaultChannel != "" {
		return []string{defaultChannel}
	}

	seen := make(map[string]bool)
	var channels []string
	for _, group := range groups {
		if group.Channel == "" || seen[group.Channel] {
			continue
		}
		seen[group.Channel] = true
		channels = append(channels, group.Channel)
	}
	return channels
}
