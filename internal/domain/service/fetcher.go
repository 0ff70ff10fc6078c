package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"go.uber.org/zap"
)

var markupTag = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes markup tags from a rendered chat message.
func StripMarkup(content string) string {
	return strings.TrimSpace(markupTag.ReplaceAllString(content, ""))
}

type fetcher struct {
	chat     contract.ChatClient
	pageSize int
	log      *zap.SugaredLogger
}

func newFetcher(chat contract.ChatClient, pageSize int, log *zap.SugaredLogger) *fetcher {
	return &fetcher{
		chat:     chat,
		pageSize: pageSize,
		log:      log,
	}
}

// Fetch returns the latest update of every participant who posted in the
// channel and topic at or after since. On any chat error it returns an empty
// result together with the error.
func (f *fetcher) Fetch(ctx context.Context, channel, topic string, since time.Time) (entity.Updates, error) {
	f.log.Infof("Fetching messages from #%s > %s since %s", channel, topic, since.Format("2006-01-02 15:04:05"))

	messages, err := f.collect(ctx, channel, topic, since.Unix())
	if err != nil {
		f.log.Errorw("Chat API error while fetching messages", "channel", channel, "topic", topic, "error", err)
		return entity.Updates{}, err
	}

	updates := latestUpdates(messages, since.Unix())
	f.log.Infof("Found %d users who posted today: %v", len(updates), usernames(updates))
	return updates, nil
}

// FetchHistory returns every message of the topic grouped by the attendance
// day it was posted on, keeping the latest update per participant and day.
func (f *fetcher) FetchHistory(ctx context.Context, channel, topic string, loc *time.Location, dayStartHour int) (map[string]entity.Updates, map[string]string, error) {
	f.log.Infof("Fetching ALL messages from #%s > %s", channel, topic)

	messages, err := f.collect(ctx, channel, topic, 0)
	if err != nil {
		f.log.Errorw("Chat API error while fetching history", "channel", channel, "topic", topic, "error", err)
		return nil, nil, err
	}

	byDate := make(map[string][]entity.Message)
	labels := make(map[string]string)
	for _, msg := range messages {
		label, date := EffectiveDay(msg.Timestamp, loc, dayStartHour)
		byDate[date] = append(byDate[date], msg)
		labels[date] = label
	}

	days := make(map[string]entity.Updates, len(byDate))
	for date, msgs := range byDate {
		days[date] = latestUpdates(msgs, 0)
	}

	f.log.Infof("Found updates for %d dates", len(days))
	return days, labels, nil
}

// collect pages backwards from the newest message until the platform reports
// no older messages, a page predates since, or the anchor stops moving.
func (f *fetcher) collect(ctx context.Context, channel, topic string, since int64) ([]entity.Message, error) {
	var (
		all    []entity.Message
		seen   = make(map[string]bool)
		anchor = entity.AnchorNewest
	)

	for {
		page, err := f.chat.GetMessages(ctx, entity.MessageQuery{
			Channel:   channel,
			Topic:     topic,
			Anchor:    anchor,
			NumBefore: f.pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get messages: %w", err)
		}

		if len(page.Messages) == 0 {
			break
		}

		oldest := page.Messages[0].Timestamp
		for _, msg := range page.Messages {
			if msg.Timestamp < oldest {
				oldest = msg.Timestamp
			}
			if seen[msg.ID] {
				continue
			}
			seen[msg.ID] = true
			all = append(all, msg)
		}
		f.log.Debugf("Fetched %d messages so far...", len(all))

		if !page.More {
			break
		}
		if page.Oldest == "" || page.Oldest == anchor {
			break
		}
		if oldest < since {
			break
		}
		anchor = page.Oldest
	}

	f.log.Infof("Fetched %d total messages from topic", len(all))
	return all, nil
}

// latestUpdates keeps, per participant, the content of the message with the
// highest timestamp at or after since. Ties are broken by message id.
func latestUpdates(messages []entity.Message, since int64) entity.Updates {
	ordered := make([]entity.Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Timestamp >= since {
			ordered = append(ordered, msg)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp != ordered[j].Timestamp {
			return ordered[i].Timestamp < ordered[j].Timestamp
		}
		return idLess(ordered[i].ID, ordered[j].ID)
	})

	updates := make(entity.Updates)
	for _, msg := range ordered {
		username := entity.NormalizeUsername(msg.SenderUsername)
		if username == "" {
			continue
		}
		updates[username] = entity.Update{
			Username:    username,
			DisplayName: msg.SenderDisplayName,
			Content:     StripMarkup(msg.Content),
			Timestamp:   msg.Timestamp,
			MessageID:   msg.ID,
		}
	}

	return updates
}

// idLess orders numeric ids (Zulip ids, Slack timestamps) without parsing them.
func idLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func usernames(updates entity.Updates) []string {
	names := make([]string, 0, len(updates))
	for username := range updates {
		names = append(names, username)
	}
	sort.Strings(names)
	return names
}
