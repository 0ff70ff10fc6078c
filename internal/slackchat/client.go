package slackchat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackAPI is the subset of *slack.Client used by the adapter
// This allows mocking in tests while keeping the real implementation simple
type SlackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
}

// Client adapts Slack to the chat contract. Slack has no topics: channel
// messages are read from and posted to the channel itself, and usernames are
// Slack user IDs.
type Client struct {
	api   SlackAPI
	users map[string]string
}

func New(api SlackAPI) *Client {
	return &Client{
		api:   api,
		users: make(map[string]string),
	}
}

var _ contract.ChatClient = (*Client)(nil)

// maxHistoryLimit is the largest page conversations.history serves.
const maxHistoryLimit = 999

var ignoredSubtypes = map[string]bool{
	"channel_join":  true,
	"channel_leave": true,
	"bot_message":   true,
}

func (c *Client) SendChannelMessage(ctx context.Context, channel, topic, content string) error {
	_, _, err := c.api.PostMessageContext(ctx, channel,
		slack.MsgOptionText(content, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

func (c *Client) SendPrivateMessage(ctx context.Context, recipients []string, content string) error {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users:    recipients,
		ReturnIM: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open conversation with %s: %w", strings.Join(recipients, ", "), err)
	}

	_, _, err = c.api.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(content, false))
	if err != nil {
		return fmt.Errorf("failed to send Slack DM: %w", err)
	}
	return nil
}

func (c *Client) GetMessages(ctx context.Context, query entity.MessageQuery) (entity.MessagePage, error) {
	limit := query.NumBefore
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	params := &slack.GetConversationHistoryParameters{
		ChannelID: query.Channel,
		Limit:     limit,
	}
	if query.Anchor != "" && query.Anchor != entity.AnchorNewest {
		params.Latest = query.Anchor
		params.Inclusive = true
	}

	resp, err := c.api.GetConversationHistoryContext(ctx, params)
	if err != nil {
		return entity.MessagePage{}, fmt.Errorf("failed to get Slack history for %s: %w", query.Channel, err)
	}

	page := entity.MessagePage{
		Messages: make([]entity.Message, 0, len(resp.Messages)),
		More:     resp.HasMore,
	}
	for _, m := range resp.Messages {
		msg := entity.Message{
			ID:        m.Timestamp,
			Timestamp: parseTimestamp(m.Timestamp),
			Content:   m.Text,
		}
		// Joins, leaves and bot posts keep their slot in the page but carry no
		// sender, so they never count as a member update
		if m.User != "" && m.BotID == "" && !ignoredSubtypes[m.SubType] {
			msg.SenderUsername = m.User
			msg.SenderDisplayName = c.displayName(ctx, m.User)
		}
		page.Messages = append(page.Messages, msg)
	}
	if n := len(resp.Messages); n > 0 {
		page.Oldest = resp.Messages[n-1].Timestamp
	}

	return page, nil
}

func (c *Client) Mention(member entity.Member) string {
	return fmt.Sprintf("<@%s>", member.Username)
}

// displayName resolves a user ID once per run. Lookup failures fall back to the ID.
func (c *Client) displayName(ctx context.Context, userID string) string {
	if name, ok := c.users[userID]; ok {
		return name
	}

	name := userID
	userInfo, err := c.api.GetUserInfoContext(ctx, userID)
	if err == nil && userInfo != nil {
		name = userInfo.Profile.RealName
		if name == "" {
			name = userInfo.Profile.DisplayName
		}
		if name == "" {
			name = userInfo.Name
		}
		if name == "" {
			name = userID
		}
	}

	c.users[userID] = name
	return name
}

func parseTimestamp(ts string) int64 {
	seconds, _, _ := strings.Cut(ts, ".")
	v, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
