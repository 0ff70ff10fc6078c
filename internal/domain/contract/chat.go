package contract

import (
	"context"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

// ChatClient defines the chat platform operations the bot relies on
// This allows mocking in tests and swapping between Zulip and Slack
type ChatClient interface {
	// SendChannelMessage posts a message into a channel and topic
	SendChannelMessage(ctx context.Context, channel, topic, content string) error

	// SendPrivateMessage sends a direct message to one or more recipients
	SendPrivateMessage(ctx context.Context, recipients []string, content string) error

	// GetMessages returns one page of messages, newest first, ending at the query anchor
	GetMessages(ctx context.Context, query entity.MessageQuery) (entity.MessagePage, error)

	// Mention renders the platform syntax that notifies a member in a channel message
	Mention(member entity.Member) string
}
