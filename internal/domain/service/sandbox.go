package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// sandboxChat redirects every outgoing message to a single test recipient.
// Reads go to the real chat so a test run sees real attendance.
type sandboxChat struct {
	contract.ChatClient
	recipient string
	log       *zap.SugaredLogger
}

func newSandboxChat(chat contract.ChatClient, recipient string, log *zap.SugaredLogger) *sandboxChat {
	return &sandboxChat{
		ChatClient: chat,
		recipient:  recipient,
		log:        log,
	}
}

func (s *sandboxChat) SendPrivateMessage(ctx context.Context, recipients []string, content string) error {
	s.log.Infof("TEST MODE: Redirecting DM from %s to %s", strings.Join(recipients, ", "), s.recipient)

	content = fmt.Sprintf("[TEST - Original recipient: %s]\n\n%s", strings.Join(recipients, ", "), content)
	return s.ChatClient.SendPrivateMessage(ctx, []string{s.recipient}, content)
}

func (s *sandboxChat) SendChannelMessage(ctx context.Context, channel, topic, content string) error {
	s.log.Infof("TEST MODE: Sending channel message for #%s as DM to %s", channel, s.recipient)

	content = fmt.Sprintf("[TEST - Channel message for #%s > %s]\n\n%s", channel, topic, content)
	return s.ChatClient.SendPrivateMessage(ctx, []string{s.recipient}, content)
}

var _ contract.ChatClient = (*sandboxChat)(nil)
