package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_sandboxChat(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	chat := newSandboxChat(m.mockChatClient, "tester@example.com", zap.NewNop().Sugar())

	m.mockChatClient.EXPECT().SendPrivateMessage(gomock.Any(), []string{"tester@example.com"},
		"[TEST - Original recipient: ana@example.com]\n\nhello").Return(nil)
	m.mockChatClient.EXPECT().SendPrivateMessage(gomock.Any(), []string{"tester@example.com"},
		"[TEST - Channel message for #batch-a > daily-updates]\n\n@**Bob** ping").Return(nil)

	require.NoError(t, chat.SendPrivateMessage(context.Background(), []string{"ana@example.com"}, "hello"))
	require.NoError(t, chat.SendChannelMessage(context.Background(), "batch-a", "daily-updates", "@**Bob** ping"))
}
