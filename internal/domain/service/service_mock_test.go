package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/update-tracker-bot/internal/domain"
	"github.com/diegoclair/update-tracker-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockUpdateRepo   *mocks.MockUpdateRepo
	mockReminderRepo *mocks.MockReminderRepo
	mockChatClient   *mocks.MockChatClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	updateRepo := mocks.NewMockUpdateRepo(ctrl)
	dm.EXPECT().Updates().Return(updateRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminders().Return(reminderRepo).AnyTimes()

	chatClient := mocks.NewMockChatClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockUpdateRepo:   updateRepo,
		mockReminderRepo: reminderRepo,
		mockChatClient:   chatClient,
	}

	// validate service creation
	services := New(dm, chatClient, testOptions(t), zap.NewNop().Sugar())
	require.NotNil(t, services.Tracker)

	return
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func testOptions(t *testing.T) Options {
	t.Helper()

	return Options{
		Location:         testLocation(t),
		DayStartHour:     5,
		DMHour:           19,
		MentionStartHour: 19,
		MentionEndHour:   23,
		Topic:            "daily-updates",
		DMMessage:        domain.DefaultDMMessage,
		MentionMessage:   domain.DefaultMentionMessage,
		AnnounceMessage:  domain.DefaultAnnounceMessage,
		FetchPageSize:    3,
	}
}

// fixedClock returns a clock stuck at the given local time in Asia/Kolkata.
func fixedClock(t *testing.T, year int, month time.Month, day, hour, minute int) func() time.Time {
	t.Helper()

	now := time.Date(year, month, day, hour, minute, 0, 0, testLocation(t))
	return func() time.Time { return now }
}

func newTestTracker(t *testing.T, m allMocks, now func() time.Time) *tracker {
	t.Helper()

	return newTracker(m.mockDataManager, m.mockChatClient, testOptions(t), now, zap.NewNop().Sugar())
}
