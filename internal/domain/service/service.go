package service

import (
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// Options carries the run settings the services need. It is built once from
// the process configuration and passed by value.
type Options struct {
	Location         *time.Location
	DayStartHour     int
	DMHour           int
	MentionStartHour int
	MentionEndHour   int

	Topic           string
	DefaultChannel  string
	DMMessage       string
	MentionMessage  string
	AnnounceMessage string

	FetchPageSize int
	TestRecipient string
}

type Services struct {
	Tracker contract.TrackerService
}

func New(dm contract.DataManager, chat contract.ChatClient, opts Options, log *zap.SugaredLogger) *Services {
	if opts.TestRecipient != "" {
		chat = newSandboxChat(chat, opts.TestRecipient, log)
	}

	return &Services{
		Tracker: newTracker(dm, chat, opts, time.Now, log),
	}
}
