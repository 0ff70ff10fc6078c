package main

import (
	"context"
	"fmt"
	"log"

	"github.com/diegoclair/update-tracker-bot/internal/config"
	"github.com/diegoclair/update-tracker-bot/internal/database"
	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"github.com/diegoclair/update-tracker-bot/internal/domain/service"
	"github.com/diegoclair/update-tracker-bot/internal/logger"
	"github.com/diegoclair/update-tracker-bot/internal/roster"
	"github.com/diegoclair/update-tracker-bot/internal/sheets"
	"github.com/diegoclair/update-tracker-bot/internal/slackchat"
	"github.com/diegoclair/update-tracker-bot/internal/zulip"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type app struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	runID   string
	groups  []entity.RosterGroup
	db      *database.DB
	leases  contract.LeaseRepo
	tracker contract.TrackerService
}

func newApp(ctx context.Context, rosterOverride string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return nil, err
	}
	if rosterOverride != "" {
		cfg.RosterPath = rosterOverride
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, runID: uuid.NewString()}
	a.log = zl.With("run_id", a.runID)

	a.groups, err = roster.Load(cfg.RosterPath)
	if err != nil {
		a.log.Errorf("Failed to load roster: %v", err)
		return nil, err
	}
	a.log.Infof("Loaded %d groups with %d members", len(a.groups), roster.CountMembers(a.groups))

	if cfg.StateBackend == config.BackendSQLite || cfg.SingleFlight {
		a.db, err = database.New(cfg.DatabasePath)
		if err != nil {
			a.log.Errorf("Failed to initialize database: %v", err)
			return nil, err
		}
		if cfg.SingleFlight {
			a.leases = a.db.Leases()
		}
	}

	dm, err := a.dataManager(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	chat, err := a.chatClient()
	if err != nil {
		a.close()
		return nil, err
	}

	svc := service.New(dm, chat, service.Options{
		Location:         cfg.Location,
		DayStartHour:     cfg.DayStartHour,
		DMHour:           cfg.DMHour,
		MentionStartHour: cfg.MentionStartHour,
		MentionEndHour:   cfg.MentionEndHour,
		Topic:            cfg.Topic,
		DefaultChannel:   cfg.Channel,
		DMMessage:        cfg.DMMessage,
		MentionMessage:   cfg.MentionMessage,
		AnnounceMessage:  cfg.AnnounceMessage,
		FetchPageSize:    cfg.FetchPageSize,
		TestRecipient:    cfg.TestRecipient,
	}, a.log)
	a.tracker = svc.Tracker

	if cfg.TestRecipient != "" {
		a.log.Warnf("TEST MODE: every message goes to %s", cfg.TestRecipient)
	}

	return a, nil
}

func (a *app) dataManager(ctx context.Context) (contract.DataManager, error) {
	switch a.cfg.StateBackend {
	case config.BackendSQLite:
		return database.NewInstance(a.db), nil
	case config.BackendSheets:
		store, err := sheets.New(ctx, a.cfg.SpreadsheetID, a.cfg.GoogleCreds, a.log)
		if err != nil {
			a.log.Errorf("Failed to open spreadsheet: %v", err)
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", a.cfg.StateBackend)
	}
}

func (a *app) chatClient() (contract.ChatClient, error) {
	switch a.cfg.ChatProvider {
	case config.ProviderZulip:
		return zulip.New(a.cfg.ZulipSite, a.cfg.ZulipEmail, a.cfg.ZulipAPIKey), nil
	case config.ProviderSlack:
		return slackchat.New(slack.New(a.cfg.SlackBotToken)), nil
	default:
		return nil, fmt.Errorf("unknown chat provider %q", a.cfg.ChatProvider)
	}
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warnf("Failed to close database: %v", err)
		}
	}
	_ = a.log.Sync()
}
