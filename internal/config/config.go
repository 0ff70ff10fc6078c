package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ProviderZulip = "zulip"
	ProviderSlack = "slack"

	BackendSheets = "sheets"
	BackendSQLite = "sqlite"
)

type Config struct {
	ChatProvider  string `mapstructure:"CHAT_PROVIDER" validate:"oneof=zulip slack"`
	ZulipSite     string `mapstructure:"ZULIP_SITE" validate:"required_if=ChatProvider zulip"`
	ZulipEmail    string `mapstructure:"ZULIP_EMAIL" validate:"required_if=ChatProvider zulip"`
	ZulipAPIKey   string `mapstructure:"ZULIP_API_KEY" validate:"required_if=ChatProvider zulip"`
	SlackBotToken string `mapstructure:"SLACK_BOT_TOKEN" validate:"required_if=ChatProvider slack"`

	Channel string `mapstructure:"CHAT_CHANNEL"`
	Topic   string `mapstructure:"CHAT_TOPIC" validate:"required"`

	StateBackend  string `mapstructure:"STATE_BACKEND" validate:"oneof=sheets sqlite"`
	SpreadsheetID string `mapstructure:"GSHEET_ID" validate:"required_if=StateBackend sheets"`
	GoogleCreds   string `mapstructure:"GOOGLE_CREDS" validate:"required_if=StateBackend sheets"`
	DatabasePath  string `mapstructure:"DATABASE_PATH" validate:"required"`

	Timezone         string `mapstructure:"TIMEZONE" validate:"required"`
	DayStartHour     int    `mapstructure:"DAY_START_HOUR" validate:"min=0,max=23"`
	DMHour           int    `mapstructure:"DM_HOUR" validate:"min=0,max=23"`
	MentionStartHour int    `mapstructure:"MENTION_START_HOUR" validate:"min=0,max=23"`
	MentionEndHour   int    `mapstructure:"MENTION_END_HOUR" validate:"min=0,max=23,gtefield=MentionStartHour"`

	DMMessage       string `mapstructure:"DM_MESSAGE" validate:"required"`
	MentionMessage  string `mapstructure:"MENTION_MESSAGE" validate:"required"`
	AnnounceMessage string `mapstructure:"ANNOUNCE_MESSAGE" validate:"required"`

	RosterPath    string `mapstructure:"ROSTER_PATH" validate:"required"`
	TestRecipient string `mapstructure:"TEST_RECIPIENT"`
	FetchPageSize int    `mapstructure:"FETCH_PAGE_SIZE" validate:"gt=0"`

	SingleFlight bool          `mapstructure:"SINGLE_FLIGHT"`
	LeaseTTL     time.Duration `mapstructure:"LEASE_TTL" validate:"gt=0"`

	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Location is resolved from Timezone by Load.
	Location *time.Location `mapstructure:"-" validate:"-"`
}

var defaults = map[string]any{
	"CHAT_PROVIDER":      ProviderZulip,
	"STATE_BACKEND":      BackendSheets,
	"DATABASE_PATH":      "./tracker.db",
	"TIMEZONE":           "Asia/Kolkata",
	"DAY_START_HOUR":     5,
	"DM_HOUR":            19,
	"MENTION_START_HOUR": 19,
	"MENTION_END_HOUR":   23,
	"DM_MESSAGE":         domain.DefaultDMMessage,
	"MENTION_MESSAGE":    domain.DefaultMentionMessage,
	"ANNOUNCE_MESSAGE":   domain.DefaultAnnounceMessage,
	"ROSTER_PATH":        "roster.json",
	"FETCH_PAGE_SIZE":    domain.DefaultFetchPageSize,
	"SINGLE_FLIGHT":      true,
	"LEASE_TTL":          "30m",
	"LOG_LEVEL":          "info",
}

var keys = []string{
	"CHAT_PROVIDER", "ZULIP_SITE", "ZULIP_EMAIL", "ZULIP_API_KEY", "SLACK_BOT_TOKEN",
	"CHAT_CHANNEL", "CHAT_TOPIC",
	"STATE_BACKEND", "GSHEET_ID", "GOOGLE_CREDS", "DATABASE_PATH",
	"TIMEZONE", "DAY_START_HOUR", "DM_HOUR", "MENTION_START_HOUR", "MENTION_END_HOUR",
	"DM_MESSAGE", "MENTION_MESSAGE", "ANNOUNCE_MESSAGE",
	"ROSTER_PATH", "TEST_RECIPIENT", "FETCH_PAGE_SIZE",
	"SINGLE_FLIGHT", "LEASE_TTL", "LOG_LEVEL",
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.ChatProvider = strings.ToLower(strings.TrimSpace(cfg.ChatProvider))
	cfg.StateBackend = strings.ToLower(strings.TrimSpace(cfg.StateBackend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// Validate reports every missing or out-of-range setting by its environment name.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s (%s)", fe.Field(), describe(fe)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gtefield":
		return "must not be before MENTION_START_HOUR"
	default:
		if fe.Param() != "" {
			return fe.Tag() + "=" + fe.Param()
		}
		return fe.Tag()
	}
}
