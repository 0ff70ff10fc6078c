package contract

import (
	"context"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

// DataManager aggregates the durable state of the tracker
type DataManager interface {
	Updates() UpdateRepo
	Reminders() ReminderRepo
}

// UpdateRepo defines the contract for the per-group content matrix
type UpdateRepo interface {
	// Upsert overwrites the cells of every given day for the group.
	// Participant columns are only ever added, never removed.
	Upsert(ctx context.Context, group string, days []entity.DailyUpdate) error
}

// ReminderRepo defines the contract for the append-only reminder log
type ReminderRepo interface {
	RemindedOn(ctx context.Context, date, group string) (map[string]bool, error)
	Record(ctx context.Context, entry entity.ReminderLogEntry) error
}

// LeaseRepo hands out named run leases so overlapping runs can be refused
type LeaseRepo interface {
	// Acquire returns false when another holder owns an unexpired lease.
	Acquire(ctx context.Context, name, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name, holder string) error
}
