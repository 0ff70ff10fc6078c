package contract

import (
	"context"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

// TrackerService is what the command line drives on each scheduled run
type TrackerService interface {
	Announce(ctx context.Context, groups []entity.RosterGroup) error
	Track(ctx context.Context, groups []entity.RosterGroup) error
	Backfill(ctx context.Context, groups []entity.RosterGroup) error
}
