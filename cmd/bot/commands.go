package main

import (
	"context"

	"github.com/diegoclair/update-tracker-bot/internal/domain"
	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"github.com/spf13/cobra"
)

var rosterPath string

// action is one tracker run over the roster groups.
type action func(svc contract.TrackerService, ctx context.Context, groups []entity.RosterGroup) error

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post the daily call for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), "", contract.TrackerService.Announce)
	},
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record today's updates and remind members who have not posted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), domain.TrackLease, contract.TrackerService.Track)
	},
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Rebuild the spreadsheet from the whole topic history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), domain.BackfillLease, contract.TrackerService.Backfill)
	},
}

func init() {
	rootCmd.AddCommand(announceCmd, trackCmd, backfillCmd)
}

// run bootstraps the application and runs act under the named lease.
func run(ctx context.Context, lease string, act action) error {
	a, err := newApp(ctx, rosterPath)
	if err != nil {
		return err
	}
	defer a.close()

	return a.run(ctx, lease, act)
}

// run calls act with the loaded roster, holding the named lease when one is
// given and single-flight is enabled.
func (a *app) run(ctx context.Context, lease string, act action) error {
	call := func(ctx context.Context) error {
		return act(a.tracker, ctx, a.groups)
	}

	var err error
	if lease == "" || a.leases == nil {
		err = call(ctx)
	} else {
		err = withLease(ctx, a.leases, lease, a.runID, a.cfg.LeaseTTL, a.log, call)
	}
	if err != nil {
		a.log.Errorf("Run finished with errors: %v", err)
		return err
	}

	a.log.Info("Run finished")
	return nil
}
