package main

import (
	"context"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// withLease runs fn while holding the named lease. When another run holds it,
// fn is skipped and nil is returned so the scheduler does not see a failure.
func withLease(ctx context.Context, leases contract.LeaseRepo, name, holder string, ttl time.Duration, log *zap.SugaredLogger, fn func(ctx context.Context) error) error {
	ok, err := leases.Acquire(ctx, name, holder, ttl)
	if err != nil {
		log.Errorf("Failed to acquire %s lease: %v", name, err)
		return err
	}
	if !ok {
		log.Infof("Another %s run is in progress, skipping", name)
		return nil
	}

	defer func() {
		// Release even when ctx was cancelled
		if err := leases.Release(context.Background(), name, holder); err != nil {
			log.Warnf("Failed to release %s lease: %v", name, err)
		}
	}()

	return fn(ctx)
}
