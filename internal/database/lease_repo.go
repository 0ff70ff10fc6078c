package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
)

type leaseRepo struct {
	db  dbConn
	now func() time.Time
}

func newLeaseRepo(db dbConn) contract.LeaseRepo {
	return &leaseRepo{db: db, now: time.Now}
}

// Acquire takes the named lease for holder. An expired lease is taken over;
// a live one held by someone else makes Acquire return false.
func (r *leaseRepo) Acquire(ctx context.Context, name, holder string, ttl time.Duration) (bool, error) {
	now := r.now()
	acquired := false

	err := withTransaction(ctx, r.db, func(tx dbConn) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM run_leases WHERE name = ? AND expires_at <= ?`, name, now.UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to expire lease %s: %w", name, err)
		}

		result, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO run_leases (name, holder, acquired_at, expires_at)
			VALUES (?, ?, ?, ?)
		`, name, holder, now.UnixMilli(), now.Add(ttl).UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to acquire lease %s: %w", name, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}

		acquired = rows == 1
		return nil
	})
	if err != nil {
		return false, err
	}

	return acquired, nil
}

// Release drops the lease if holder still owns it.
func (r *leaseRepo) Release(ctx context.Context, name, holder string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM run_leases WHERE name = ? AND holder = ?`, name, holder)
	if err != nil {
		return fmt.Errorf("failed to release lease %s: %w", name, err)
	}

	return nil
}
