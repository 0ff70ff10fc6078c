package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseRepo(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 13, 19, 0, 0, 0, time.UTC)

	newRepo := func(t *testing.T, now *time.Time) *leaseRepo {
		db := SetupTestDB(t)
		repo := newLeaseRepo(db.conn).(*leaseRepo)
		repo.now = func() time.Time { return *now }
		return repo
	}

	t.Run("Should refuse a live lease held by another run", func(t *testing.T) {
		now := start
		repo := newRepo(t, &now)

		ok, err := repo.Acquire(ctx, "track", "run-1", 30*time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Acquire(ctx, "track", "run-2", 30*time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Should hand out different lease names independently", func(t *testing.T) {
		now := start
		repo := newRepo(t, &now)

		ok, err := repo.Acquire(ctx, "track", "run-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Acquire(ctx, "backfill", "run-2", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Should take over an expired lease", func(t *testing.T) {
		now := start
		repo := newRepo(t, &now)

		ok, err := repo.Acquire(ctx, "track", "run-1", 30*time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		now = start.Add(31 * time.Minute)

		ok, err = repo.Acquire(ctx, "track", "run-2", 30*time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Should free the lease on release by its holder only", func(t *testing.T) {
		now := start
		repo := newRepo(t, &now)

		ok, err := repo.Acquire(ctx, "track", "run-1", 30*time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, repo.Release(ctx, "track", "run-2"))
		ok, err = repo.Acquire(ctx, "track", "run-2", 30*time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, repo.Release(ctx, "track", "run-1"))
		ok, err = repo.Acquire(ctx, "track", "run-2", 30*time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNew(t *testing.T) {
	path := t.TempDir() + "/state.db"

	db, err := New(path)
	require.NoError(t, err)
	defer db.Close()

	ok, err := db.Leases().Acquire(context.Background(), "track", "run-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Reopening an existing file must not fail on already applied migrations
	again, err := New(path)
	require.NoError(t, err)
	defer again.Close()

	ok, err = again.Leases().Acquire(context.Background(), "track", "run-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}
