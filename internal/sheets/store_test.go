package sheets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *fakeSheets) {
	t.Helper()

	fake := newFakeSheets()
	return newStore(fake, zap.NewNop().Sugar()), fake
}

func day(label string, entries map[string]string) entity.DailyUpdate {
	return entity.DailyUpdate{Label: label, Entries: entries}
}

func TestUpdateRepo_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create the sheet with a date header and write the first day", func(t *testing.T) {
		store, fake := newTestStore(t)

		err := store.Updates().Upsert(ctx, "final-year", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "parser", "Bob": "tests"}),
		})

		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"DATE", "ANA", "BOB"},
			{"13 Jan", "parser", "tests"},
		}, fake.tabs["final-year"])
		assert.Equal(t, int64(3), fake.bold["final-year"])
	})

	t.Run("Should overwrite the same date row and append new columns", func(t *testing.T) {
		store, fake := newTestStore(t)

		require.NoError(t, store.Updates().Upsert(ctx, "final-year", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "T1 update", "Bob": "tests"}),
		}))
		require.NoError(t, store.Updates().Upsert(ctx, "final-year", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"ana": "T2 update", "Cy": "docs"}),
		}))

		assert.Equal(t, [][]string{
			{"DATE", "ANA", "BOB", "CY"},
			{"13 Jan", "T2 update", "tests", "docs"},
		}, fake.tabs["final-year"])
		assert.Equal(t, 1, fake.calls["AddSheet"])
		assert.Equal(t, 1, fake.calls["Sheet"], "sheets are cached")
	})

	t.Run("Should never drop a header column across runs", func(t *testing.T) {
		store, fake := newTestStore(t)

		require.NoError(t, store.Updates().Upsert(ctx, "g", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "a", "Bob": "b"}),
		}))
		require.NoError(t, store.Updates().Upsert(ctx, "g", []entity.DailyUpdate{
			day("14 Jan", map[string]string{"Cy": "c"}),
		}))

		assert.Equal(t, []string{"DATE", "ANA", "BOB", "CY"}, fake.tabs["g"][0])
		assert.Equal(t, []string{"14 Jan", "", "", "c"}, fake.tabs["g"][2])
	})

	t.Run("Should write several days in order", func(t *testing.T) {
		store, fake := newTestStore(t)

		require.NoError(t, store.Updates().Upsert(ctx, "g", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "mon"}),
			day("14 Jan", map[string]string{"Ana": "tue", "Bob": "tue bob"}),
		}))

		assert.Equal(t, [][]string{
			{"DATE", "ANA", "BOB"},
			{"13 Jan", "mon"},
			{"14 Jan", "tue", "tue bob"},
		}, fake.tabs["g"])
	})

	t.Run("Should put the date column back in front of an existing sheet", func(t *testing.T) {
		store, fake := newTestStore(t)

		_, _ = fake.AddSheet(ctx, "legacy", 10, 10)
		fake.tabs["legacy"] = [][]string{{"ANA"}, {"old"}}

		require.NoError(t, store.Updates().Upsert(ctx, "legacy", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "new"}),
		}))

		assert.Equal(t, 1, fake.calls["InsertColumn"])
		assert.Equal(t, []string{"DATE", "ANA"}, fake.tabs["legacy"][0])
		assert.Equal(t, []string{"13 Jan", "new"}, fake.tabs["legacy"][2])
	})

	t.Run("Should write a header into an existing empty sheet", func(t *testing.T) {
		store, fake := newTestStore(t)

		_, _ = fake.AddSheet(ctx, "empty", 10, 10)

		require.NoError(t, store.Updates().Upsert(ctx, "empty", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "hi"}),
		}))

		assert.Equal(t, [][]string{{"DATE", "ANA"}, {"13 Jan", "hi"}}, fake.tabs["empty"])
	})

	t.Run("Should add columns when a new participant falls outside the grid", func(t *testing.T) {
		store, fake := newTestStore(t)

		_, _ = fake.AddSheet(ctx, "full", 10, 26)
		header := []string{"DATE"}
		for i := 1; i < 26; i++ {
			header = append(header, fmt.Sprintf("P%02d", i))
		}
		fake.tabs["full"] = [][]string{header}

		err := store.Updates().Upsert(ctx, "full", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Zed": "late joiner"}),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, fake.calls["AppendDimension"])
		assert.Equal(t, int64(27), fake.grids["full"][1])
		assert.Equal(t, "ZED", fake.tabs["full"][0][26])
		assert.Equal(t, "late joiner", fake.tabs["full"][1][26])
	})

	t.Run("Should add rows when a new day falls outside the grid", func(t *testing.T) {
		store, fake := newTestStore(t)

		_, _ = fake.AddSheet(ctx, "short", 2, 5)
		fake.tabs["short"] = [][]string{{"DATE", "ANA"}, {"12 Jan", "old"}}

		require.NoError(t, store.Updates().Upsert(ctx, "short", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "mon"}),
		}))
		require.NoError(t, store.Updates().Upsert(ctx, "short", []entity.DailyUpdate{
			day("14 Jan", map[string]string{"Ana": "tue"}),
		}))

		assert.Equal(t, int64(4), fake.grids["short"][0])
		assert.Equal(t, []string{"14 Jan", "tue"}, fake.tabs["short"][3])
		assert.Equal(t, 2, fake.calls["AppendDimension"])
	})

	t.Run("Should match participants whatever their surrounding spaces", func(t *testing.T) {
		store, fake := newTestStore(t)

		require.NoError(t, store.Updates().Upsert(ctx, "g", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana Lima": "mon"}),
		}))
		require.NoError(t, store.Updates().Upsert(ctx, "g", []entity.DailyUpdate{
			day("14 Jan", map[string]string{" Ana Lima  ": "tue"}),
		}))

		assert.Equal(t, []string{"DATE", "ANA LIMA"}, fake.tabs["g"][0])
		assert.Equal(t, []string{"14 Jan", "tue"}, fake.tabs["g"][2])
	})

	t.Run("Should surface write failures", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.writeErr = errors.New("quota exceeded")

		err := store.Updates().Upsert(ctx, "g", []entity.DailyUpdate{
			day("13 Jan", map[string]string{"Ana": "hi"}),
		})

		require.Error(t, err)
	})

	t.Run("Should do nothing without days", func(t *testing.T) {
		store, fake := newTestStore(t)

		require.NoError(t, store.Updates().Upsert(ctx, "g", nil))
		assert.Empty(t, fake.calls)
	})
}

func TestReminderRepo(t *testing.T) {
	ctx := context.Background()
	sentAt := time.Date(2025, 1, 13, 19, 0, 5, 0, time.UTC)

	t.Run("Should create the log with a header and read entries back", func(t *testing.T) {
		store, fake := newTestStore(t)

		require.NoError(t, store.Reminders().Record(ctx, entity.ReminderLogEntry{
			Date: "2025-01-13", Group: "final-year", Username: "Ana@Example.com", SentAt: sentAt,
		}))
		require.NoError(t, store.Reminders().Record(ctx, entity.ReminderLogEntry{
			Date: "2025-01-13", Group: "other", Username: "bob@example.com", SentAt: sentAt,
		}))
		require.NoError(t, store.Reminders().Record(ctx, entity.ReminderLogEntry{
			Date: "2025-01-12", Group: "final-year", Username: "cy@example.com", SentAt: sentAt,
		}))

		assert.Equal(t, []string{"DATE", "BATCH", "USERNAME", "TIMESTAMP"}, fake.tabs["dm_state"][0])
		assert.Equal(t, []string{"2025-01-13", "final-year", "ana@example.com", "2025-01-13T19:00:05Z"}, fake.tabs["dm_state"][1])

		reminded, err := store.Reminders().RemindedOn(ctx, "2025-01-13", "final-year")

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"ana@example.com": true}, reminded)
	})

	t.Run("Should return an empty set for a fresh log", func(t *testing.T) {
		store, _ := newTestStore(t)

		reminded, err := store.Reminders().RemindedOn(ctx, "2025-01-13", "final-year")

		require.NoError(t, err)
		assert.Empty(t, reminded)
	})

	t.Run("Should append, never overwrite", func(t *testing.T) {
		store, fake := newTestStore(t)
		entry := entity.ReminderLogEntry{Date: "2025-01-13", Group: "g", Username: "ana", SentAt: sentAt}

		require.NoError(t, store.Reminders().Record(ctx, entry))
		require.NoError(t, store.Reminders().Record(ctx, entry))

		assert.Len(t, fake.tabs["dm_state"], 3)
	})
}
