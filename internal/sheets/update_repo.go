package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/update-tracker-bot/internal/domain"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

type updateRepo struct {
	store *Store
}

// Upsert writes the given days into the group's tab. The first column holds
// the date label, the header row holds participants uppercased; unknown
// participants get a new column and every written cell is overwritten.
func (r *updateRepo) Upsert(ctx context.Context, group string, days []entity.DailyUpdate) error {
	if len(days) == 0 {
		return nil
	}

	api := r.store.api
	log := r.store.log.With("group", group)

	tab, err := r.store.ensureSheet(ctx, group, matrixRows, matrixCols, func(sheetID int64) error {
		if err := api.WriteCells(ctx, group, []cell{{Row: 1, Col: 1, Value: domain.DateHeader}}); err != nil {
			return err
		}
		return api.BoldRow(ctx, sheetID, 1, 1)
	})
	if err != nil {
		return fmt.Errorf("failed to open sheet for %s: %w", group, err)
	}

	rows, err := api.Values(ctx, group)
	if err != nil {
		return err
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	var cells []cell
	switch {
	case len(header) == 0:
		header = []string{domain.DateHeader}
		cells = append(cells, cell{Row: 1, Col: 1, Value: domain.DateHeader})
	case !strings.EqualFold(header[0], domain.DateHeader):
		// Keep existing participant columns and put the date key back in front
		if err := api.InsertColumn(ctx, tab.ID, 0); err != nil {
			return err
		}
		tab.Cols++
		header = append([]string{domain.DateHeader}, header...)
		for i := range rows {
			rows[i] = append([]string{""}, rows[i]...)
		}
		cells = append(cells, cell{Row: 1, Col: 1, Value: domain.DateHeader})
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := entity.ParticipantKey(h)
		if _, ok := columns[key]; !ok && key != "" {
			columns[key] = i + 1
		}
	}

	for _, participant := range participants(days) {
		key := entity.ParticipantKey(participant)
		if _, ok := columns[key]; ok {
			continue
		}
		header = append(header, key)
		columns[key] = len(header)
		cells = append(cells, cell{Row: 1, Col: len(header), Value: key})
		log.Infof("Added new user to header: %s", participant)
	}

	dateRows := make(map[string]int, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if _, ok := dateRows[row[0]]; !ok {
			dateRows[row[0]] = i + 1
		}
	}
	lastRow := len(rows)
	if lastRow == 0 {
		lastRow = 1
	}

	for _, day := range days {
		row, ok := dateRows[day.Label]
		if !ok {
			lastRow++
			row = lastRow
			dateRows[day.Label] = row
			cells = append(cells, cell{Row: row, Col: 1, Value: day.Label})
		}

		names := make([]string, 0, len(day.Entries))
		for participant := range day.Entries {
			names = append(names, participant)
		}
		sort.Strings(names)

		for _, participant := range names {
			col := columns[entity.ParticipantKey(participant)]
			cells = append(cells, cell{Row: row, Col: col, Value: day.Entries[participant]})
			log.Debugf("✓ %s [%s] (row %d, col %d)", participant, group, row, col)
		}
	}

	var maxRow, maxCol int
	for _, c := range cells {
		maxRow = max(maxRow, c.Row)
		maxCol = max(maxCol, c.Col)
	}
	if err := r.store.fit(ctx, group, tab, int64(maxRow), int64(maxCol)); err != nil {
		return fmt.Errorf("failed to grow sheet for %s: %w", group, err)
	}

	if err := api.WriteCells(ctx, group, cells); err != nil {
		return err
	}

	if err := api.BoldRow(ctx, tab.ID, 1, int64(len(header))); err != nil {
		return err
	}

	log.Infof("Updated sheet for batch %s with %d days", group, len(days))
	return nil
}

// participants returns every participant of the given days, sorted.
func participants(days []entity.DailyUpdate) []string {
	seen := make(map[string]bool)
	var names []string
	for _, day := range days {
		for participant := range day.Entries {
			key := entity.ParticipantKey(participant)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, participant)
		}
	}
	sort.Strings(names)
	return names
}
