package sheets

import (
	"context"
	"errors"
	"fmt"
)

// fakeSheets is an in-memory spreadsheet with the trimming behaviour of the
// real Values API: trailing empty rows and cells are not returned. Cell writes
// outside a tab's grid fail like they do on the real service.
type fakeSheets struct {
	tabs     map[string][][]string
	ids      map[string]int64
	grids    map[string][2]int64
	bold     map[string]int64
	nextID   int64
	writeErr error
	calls    map[string]int
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{
		tabs:  make(map[string][][]string),
		ids:   make(map[string]int64),
		grids: make(map[string][2]int64),
		bold:  make(map[string]int64),
		calls: make(map[string]int),
	}
}

func (f *fakeSheets) titleOf(sheetID int64) string {
	for title, id := range f.ids {
		if id == sheetID {
			return title
		}
	}
	return ""
}

func (f *fakeSheets) info(title string) sheetInfo {
	grid := f.grids[title]
	return sheetInfo{ID: f.ids[title], Rows: grid[0], Cols: grid[1]}
}

func (f *fakeSheets) Sheet(ctx context.Context, title string) (sheetInfo, bool, error) {
	f.calls["Sheet"]++
	if _, ok := f.ids[title]; !ok {
		return sheetInfo{}, false, nil
	}
	return f.info(title), true, nil
}

func (f *fakeSheets) AddSheet(ctx context.Context, title string, rows, cols int64) (sheetInfo, error) {
	f.calls["AddSheet"]++
	if _, ok := f.ids[title]; ok {
		return sheetInfo{}, fmt.Errorf("sheet %s already exists", title)
	}
	f.ids[title] = f.nextID
	f.nextID++
	f.grids[title] = [2]int64{rows, cols}
	f.tabs[title] = nil
	return f.info(title), nil
}

func (f *fakeSheets) AppendDimension(ctx context.Context, sheetID int64, dimension string, length int64) error {
	f.calls["AppendDimension"]++
	title := f.titleOf(sheetID)
	grid := f.grids[title]
	switch dimension {
	case "ROWS":
		grid[0] += length
	case "COLUMNS":
		grid[1] += length
	default:
		return fmt.Errorf("unknown dimension %s", dimension)
	}
	f.grids[title] = grid
	return nil
}

func (f *fakeSheets) Values(ctx context.Context, title string) ([][]string, error) {
	f.calls["Values"]++
	grid, ok := f.tabs[title]
	if !ok {
		return nil, errors.New("unable to parse range")
	}

	var out [][]string
	for _, row := range grid {
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		out = append(out, append([]string(nil), row[:end]...))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *fakeSheets) set(title string, row, col int, value string) {
	grid := f.tabs[title]
	for len(grid) < row {
		grid = append(grid, nil)
	}
	for len(grid[row-1]) < col {
		grid[row-1] = append(grid[row-1], "")
	}
	grid[row-1][col-1] = value
	f.tabs[title] = grid
}

func (f *fakeSheets) WriteCells(ctx context.Context, title string, cells []cell) error {
	f.calls["WriteCells"]++
	if f.writeErr != nil {
		return f.writeErr
	}
	grid := f.grids[title]
	for _, c := range cells {
		if int64(c.Row) > grid[0] || int64(c.Col) > grid[1] {
			return fmt.Errorf("range %s exceeds grid limits (%d rows, %d columns)", cellRange(title, c.Row, c.Col), grid[0], grid[1])
		}
	}
	for _, c := range cells {
		f.set(title, c.Row, c.Col, c.Value)
	}
	return nil
}

func (f *fakeSheets) AppendRow(ctx context.Context, title string, row []string) error {
	f.calls["AppendRow"]++
	if f.writeErr != nil {
		return f.writeErr
	}
	values, _ := f.Values(ctx, title)
	next := len(values) + 1
	// INSERT_ROWS grows the grid
	grid := f.grids[title]
	grid[0] = max(grid[0], int64(next))
	grid[1] = max(grid[1], int64(len(row)))
	f.grids[title] = grid
	for i, v := range row {
		f.set(title, next, i+1, v)
	}
	return nil
}

func (f *fakeSheets) InsertColumn(ctx context.Context, sheetID int64, index int64) error {
	f.calls["InsertColumn"]++
	title := f.titleOf(sheetID)
	grid := f.tabs[title]
	for i, row := range grid {
		grid[i] = append(append(append([]string(nil), row[:index]...), ""), row[index:]...)
	}
	size := f.grids[title]
	size[1]++
	f.grids[title] = size
	return nil
}

func (f *fakeSheets) BoldRow(ctx context.Context, sheetID int64, row, cols int64) error {
	f.calls["BoldRow"]++
	f.bold[f.titleOf(sheetID)] = cols
	return nil
}
