package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// cell is a 1-based (row, column) coordinate with the value to write there.
type cell struct {
	Row   int
	Col   int
	Value string
}

// sheetInfo is a tab id and its current grid size.
type sheetInfo struct {
	ID   int64
	Rows int64
	Cols int64
}

// sheetAPI is the slice of the spreadsheet service the stores need.
type sheetAPI interface {
	// Sheet looks a tab up by title.
	Sheet(ctx context.Context, title string) (sheetInfo, bool, error)
	AddSheet(ctx context.Context, title string, rows, cols int64) (sheetInfo, error)
	// AppendDimension adds length empty rows ("ROWS") or columns ("COLUMNS")
	// at the end of the grid.
	AppendDimension(ctx context.Context, sheetID int64, dimension string, length int64) error
	// Values returns every non-empty row of a tab.
	Values(ctx context.Context, title string) ([][]string, error)
	WriteCells(ctx context.Context, title string, cells []cell) error
	AppendRow(ctx context.Context, title string, row []string) error
	InsertColumn(ctx context.Context, sheetID int64, index int64) error
	BoldRow(ctx context.Context, sheetID int64, row, cols int64) error
}

type googleSheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

func newGoogleSheets(svc *sheets.Service, spreadsheetID string) *googleSheets {
	return &googleSheets{svc: svc, spreadsheetID: spreadsheetID}
}

func (g *googleSheets) Sheet(ctx context.Context, title string) (sheetInfo, bool, error) {
	ss, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return sheetInfo{}, false, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return infoOf(s.Properties), true, nil
		}
	}
	return sheetInfo{}, false, nil
}

func (g *googleSheets) AddSheet(ctx context.Context, title string, rows, cols int64) (sheetInfo, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    rows,
						ColumnCount: cols,
					},
				},
			},
		}},
	}

	resp, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return sheetInfo{}, fmt.Errorf("failed to add sheet %s: %w", title, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return sheetInfo{}, fmt.Errorf("add sheet %s: empty reply", title)
	}

	return infoOf(resp.Replies[0].AddSheet.Properties), nil
}

func (g *googleSheets) AppendDimension(ctx context.Context, sheetID int64, dimension string, length int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AppendDimension: &sheets.AppendDimensionRequest{
				SheetId:         sheetID,
				Dimension:       dimension,
				Length:          length,
				ForceSendFields: []string{"SheetId"},
			},
		}},
	}

	if _, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to append %d %s: %w", length, strings.ToLower(dimension), err)
	}
	return nil
}

func infoOf(p *sheets.SheetProperties) sheetInfo {
	info := sheetInfo{ID: p.SheetId}
	if p.GridProperties != nil {
		info.Rows = p.GridProperties.RowCount
		info.Cols = p.GridProperties.ColumnCount
	}
	return info
}

func (g *googleSheets) Values(ctx context.Context, title string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, quoteTitle(title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", title, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, v := range raw {
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (g *googleSheets) WriteCells(ctx context.Context, title string, cells []cell) error {
	if len(cells) == 0 {
		return nil
	}

	data := make([]*sheets.ValueRange, 0, len(cells))
	for _, c := range cells {
		data = append(data, &sheets.ValueRange{
			Range:  cellRange(title, c.Row, c.Col),
			Values: [][]interface{}{{c.Value}},
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	if _, err := g.svc.Spreadsheets.Values.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write %d cells to %s: %w", len(cells), title, err)
	}
	return nil
}

func (g *googleSheets) AppendRow(ctx context.Context, title string, row []string) error {
	values := make([]interface{}, 0, len(row))
	for _, v := range row {
		values = append(values, v)
	}

	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, quoteTitle(title), &sheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", title, err)
	}
	return nil
}

func (g *googleSheets) InsertColumn(ctx context.Context, sheetID int64, index int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:         sheetID,
					Dimension:       "COLUMNS",
					StartIndex:      index,
					EndIndex:        index + 1,
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
			},
		}},
	}

	if _, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert column: %w", err)
	}
	return nil
}

func (g *googleSheets) BoldRow(ctx context.Context, sheetID int64, row, cols int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    row - 1,
					EndRowIndex:      row,
					StartColumnIndex: 0,
					EndColumnIndex:   cols,
					ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true},
					},
				},
				Fields: "userEnteredFormat.textFormat.bold",
			},
		}},
	}

	if _, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to format header: %w", err)
	}
	return nil
}
