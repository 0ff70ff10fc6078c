package sheets

import (
	"context"
	"fmt"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Tab sizes used when a sheet has to be created
const (
	matrixRows = 1000
	matrixCols = 50
	logRows    = 1000
	logCols    = 4
)

// Store keeps the tracker state in a Google spreadsheet: one tab per group
// for the content matrix and one tab for the reminder log.
type Store struct {
	api       sheetAPI
	tabs      map[string]*sheetInfo
	updates   *updateRepo
	reminders *reminderRepo
	log       *zap.SugaredLogger
}

// New authenticates with a service account credential blob and opens the spreadsheet.
func New(ctx context.Context, spreadsheetID, credentialsJSON string, log *zap.SugaredLogger) (*Store, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Google credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return newStore(newGoogleSheets(svc, spreadsheetID), log), nil
}

func newStore(api sheetAPI, log *zap.SugaredLogger) *Store {
	s := &Store{
		api:  api,
		tabs: make(map[string]*sheetInfo),
		log:  log,
	}
	s.updates = &updateRepo{store: s}
	s.reminders = &reminderRepo{store: s}
	return s
}

var _ contract.DataManager = (*Store)(nil)

// Updates returns the content matrix repository
func (s *Store) Updates() contract.UpdateRepo {
	return s.updates
}

// Reminders returns the reminder log repository
func (s *Store) Reminders() contract.ReminderRepo {
	return s.reminders
}

// ensureSheet returns the tab with the given title, creating it and calling
// init on it when it does not exist yet.
func (s *Store) ensureSheet(ctx context.Context, title string, rows, cols int64, init func(sheetID int64) error) (*sheetInfo, error) {
	if info, ok := s.tabs[title]; ok {
		return info, nil
	}

	info, found, err := s.api.Sheet(ctx, title)
	if err != nil {
		return nil, err
	}

	if !found {
		s.log.Infof("Creating worksheet: %s", title)
		info, err = s.api.AddSheet(ctx, title, rows, cols)
		if err != nil {
			return nil, err
		}
		if init != nil {
			if err := init(info.ID); err != nil {
				return nil, err
			}
		}
	}

	s.tabs[title] = &info
	return &info, nil
}

// fit grows the tab grid so that it holds at least rows x cols cells.
func (s *Store) fit(ctx context.Context, title string, info *sheetInfo, rows, cols int64) error {
	if rows > info.Rows {
		if err := s.api.AppendDimension(ctx, info.ID, "ROWS", rows-info.Rows); err != nil {
			return err
		}
		s.log.Debugf("Grew %s to %d rows", title, rows)
		info.Rows = rows
	}
	if cols > info.Cols {
		if err := s.api.AppendDimension(ctx, info.ID, "COLUMNS", cols-info.Cols); err != nil {
			return err
		}
		s.log.Debugf("Grew %s to %d columns", title, cols)
		info.Cols = cols
	}
	return nil
}
