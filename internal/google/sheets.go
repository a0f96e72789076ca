package google

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

type valuesGetter interface {
	GetValues(ctx context.Context, spreadsheetID string, readRange string) ([][]interface{}, error)
}

// SheetsSource reads member rows from a Google Sheets range.
type SheetsSource struct {
	values        valuesGetter
	spreadsheetID string
	readRange     string
	firstLine     int
}

// NewSheetsSource creates a row source for spreadsheetID and readRange (A1 notation).
func NewSheetsSource(ctx context.Context, spreadsheetID string, readRange string, opts ...option.ClientOption) (*SheetsSource, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	parsed, err := ParseRange(readRange)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsSource{
		values:        &sheetsService{svc: svc},
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		firstLine:     parsed.StartRow,
	}, nil
}

// FetchRows returns every row in the range. An empty range yields no rows and no error.
func (s *SheetsSource) FetchRows(ctx context.Context) ([]models.MemberRow, error) {
	values, err := s.values.GetValues(ctx, s.spreadsheetID, s.readRange)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.readRange, err)
	}
	rows := make([]models.MemberRow, 0, len(values))
	for i, cells := range values {
		rows = append(rows, models.MemberRowFromCells(s.firstLine+i, cells))
	}
	return rows, nil
}

type sheetsService struct {
	svc *sheets.Service
}

func (s *sheetsService) GetValues(ctx context.Context, spreadsheetID string, readRange string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}
