package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/daniloc96/member-roster-sync/internal/google"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// Source reads member rows from a local .xlsx workbook using the same
// A1 range the spreadsheet source is configured with. Ranges are parsed by
// google.ParseRange so both sources agree on line numbers.
type Source struct {
	path      string
	sheet     string
	startRow  int
	endRow    int
	startCol  int
	endCol    int
	readRange string
}

// NewSource creates a workbook row source for path and readRange.
func NewSource(path string, readRange string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("workbook path is required")
	}
	r, err := google.ParseRange(readRange)
	if err != nil {
		return nil, err
	}
	return &Source{
		path:      path,
		sheet:     r.Sheet,
		startRow:  r.StartRow,
		endRow:    r.EndRow,
		startCol:  r.StartCol,
		endCol:    r.EndCol,
		readRange: readRange,
	}, nil
}

// FetchRows returns the rows inside the configured range. Trailing empty rows
// are dropped, matching the Sheets API.
func (s *Source) FetchRows(ctx context.Context) ([]models.MemberRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.readRange, err)
	}

	var rows []models.MemberRow
	lastNonEmpty := -1
	for line := s.startRow; line <= len(all); line++ {
		if s.endRow > 0 && line > s.endRow {
			break
		}
		cells := clip(all[line-1], s.startCol, s.endCol)
		rows = append(rows, models.MemberRowFromStrings(line, cells))
		if len(cells) > 0 {
			lastNonEmpty = len(rows) - 1
		}
	}
	return rows[:lastNonEmpty+1], nil
}

// clip returns the cells between 1-based columns from and to, without
// trailing empty cells.
func clip(row []string, from int, to int) []string {
	if from > len(row) {
		return nil
	}
	if to > len(row) {
		to = len(row)
	}
	cells := row[from-1 : to]
	for len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
