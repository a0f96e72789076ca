package google

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range is a parsed A1 range such as "Members!A7:C".
type Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	// EndRow is 0 when the range is open-ended.
	EndRow int
}

// ParseRange parses an A1-notation range with an optional sheet prefix.
// Columns are 1-based; an omitted start row means row 1.
func ParseRange(a1 string) (Range, error) {
	var r Range
	cells := a1
	if i := strings.LastIndex(a1, "!"); i >= 0 {
		r.Sheet = strings.Trim(a1[:i], "'")
		cells = a1[i+1:]
	}
	if cells == "" {
		return r, fmt.Errorf("range %q has no cells", a1)
	}
	start, end, hasEnd := strings.Cut(cells, ":")

	var err error
	r.StartCol, r.StartRow, err = parseCell(start)
	if err != nil {
		return r, fmt.Errorf("range %q: %w", a1, err)
	}
	if r.StartRow == 0 {
		r.StartRow = 1
	}
	if !hasEnd {
		r.EndCol, r.EndRow = r.StartCol, r.StartRow
		return r, nil
	}
	r.EndCol, r.EndRow, err = parseCell(end)
	if err != nil {
		return r, fmt.Errorf("range %q: %w", a1, err)
	}
	if r.EndCol < r.StartCol || (r.EndRow != 0 && r.EndRow < r.StartRow) {
		return r, fmt.Errorf("range %q ends before it starts", a1)
	}
	return r, nil
}

// parseCell accepts a full cell ("C12") or a bare column ("C"), in which
// case row is 0.
func parseCell(ref string) (col int, row int, err error) {
	ref = strings.TrimSpace(ref)
	if strings.ContainsAny(ref, "0123456789") {
		return excelize.CellNameToCoordinates(ref)
	}
	col, err = excelize.ColumnNameToNumber(ref)
	return col, 0, err
}
