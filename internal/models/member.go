package models

import (
	"fmt"
	"strings"
	"unicode"
)

// MissingMemberID marks a row whose id cell is empty or explicitly not assigned.
const MissingMemberID = "N/A"

// DefaultGivenName is used for contacts whose name has no leading word.
const DefaultGivenName = "Member"

// MemberRow is one (name, phone, id) triple read from the roster sheet.
type MemberRow struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	MemberID string `json:"member_id"`
	Line     int    `json:"line,omitempty"`
}

// MemberRowFromCells builds a row from positional cells (name, phone, id).
// Cells are trimmed; a missing id becomes MissingMemberID.
func MemberRowFromCells(line int, cells []interface{}) MemberRow {
	row := MemberRow{
		Name:     cellString(cells, 0),
		Phone:    cellString(cells, 1),
		MemberID: cellString(cells, 2),
		Line:     line,
	}
	if row.MemberID == "" {
		row.MemberID = MissingMemberID
	}
	return row
}

// MemberRowFromStrings is MemberRowFromCells for sources that already yield strings.
func MemberRowFromStrings(line int, cells []string) MemberRow {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return MemberRowFromCells(line, values)
}

func cellString(cells []interface{}, idx int) string {
	if idx >= len(cells) || cells[idx] == nil {
		return ""
	}
	switch v := cells[idx].(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// IsActionable reports whether the row carries enough data to be synced.
func (r MemberRow) IsActionable() bool {
	return r.Name != "" && r.Phone != "" && r.MemberID != "" && r.MemberID != MissingMemberID
}

// SkipReason explains why a row is not actionable. Empty for actionable rows.
func (r MemberRow) SkipReason() string {
	switch {
	case r.Name == "":
		return "missing name"
	case r.Phone == "":
		return "missing phone"
	case r.MemberID == "" || r.MemberID == MissingMemberID:
		return "missing member id"
	}
	return ""
}

// Contact is the contacts-directory projection of a member row.
type Contact struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Phone      string `json:"phone"`
	MemberID   string `json:"member_id"`
}

// ContactFromRow splits the row name on its first whitespace into given and family names.
func ContactFromRow(row MemberRow) Contact {
	name := strings.TrimSpace(row.Name)
	given, family := name, ""
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		given, family = name[:i], strings.TrimSpace(name[i:])
	}
	if given == "" {
		given = DefaultGivenName
	}
	return Contact{
		GivenName:  given,
		FamilyName: family,
		Phone:      row.Phone,
		MemberID:   row.MemberID,
	}
}
