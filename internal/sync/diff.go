package sync

import (
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// PlanRow decides what to do with one row given the current index.
func PlanRow(index models.MemberIndex, row models.MemberRow) models.RowOutcome {
	outcome := models.RowOutcome{
		Line:     row.Line,
		MemberID: row.MemberID,
		Name:     row.Name,
	}

	if !row.IsActionable() {
		outcome.Action = models.RowSkip
		outcome.Reason = row.SkipReason()
		return outcome
	}

	if recordID, ok := index.Lookup(row.MemberID); ok {
		outcome.Action = models.RowUpdate
		outcome.RecordID = recordID
		outcome.Reason = "member already in record store"
		return outcome
	}

	outcome.Action = models.RowCreate
	outcome.Reason = "member missing from record store"
	return outcome
}

// pendingRecordID stands in for the id of a record a dry run would create.
func pendingRecordID(row models.MemberRow) string {
	return "pending:" + row.MemberID
}
