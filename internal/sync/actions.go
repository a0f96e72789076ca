package sync

import (
	"context"
	"time"

	"github.com/daniloc96/member-roster-sync/internal/interfaces"
	"github.com/daniloc96/member-roster-sync/internal/models"
	"github.com/sirupsen/logrus"
)

// ExecuteRow performs the record write planned in outcome unless dry-run is
// enabled. Failures are recorded on the outcome rather than returned.
func ExecuteRow(ctx context.Context, store interfaces.RecordStore, row models.MemberRow, outcome *models.RowOutcome, dryRun bool, logger *logrus.Entry) {
	if dryRun {
		outcome.Executed = false
		if outcome.Action == models.RowCreate {
			outcome.RecordID = pendingRecordID(row)
		}
		logger.WithFields(outcome.LogFields()).Info("🔍 [dry run] planned record write")
		return
	}

	switch outcome.Action {
	case models.RowUpdate:
		if err := store.UpdateRecord(ctx, outcome.RecordID, row); err != nil {
			markFailed(outcome, err)
			logger.WithError(err).WithFields(outcome.LogFields()).Warn("record update failed")
			return
		}
		logger.WithFields(outcome.LogFields()).Info("🔄 Updated record")
	case models.RowCreate:
		recordID, err := store.CreateRecord(ctx, row)
		if err != nil {
			markFailed(outcome, err)
			logger.WithError(err).WithFields(outcome.LogFields()).Warn("record create failed")
			return
		}
		outcome.RecordID = recordID
		logger.WithFields(outcome.LogFields()).Info("➕ Created record")
	default:
		return
	}

	outcome.Executed = true
	t := time.Now()
	outcome.Timestamp = &t
}

func markFailed(outcome *models.RowOutcome, err error) {
	errMsg := err.Error()
	outcome.Error = &errMsg
	outcome.Executed = false
}
