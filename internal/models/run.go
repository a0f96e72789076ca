package models

import (
	"time"
)

// RunStatus is the terminal state of a sync run.
type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunPartial   RunStatus = "partial"
	RunFailed    RunStatus = "failed"
)

// RunRecord is the persisted summary of one sync run in the run history table.
type RunRecord struct {
	PK             string    `dynamodbav:"pk"`
	SK             string    `dynamodbav:"sk"`
	RunID          string    `dynamodbav:"run_id"`
	DatabaseID     string    `dynamodbav:"database_id"`
	Trigger        Trigger   `dynamodbav:"trigger"`
	Status         RunStatus `dynamodbav:"status"`
	DryRun         bool      `dynamodbav:"dry_run"`
	TotalRows      int       `dynamodbav:"total_rows"`
	Created        int       `dynamodbav:"created"`
	Updated        int       `dynamodbav:"updated"`
	Skipped        int       `dynamodbav:"skipped"`
	Failed         int       `dynamodbav:"failed"`
	ContactsAdded  int       `dynamodbav:"contacts_added"`
	ContactsFailed int       `dynamodbav:"contacts_failed"`
	Error          string    `dynamodbav:"error,omitempty"`
	StartedAt      time.Time `dynamodbav:"started_at"`
	FinishedAt     time.Time `dynamodbav:"finished_at"`
	TTL            int64     `dynamodbav:"ttl"`
}

// RunPartitionKey is the history partition for a record-store database.
func RunPartitionKey(databaseID string) string {
	return "DB#" + databaseID
}

// runKeyLayout keeps every fractional digit so sort keys compare lexically
// in time order.
const runKeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

func runSortKey(startedAt time.Time, runID string) string {
	return "RUN#" + startedAt.UTC().Format(runKeyLayout) + "#" + runID
}

// NewRunRecord summarises a run. result may be nil when the run failed before
// producing one; runErr is the fatal error, if any.
func NewRunRecord(databaseID string, runID string, trigger Trigger, startedAt time.Time, result *SyncResult, runErr error, ttlDays int) RunRecord {
	finished := time.Now().UTC()
	record := RunRecord{
		PK:         RunPartitionKey(databaseID),
		SK:         runSortKey(startedAt, runID),
		RunID:      runID,
		DatabaseID: databaseID,
		Trigger:    trigger,
		Status:     RunSucceeded,
		StartedAt:  startedAt.UTC(),
		FinishedAt: finished,
		TTL:        finished.AddDate(0, 0, ttlDays).Unix(),
	}
	if result != nil {
		record.DryRun = result.DryRun
		record.TotalRows = result.TotalRows
		record.Created = result.Created
		record.Updated = result.Updated
		record.Skipped = result.Skipped
		record.Failed = result.Failed
		record.ContactsAdded = result.ContactsAdded
		record.ContactsFailed = result.ContactsFailed
		if !result.EndTime.IsZero() {
			record.FinishedAt = result.EndTime.UTC()
		}
		if !result.IsSuccess() {
			record.Status = RunPartial
		}
	}
	if runErr != nil {
		record.Status = RunFailed
		record.Error = runErr.Error()
	}
	return record
}
