package models

import (
	"fmt"
	"time"
)

// Trigger identifies what started a sync run.
type Trigger string

const (
	TriggerCLI      Trigger = "cli"
	TriggerHTTP     Trigger = "http"
	TriggerSchedule Trigger = "schedule"
	TriggerLambda   Trigger = "lambda"
)

// SyncResult contains the outcome of a sync run.
type SyncResult struct {
	RunID          string       `json:"run_id"`
	Trigger        Trigger      `json:"trigger"`
	DryRun         bool         `json:"dry_run"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        time.Time    `json:"end_time"`
	DurationMs     int64        `json:"duration_ms"`
	TotalRows      int          `json:"total_rows"`
	Created        int          `json:"created"`
	Updated        int          `json:"updated"`
	Skipped        int          `json:"skipped"`
	Failed         int          `json:"failed"`
	ContactsAdded  int          `json:"contacts_added"`
	ContactsFailed int          `json:"contacts_failed"`
	Outcomes       []RowOutcome `json:"outcomes,omitempty"`
	Errors         []string     `json:"errors,omitempty"`
}

// IsSuccess returns true if every actionable row was written.
func (r *SyncResult) IsSuccess() bool {
	return len(r.Errors) == 0 && r.Failed == 0
}

// Message renders the plain-text reply returned to triggers.
func (r *SyncResult) Message() string {
	if r.TotalRows == 0 {
		return "SYNC DONE — No members"
	}
	msg := fmt.Sprintf("SYNC DONE! %d members processed (Created: %d | Updated: %d)", r.TotalRows, r.Created, r.Updated)
	if r.DryRun {
		msg = "[DRY RUN] " + msg
	}
	return msg
}

// String returns a human-readable summary line.
func (r *SyncResult) String() string {
	return fmt.Sprintf(
		"sync completed — Rows: %d, Created: %d, Updated: %d, Skipped: %d, Failed: %d, "+
			"Contacts: %d added / %d failed",
		r.TotalRows, r.Created, r.Updated, r.Skipped, r.Failed,
		r.ContactsAdded, r.ContactsFailed,
	)
}

// ErrorMessage renders the plain-text reply for a fatal failure.
func ErrorMessage(err error) string {
	return "ERROR: " + err.Error()
}
