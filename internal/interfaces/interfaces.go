package interfaces

import (
	"context"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// RowSource reads the member roster from the source spreadsheet.
type RowSource interface {
	FetchRows(ctx context.Context) ([]models.MemberRow, error)
}

// RecordStore defines operations needed from the record store.
type RecordStore interface {
	// QueryRecords returns one page of existing records starting at cursor.
	// An empty cursor requests the first page.
	QueryRecords(ctx context.Context, cursor string) (*models.RecordPage, error)

	// UpdateRecord overwrites the member fields of an existing record.
	UpdateRecord(ctx context.Context, recordID string, row models.MemberRow) error

	// CreateRecord adds a record for the row and returns its id.
	CreateRecord(ctx context.Context, row models.MemberRow) (string, error)
}

// ContactsDirectory defines operations needed from the contacts directory.
type ContactsDirectory interface {
	CreateContact(ctx context.Context, contact models.Contact) error
}

// CredentialsLoader resolves the credentials for one sync run.
type CredentialsLoader interface {
	Load(ctx context.Context) (*models.Credentials, error)
}

// SyncEngine defines sync orchestration.
type SyncEngine interface {
	Sync(ctx context.Context, trigger models.Trigger) (*models.SyncResult, error)
}

// RunStore persists sync run summaries.
type RunStore interface {
	// SaveRun stores the summary of a finished run.
	SaveRun(ctx context.Context, run models.RunRecord) error

	// ListRuns returns the most recent runs for a database, newest first.
	ListRuns(ctx context.Context, databaseID string, limit int) ([]models.RunRecord, error)
}

// MetricsEmitter publishes run counters.
type MetricsEmitter interface {
	EmitResult(ctx context.Context, result *models.SyncResult) error
}
