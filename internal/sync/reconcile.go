package sync

import (
	"context"

	"github.com/daniloc96/member-roster-sync/internal/interfaces"
	"github.com/daniloc96/member-roster-sync/internal/models"
	"github.com/sirupsen/logrus"
)

// Backends are the external systems one reconciliation talks to.
type Backends struct {
	Rows     interfaces.RowSource
	Records  interfaces.RecordStore
	Contacts interfaces.ContactsDirectory
}

// Reconciler mirrors source rows into the record store and the contacts
// directory. It depends only on its backends and holds no state between runs.
type Reconciler struct {
	rows    interfaces.RowSource
	records interfaces.RecordStore
	mirror  *ContactMirror
	dryRun  bool
	logger  *logrus.Entry
}

// NewReconciler creates a Reconciler. A nil Contacts backend disables the
// contacts mirror.
func NewReconciler(backends Backends, dryRun bool, logger *logrus.Entry) *Reconciler {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	r := &Reconciler{
		rows:    backends.Rows,
		records: backends.Records,
		dryRun:  dryRun,
		logger:  logger,
	}
	if backends.Contacts != nil {
		r.mirror = NewContactMirror(backends.Contacts)
	}
	return r
}

// Reconcile reads the roster, lists every existing record, and creates or
// updates one record per actionable row. Source and enumeration failures
// abort the run; per-row write failures are recorded and skipped over.
func (r *Reconciler) Reconcile(ctx context.Context) (*models.SyncResult, error) {
	rows, err := r.rows.FetchRows(ctx)
	if err != nil {
		return nil, &SourceFetchError{Err: err}
	}

	result := &models.SyncResult{DryRun: r.dryRun, TotalRows: len(rows)}
	if len(rows) == 0 {
		r.logger.Info("No members found.")
		return result, nil
	}
	r.logger.WithField("rows", len(rows)).Info("📋 Found members in source")

	// The index must cover every page before the first row is matched.
	pager := NewRecordPager(r.records)
	existing, err := CollectRecords(ctx, pager)
	if err != nil {
		return nil, err
	}
	index := models.BuildMemberIndex(existing)
	r.logger.WithFields(logrus.Fields{
		"records": len(existing),
		"indexed": len(index),
		"pages":   pager.Pages(),
	}).Info("🗂 Record store indexed")

	result.Outcomes = make([]models.RowOutcome, 0, len(rows))
	for _, row := range rows {
		outcome := r.reconcileRow(ctx, index, row)
		tally(result, &outcome)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

func (r *Reconciler) reconcileRow(ctx context.Context, index models.MemberIndex, row models.MemberRow) models.RowOutcome {
	outcome := PlanRow(index, row)
	if outcome.Action == models.RowSkip {
		r.logger.WithFields(outcome.LogFields()).Debug("row skipped")
		return outcome
	}

	ExecuteRow(ctx, r.records, row, &outcome, r.dryRun, r.logger)

	// Later rows with the same member id update this record instead of
	// creating another one.
	if outcome.Action == models.RowCreate && !outcome.Failed() {
		index.Set(row.MemberID, outcome.RecordID)
	}

	if !r.dryRun {
		outcome.Contact = r.mirror.Mirror(ctx, row, r.logger)
	}
	return outcome
}

func tally(result *models.SyncResult, outcome *models.RowOutcome) {
	switch {
	case outcome.Action == models.RowSkip:
		result.Skipped++
	case outcome.Failed():
		result.Failed++
		result.Errors = append(result.Errors, rowError(outcome))
	case outcome.Action == models.RowCreate:
		result.Created++
	case outcome.Action == models.RowUpdate:
		result.Updated++
	}

	if outcome.Contact.Added {
		result.ContactsAdded++
	} else if outcome.Contact.Error != nil {
		result.ContactsFailed++
	}
}

func rowError(outcome *models.RowOutcome) string {
	return string(outcome.Action) + " " + outcome.MemberID + ": " + *outcome.Error
}
