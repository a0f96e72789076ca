package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/interfaces"
	applog "github.com/daniloc96/member-roster-sync/internal/log"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// Connector builds the backends for one run from its credentials.
type Connector interface {
	Connect(ctx context.Context, creds *models.Credentials) (Backends, error)
}

// ConnectorFunc adapts a function to Connector.
type ConnectorFunc func(ctx context.Context, creds *models.Credentials) (Backends, error)

// Connect calls f.
func (f ConnectorFunc) Connect(ctx context.Context, creds *models.Credentials) (Backends, error) {
	return f(ctx, creds)
}

var _ interfaces.SyncEngine = (*Engine)(nil)

// Engine orchestrates a sync run: credentials, reconciliation, and reporting.
// It does not serialise runs; overlapping triggers run independently.
type Engine struct {
	loader    interfaces.CredentialsLoader
	connector Connector
	cfg       *config.Config
	runs      interfaces.RunStore
	metrics   interfaces.MetricsEmitter
	now       func() time.Time
	newRunID  func() string
}

// NewEngine creates a sync engine.
func NewEngine(loader interfaces.CredentialsLoader, connector Connector, cfg *config.Config) *Engine {
	return &Engine{
		loader:    loader,
		connector: connector,
		cfg:       cfg,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}
}

// SetRunStore enables run history. If nil, runs are not recorded.
func (e *Engine) SetRunStore(store interfaces.RunStore) {
	e.runs = store
}

// SetMetrics enables metric publication. If nil, no metrics are sent.
func (e *Engine) SetMetrics(emitter interfaces.MetricsEmitter) {
	e.metrics = emitter
}

// Sync performs one synchronization run.
func (e *Engine) Sync(ctx context.Context, trigger models.Trigger) (*models.SyncResult, error) {
	start := e.now()
	runID := e.newRunID()
	logger := applog.ForRun(runID, trigger)
	logger.WithField("dry_run", e.cfg.Sync.DryRun).Info("🚀 Sync started")

	result, err := e.run(ctx, logger)
	if err != nil {
		logger.WithError(err).Error("sync failed")
		e.record(ctx, logger, runID, trigger, start, nil, err)
		return nil, err
	}

	result.RunID = runID
	result.Trigger = trigger
	result.StartTime = start
	result.EndTime = e.now()
	result.DurationMs = result.EndTime.Sub(start).Milliseconds()

	logger.WithFields(logrus.Fields{
		"dry_run":     result.DryRun,
		"duration_ms": result.DurationMs,
		"errors":      len(result.Errors),
	}).Info(result.String())

	e.record(ctx, logger, runID, trigger, start, result, nil)
	return result, nil
}

func (e *Engine) run(ctx context.Context, logger *logrus.Entry) (*models.SyncResult, error) {
	creds, err := e.loader.Load(ctx)
	if err != nil {
		return nil, &CredentialsError{Err: err}
	}
	backends, err := e.connector.Connect(ctx, creds)
	if err != nil {
		return nil, &CredentialsError{Err: err}
	}

	reconciler := NewReconciler(backends, e.cfg.Sync.DryRun, logger)
	return reconciler.Reconcile(ctx)
}

// record publishes metrics and run history. Failures are logged only.
func (e *Engine) record(ctx context.Context, logger *logrus.Entry, runID string, trigger models.Trigger, start time.Time, result *models.SyncResult, runErr error) {
	if e.metrics != nil && result != nil {
		if err := e.metrics.EmitResult(ctx, result); err != nil {
			logger.WithError(err).Warn("⚠ failed to publish metrics")
		}
	}
	if e.runs != nil {
		run := models.NewRunRecord(e.cfg.Notion.DatabaseID, runID, trigger, start, result, runErr, e.cfg.DynamoDB.TTLDays)
		if err := e.runs.SaveRun(ctx, run); err != nil {
			logger.WithError(err).Warn("⚠ failed to save run history")
		}
	}
}
