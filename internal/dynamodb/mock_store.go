package dynamodb

import (
	"context"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// MockStore implements RunStore for testing.
type MockStore struct {
	SaveRunFunc  func(ctx context.Context, run models.RunRecord) error
	ListRunsFunc func(ctx context.Context, databaseID string, limit int) ([]models.RunRecord, error)

	// Track calls for assertions.
	SavedRuns []models.RunRecord
}

func (m *MockStore) SaveRun(ctx context.Context, run models.RunRecord) error {
	m.SavedRuns = append(m.SavedRuns, run)
	if m.SaveRunFunc != nil {
		return m.SaveRunFunc(ctx, run)
	}
	return nil
}

func (m *MockStore) ListRuns(ctx context.Context, databaseID string, limit int) ([]models.RunRecord, error) {
	if m.ListRunsFunc != nil {
		return m.ListRunsFunc(ctx, databaseID, limit)
	}
	return m.SavedRuns, nil
}
