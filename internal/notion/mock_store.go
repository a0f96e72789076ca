package notion

import (
	"context"
	"fmt"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// MockStore implements RecordStore for testing.
type MockStore struct {
	QueryRecordsFunc func(ctx context.Context, cursor string) (*models.RecordPage, error)
	UpdateRecordFunc func(ctx context.Context, recordID string, row models.MemberRow) error
	CreateRecordFunc func(ctx context.Context, row models.MemberRow) (string, error)

	// Track calls for assertions.
	QueriedCursors []string
	Updates        []UpdateCall
	Creates        []models.MemberRow
}

// UpdateCall records a call to UpdateRecord.
type UpdateCall struct {
	RecordID string
	Row      models.MemberRow
}

func (m *MockStore) QueryRecords(ctx context.Context, cursor string) (*models.RecordPage, error) {
	m.QueriedCursors = append(m.QueriedCursors, cursor)
	if m.QueryRecordsFunc != nil {
		return m.QueryRecordsFunc(ctx, cursor)
	}
	return &models.RecordPage{}, nil
}

func (m *MockStore) UpdateRecord(ctx context.Context, recordID string, row models.MemberRow) error {
	m.Updates = append(m.Updates, UpdateCall{RecordID: recordID, Row: row})
	if m.UpdateRecordFunc != nil {
		return m.UpdateRecordFunc(ctx, recordID, row)
	}
	return nil
}

func (m *MockStore) CreateRecord(ctx context.Context, row models.MemberRow) (string, error) {
	m.Creates = append(m.Creates, row)
	if m.CreateRecordFunc != nil {
		return m.CreateRecordFunc(ctx, row)
	}
	return fmt.Sprintf("new-%d", len(m.Creates)), nil
}

// Pages returns a QueryRecordsFunc that serves the given pages in order,
// keyed by the cursor each one is requested with.
func Pages(pages map[string]*models.RecordPage) func(ctx context.Context, cursor string) (*models.RecordPage, error) {
	return func(ctx context.Context, cursor string) (*models.RecordPage, error) {
		page, ok := pages[cursor]
		if !ok {
			return nil, fmt.Errorf("unexpected cursor %q", cursor)
		}
		return page, nil
	}
}
