package google

import (
	"context"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// MockRowSource is a simple mock implementation of a row source.
type MockRowSource struct {
	FetchRowsFunc func(ctx context.Context) ([]models.MemberRow, error)
}

func (m *MockRowSource) FetchRows(ctx context.Context) ([]models.MemberRow, error) {
	if m.FetchRowsFunc == nil {
		return nil, nil
	}
	return m.FetchRowsFunc(ctx)
}

// MockContacts is a simple mock implementation of the contacts directory.
type MockContacts struct {
	CreateContactFunc func(ctx context.Context, contact models.Contact) error

	// Created tracks every contact passed to CreateContact.
	Created []models.Contact
}

func (m *MockContacts) CreateContact(ctx context.Context, contact models.Contact) error {
	m.Created = append(m.Created, contact)
	if m.CreateContactFunc == nil {
		return nil
	}
	return m.CreateContactFunc(ctx, contact)
}
