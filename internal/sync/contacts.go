package sync

import (
	"context"

	"github.com/daniloc96/member-roster-sync/internal/interfaces"
	"github.com/daniloc96/member-roster-sync/internal/models"
	"github.com/sirupsen/logrus"
)

// ContactMirror copies member rows into the contacts directory. Failures are
// reported in the returned outcome and never escalate.
type ContactMirror struct {
	directory interfaces.ContactsDirectory
}

// NewContactMirror creates a mirror. A nil directory disables mirroring.
func NewContactMirror(directory interfaces.ContactsDirectory) *ContactMirror {
	return &ContactMirror{directory: directory}
}

// Mirror adds a contact for row.
func (m *ContactMirror) Mirror(ctx context.Context, row models.MemberRow, logger *logrus.Entry) (outcome models.ContactOutcome) {
	if m == nil || m.directory == nil {
		return outcome
	}
	outcome.Attempted = true

	if err := m.directory.CreateContact(ctx, models.ContactFromRow(row)); err != nil {
		errMsg := err.Error()
		outcome.Error = &errMsg
		logger.WithError(err).WithField("member_id", row.MemberID).Warn("contact not added")
		return outcome
	}
	outcome.Added = true
	logger.WithFields(logrus.Fields{"member_id": row.MemberID, "name": row.Name}).Info("📇 Contact added")
	return outcome
}
