package models

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RowAction is what the reconciler decided to do with a row.
type RowAction string

const (
	RowCreate RowAction = "create"
	RowUpdate RowAction = "update"
	RowSkip   RowAction = "skip"
)

// ContactOutcome is the result of the best-effort contacts mirror.
type ContactOutcome struct {
	Attempted bool    `json:"attempted"`
	Added     bool    `json:"added"`
	Error     *string `json:"error,omitempty"`
}

// RowOutcome records the handling of a single member row.
type RowOutcome struct {
	Action    RowAction      `json:"action"`
	Line      int            `json:"line,omitempty"`
	MemberID  string         `json:"member_id,omitempty"`
	Name      string         `json:"name,omitempty"`
	RecordID  string         `json:"record_id,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Executed  bool           `json:"executed"`
	Error     *string        `json:"error,omitempty"`
	Contact   ContactOutcome `json:"contact"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
}

// Failed reports whether the record write for this row failed.
func (o *RowOutcome) Failed() bool {
	return o.Error != nil
}

// LogFields returns structured logging fields for this outcome.
func (o *RowOutcome) LogFields() logrus.Fields {
	fields := logrus.Fields{
		"action":    o.Action,
		"member_id": o.MemberID,
		"name":      o.Name,
	}
	if o.Line > 0 {
		fields["line"] = o.Line
	}
	if o.RecordID != "" {
		fields["record_id"] = o.RecordID
	}
	if o.Reason != "" {
		fields["reason"] = o.Reason
	}
	if o.Error != nil {
		fields["error"] = *o.Error
	}
	return fields
}
