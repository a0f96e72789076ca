package models

// ExistingRecord is a record already present in the record store.
type ExistingRecord struct {
	RecordID string `json:"record_id"`
	MemberID string `json:"member_id,omitempty"`
}

// RecordPage is one page of a cursor-paginated record listing.
// An empty NextCursor marks the final page.
type RecordPage struct {
	Records    []ExistingRecord `json:"records"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// MemberIndex maps member ids to record ids.
type MemberIndex map[string]string

// BuildMemberIndex indexes records by member id. Records without one are
// skipped; on duplicates the last record in enumeration order wins.
func BuildMemberIndex(records []ExistingRecord) MemberIndex {
	index := make(MemberIndex, len(records))
	for _, record := range records {
		if record.MemberID == "" {
			continue
		}
		index[record.MemberID] = record.RecordID
	}
	return index
}

// Lookup returns the record id for a member id.
func (idx MemberIndex) Lookup(memberID string) (string, bool) {
	recordID, ok := idx[memberID]
	return recordID, ok
}

// Set records a member id to record id mapping.
func (idx MemberIndex) Set(memberID string, recordID string) {
	if memberID == "" || recordID == "" {
		return
	}
	idx[memberID] = recordID
}
