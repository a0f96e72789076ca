package notion

import (
	"context"
	"errors"
	"testing"

	"github.com/jomei/notionapi"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

var testSchema = Schema{NameProperty: "First Name", PhoneProperty: "Mobile Phone", MemberIDProperty: "Member ID"}

type fakeQuerier struct {
	responses []*notionapi.DatabaseQueryResponse
	requests  []*notionapi.DatabaseQueryRequest
	err       error
}

func (f *fakeQuerier) Query(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

type fakePages struct {
	created []*notionapi.PageCreateRequest
	updated map[notionapi.PageID]*notionapi.PageUpdateRequest
	err     error
}

func (f *fakePages) Create(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.created = append(f.created, req)
	if f.err != nil {
		return nil, f.err
	}
	return &notionapi.Page{ID: "page-new"}, nil
}

func (f *fakePages) Update(ctx context.Context, id notionapi.PageID, req *notionapi.PageUpdateRequest) (*notionapi.Page, error) {
	if f.updated == nil {
		f.updated = map[notionapi.PageID]*notionapi.PageUpdateRequest{}
	}
	f.updated[id] = req
	if f.err != nil {
		return nil, f.err
	}
	return &notionapi.Page{ID: notionapi.ObjectID(id)}, nil
}

func titlePage(id string, memberID string) notionapi.Page {
	return notionapi.Page{
		ID: notionapi.ObjectID(id),
		Properties: notionapi.Properties{
			"Member ID": &notionapi.TitleProperty{
				Title: []notionapi.RichText{{Text: &notionapi.Text{Content: memberID}}},
			},
		},
	}
}

func TestQueryRecordsExtractsMemberID(t *testing.T) {
	querier := &fakeQuerier{responses: []*notionapi.DatabaseQueryResponse{{
		Results: []notionapi.Page{
			titlePage("page-1", "M1"),
			{ID: "page-2", Properties: notionapi.Properties{}},
			{ID: "page-3", Properties: notionapi.Properties{
				"Member ID": &notionapi.TitleProperty{Title: []notionapi.RichText{}},
			}},
			{ID: "page-4", Properties: notionapi.Properties{
				"Member ID": &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: "M4"}}},
			}},
		},
		HasMore:    true,
		NextCursor: "cursor-2",
	}}}
	store := &Store{databases: querier, pages: &fakePages{}, databaseID: "db", schema: testSchema}

	page, err := store.QueryRecords(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.NextCursor != "cursor-2" {
		t.Fatalf("expected next cursor cursor-2, got %q", page.NextCursor)
	}
	want := []models.ExistingRecord{
		{RecordID: "page-1", MemberID: "M1"},
		{RecordID: "page-2"},
		{RecordID: "page-3"},
		{RecordID: "page-4", MemberID: "M4"},
	}
	if len(page.Records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(page.Records))
	}
	for i := range want {
		if page.Records[i] != want[i] {
			t.Fatalf("record %d: expected %#v, got %#v", i, want[i], page.Records[i])
		}
	}
	if querier.requests[0].StartCursor != "" {
		t.Fatalf("expected first request without cursor, got %q", querier.requests[0].StartCursor)
	}
}

func TestQueryRecordsPassesCursorAndStopsWithoutMore(t *testing.T) {
	querier := &fakeQuerier{responses: []*notionapi.DatabaseQueryResponse{{
		Results:    []notionapi.Page{titlePage("page-9", "M9")},
		HasMore:    false,
		NextCursor: "ignored",
	}}}
	store := &Store{databases: querier, pages: &fakePages{}, databaseID: "db", schema: testSchema}

	page, err := store.QueryRecords(context.Background(), "cursor-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if querier.requests[0].StartCursor != "cursor-2" {
		t.Fatalf("expected cursor-2 to be sent, got %q", querier.requests[0].StartCursor)
	}
	if page.NextCursor != "" {
		t.Fatalf("expected final page, got cursor %q", page.NextCursor)
	}
}

func TestQueryRecordsReturnsError(t *testing.T) {
	store := &Store{databases: &fakeQuerier{err: errors.New("unauthorized")}, schema: testSchema}
	if _, err := store.QueryRecords(context.Background(), ""); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestCreateRecordWritesSchema(t *testing.T) {
	pages := &fakePages{}
	store := &Store{databases: &fakeQuerier{}, pages: pages, databaseID: "db-1", schema: testSchema}

	id, err := store.CreateRecord(context.Background(), models.MemberRow{Name: "Ada Lovelace", Phone: "+1555", MemberID: "M1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "page-new" {
		t.Fatalf("expected page-new, got %q", id)
	}
	req := pages.created[0]
	if req.Parent.DatabaseID != "db-1" || req.Parent.Type != notionapi.ParentTypeDatabaseID {
		t.Fatalf("unexpected parent: %#v", req.Parent)
	}
	name, ok := req.Properties["First Name"].(notionapi.RichTextProperty)
	if !ok || name.RichText[0].Text.Content != "Ada Lovelace" {
		t.Fatalf("unexpected name property: %#v", req.Properties["First Name"])
	}
	phone, ok := req.Properties["Mobile Phone"].(notionapi.PhoneNumberProperty)
	if !ok || phone.PhoneNumber != "+1555" {
		t.Fatalf("unexpected phone property: %#v", req.Properties["Mobile Phone"])
	}
	if got := titleText(req.Properties["Member ID"]); got != "M1" {
		t.Fatalf("expected member id M1, got %q", got)
	}
}

func TestUpdateRecordTargetsPage(t *testing.T) {
	pages := &fakePages{}
	store := &Store{databases: &fakeQuerier{}, pages: pages, databaseID: "db-1", schema: testSchema}

	if err := store.UpdateRecord(context.Background(), "R1", models.MemberRow{Name: "Ada", Phone: "+1", MemberID: "M1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	req, ok := pages.updated["R1"]
	if !ok {
		t.Fatalf("expected update on R1")
	}
	if got := titleText(req.Properties["Member ID"]); got != "M1" {
		t.Fatalf("expected member id M1, got %q", got)
	}
}

func TestWriteErrorsAreWrapped(t *testing.T) {
	store := &Store{pages: &fakePages{err: errors.New("conflict")}, schema: testSchema}
	if err := store.UpdateRecord(context.Background(), "R1", models.MemberRow{}); err == nil {
		t.Fatalf("expected update error")
	}
	if _, err := store.CreateRecord(context.Background(), models.MemberRow{}); err == nil {
		t.Fatalf("expected create error")
	}
}

func TestNewStoreValidatesInput(t *testing.T) {
	if _, err := NewStore("", "db", testSchema); err == nil {
		t.Fatalf("expected error for missing token")
	}
	if _, err := NewStore("secret", "", testSchema); err == nil {
		t.Fatalf("expected error for missing database id")
	}
	if _, err := NewStore("secret", "db", testSchema); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
