package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

type databaseQuerier interface {
	Query(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}

type pageWriter interface {
	Create(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
	Update(ctx context.Context, id notionapi.PageID, req *notionapi.PageUpdateRequest) (*notionapi.Page, error)
}

// Schema names the database properties holding member fields.
type Schema struct {
	NameProperty     string
	PhoneProperty    string
	MemberIDProperty string
}

// SchemaFromConfig builds a Schema from the record store settings.
func SchemaFromConfig(cfg config.NotionConfig) Schema {
	return Schema{
		NameProperty:     cfg.NameProperty,
		PhoneProperty:    cfg.PhoneProperty,
		MemberIDProperty: cfg.MemberIDProperty,
	}
}

// Store implements the RecordStore interface on a Notion database.
type Store struct {
	databases  databaseQuerier
	pages      pageWriter
	databaseID notionapi.DatabaseID
	schema     Schema
}

// NewStore creates a Notion-backed record store.
func NewStore(token string, databaseID string, schema Schema) (*Store, error) {
	if token == "" {
		return nil, fmt.Errorf("notion token is required")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("notion database id is required")
	}
	client := notionapi.NewClient(notionapi.Token(token))
	return &Store{
		databases:  client.Database,
		pages:      client.Page,
		databaseID: notionapi.DatabaseID(databaseID),
		schema:     schema,
	}, nil
}

// QueryRecords returns one page of database entries starting at cursor.
func (s *Store) QueryRecords(ctx context.Context, cursor string) (*models.RecordPage, error) {
	req := &notionapi.DatabaseQueryRequest{}
	if cursor != "" {
		req.StartCursor = notionapi.Cursor(cursor)
	}
	resp, err := s.databases.Query(ctx, s.databaseID, req)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	page := &models.RecordPage{Records: make([]models.ExistingRecord, 0, len(resp.Results))}
	for _, result := range resp.Results {
		page.Records = append(page.Records, models.ExistingRecord{
			RecordID: result.ID.String(),
			MemberID: titleText(result.Properties[s.schema.MemberIDProperty]),
		})
	}
	if resp.HasMore {
		page.NextCursor = string(resp.NextCursor)
	}
	return page, nil
}

// UpdateRecord overwrites the member fields of an existing page.
func (s *Store) UpdateRecord(ctx context.Context, recordID string, row models.MemberRow) error {
	_, err := s.pages.Update(ctx, notionapi.PageID(recordID), &notionapi.PageUpdateRequest{
		Properties: s.properties(row),
	})
	if err != nil {
		return fmt.Errorf("updating page %s: %w", recordID, err)
	}
	return nil
}

// CreateRecord adds a page for the row to the database.
func (s *Store) CreateRecord(ctx context.Context, row models.MemberRow) (string, error) {
	page, err := s.pages.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: s.databaseID,
		},
		Properties: s.properties(row),
	})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	if page == nil {
		return "", nil
	}
	return page.ID.String(), nil
}

func (s *Store) properties(row models.MemberRow) notionapi.Properties {
	return notionapi.Properties{
		s.schema.NameProperty: notionapi.RichTextProperty{
			RichText: []notionapi.RichText{textRun(row.Name)},
		},
		s.schema.PhoneProperty: notionapi.PhoneNumberProperty{
			PhoneNumber: row.Phone,
		},
		s.schema.MemberIDProperty: notionapi.TitleProperty{
			Title: []notionapi.RichText{textRun(row.MemberID)},
		},
	}
}

func textRun(content string) notionapi.RichText {
	return notionapi.RichText{Text: &notionapi.Text{Content: content}}
}

// titleText returns the first text run of a title property, or "".
func titleText(prop notionapi.Property) string {
	var runs []notionapi.RichText
	switch p := prop.(type) {
	case *notionapi.TitleProperty:
		if p == nil {
			return ""
		}
		runs = p.Title
	case notionapi.TitleProperty:
		runs = p.Title
	default:
		return ""
	}
	if len(runs) == 0 {
		return ""
	}
	if runs[0].Text != nil {
		return runs[0].Text.Content
	}
	return runs[0].PlainText
}
