package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniloc96/member-roster-sync/internal/interfaces"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// ErrPagerDone is returned by Next once the final page has been read.
var ErrPagerDone = errors.New("pager: no more pages")

// ErrRepeatedCursor means the store handed back the cursor it was just given.
var ErrRepeatedCursor = errors.New("store repeated cursor")

// RecordPager walks a cursor-paginated record listing one page at a time.
// It is finite and cannot be restarted; the cursor from each response is
// sent with the next request.
type RecordPager struct {
	store  interfaces.RecordStore
	cursor string
	pages  int
	done   bool
}

// NewRecordPager creates a pager positioned before the first page.
func NewRecordPager(store interfaces.RecordStore) *RecordPager {
	return &RecordPager{store: store}
}

// HasNext reports whether another page can be requested.
func (p *RecordPager) HasNext() bool {
	return !p.done
}

// Pages returns how many pages have been read.
func (p *RecordPager) Pages() int {
	return p.pages
}

// Next fetches the next page. After an error the pager is exhausted.
func (p *RecordPager) Next(ctx context.Context) ([]models.ExistingRecord, error) {
	if p.done {
		return nil, ErrPagerDone
	}
	page, err := p.store.QueryRecords(ctx, p.cursor)
	if err != nil {
		p.done = true
		return nil, &EnumerationError{Page: p.pages + 1, Err: err}
	}
	p.pages++
	if page == nil {
		p.done = true
		return nil, nil
	}
	if page.NextCursor != "" && page.NextCursor == p.cursor {
		p.done = true
		return nil, &EnumerationError{Page: p.pages, Err: fmt.Errorf("%w %q", ErrRepeatedCursor, page.NextCursor)}
	}
	if page.NextCursor == "" {
		p.done = true
	}
	p.cursor = page.NextCursor
	return page.Records, nil
}

// CollectRecords drains the pager into a single ordered slice. It returns
// nothing unless every page was read.
func CollectRecords(ctx context.Context, pager *RecordPager) ([]models.ExistingRecord, error) {
	var records []models.ExistingRecord
	for pager.HasNext() {
		page, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
	}
	return records, nil
}
