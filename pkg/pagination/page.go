package pagination

import (
	"fmt"

	"github.com/DjordjeVuckovic/pagekit/pkg/uri"
)

// Paging describes where a page sits in a collection.
// Next is empty on the last page.
type Paging struct {
	Offset string `json:"offset"`
	Limit  int    `json:"limit"`
	Next   string `json:"next,omitempty"`
}

// Page is a paged collection envelope.
// Generic type T allows reuse across different resource types
type Page[T any] struct {
	Items  []T    `json:"items"`
	Paging Paging `json:"paging"`
}

// HasNext reports whether another page follows
func (p Paging) HasNext() bool {
	return p.Next != ""
}

// NextPageRequest reads the page parameters back from the next link.
// It returns nil when this is the last page.
func (p Paging) NextPageRequest() (*PageRequest, error) {
	if p.Next == "" {
		return nil, nil
	}

	b, err := uri.Parse(p.Next)
	if err != nil {
		return nil, fmt.Errorf("failed to parse next link: %w", err)
	}

	return ParseQuery(b.Query()), nil
}

// NewOffsetPage builds a page for numeric offsets.
// items should be fetched with limit+1 so that more results can be detected:
// - only the requested number of items is kept
// - Next points at offset+limit on base
func NewOffsetPage[T any](items []T, req *PageRequest, base *uri.Builder, maxLimit int) *Page[T] {
	limit := req.SanitizedLimitMax(maxLimit)
	page, hasMore := trimPage(items, req, limit)

	if hasMore {
		next := NewPageRequestAt(numericOffset(req)+limit, limit)
		page.Paging.Next = next.UpdateWithPageParams(base).String()
	}

	return page
}

// NewCursorPage builds a page for opaque offsets.
// The next cursor is generated from the last returned item.
func NewCursorPage[T any](items []T, req *PageRequest, base *uri.Builder, maxLimit int, cursorFn func(T) (string, error)) (*Page[T], error) {
	limit := req.SanitizedLimitMax(maxLimit)
	page, hasMore := trimPage(items, req, limit)

	if hasMore && len(page.Items) > 0 {
		cursor, err := cursorFn(page.Items[len(page.Items)-1])
		if err != nil {
			return nil, fmt.Errorf("failed to build next cursor: %w", err)
		}
		next := NewCursorPageRequest(cursor, limit)
		page.Paging.Next = next.UpdateWithPageParams(base).String()
	}

	return page, nil
}

func trimPage[T any](items []T, req *PageRequest, limit int) (*Page[T], bool) {
	hasMore := len(items) > limit

	// Trim to requested size if we fetched limit+1
	if hasMore {
		items = items[:limit]
	}
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items: items,
		Paging: Paging{
			Offset: req.OffsetToken(),
			Limit:  limit,
		},
	}, hasMore
}
