package pagination

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

// ErrPagingLoop is returned when a next link points back at the current page
var ErrPagingLoop = errors.New("next page repeats the current page")

// FetchFunc loads one page. It is where the caller's transport lives.
type FetchFunc[T any] func(ctx context.Context, req *PageRequest) (*Page[T], error)

// Pages yields pages starting at first and following next links until the
// last page, an error, or ctx cancellation. An error is yielded once, last.
func Pages[T any](ctx context.Context, first *PageRequest, fetch FetchFunc[T]) iter.Seq2[*Page[T], error] {
	return func(yield func(*Page[T], error) bool) {
		req := first
		if req == nil {
			req = NewPageRequest()
		}

		for req != nil {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			page, err := fetch(ctx, req)
			if err != nil {
				yield(nil, fmt.Errorf("failed to fetch %s: %w", req, err))
				return
			}
			if page == nil {
				return
			}

			slog.Debug("Fetched page",
				"offset", page.Paging.Offset,
				"limit", page.Paging.Limit,
				"items", len(page.Items),
				"hasNext", page.Paging.HasNext(),
			)

			if !yield(page, nil) {
				return
			}

			next, err := page.Paging.NextPageRequest()
			if err != nil {
				yield(nil, err)
				return
			}
			if next != nil && next.Equal(req) {
				yield(nil, fmt.Errorf("%w: %s", ErrPagingLoop, req))
				return
			}
			req = next
		}
	}
}

// Collect gathers the items of every page. On error the items collected so far
// are returned along with it.
func Collect[T any](ctx context.Context, first *PageRequest, fetch FetchFunc[T]) ([]T, error) {
	var all []T
	for page, err := range Pages(ctx, first, fetch) {
		if err != nil {
			return all, err
		}
		all = append(all, page.Items...)
	}
	return all, nil
}
