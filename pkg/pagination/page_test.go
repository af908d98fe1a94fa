package pagination_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/DjordjeVuckovic/pagekit/pkg/pagination"
	"github.com/DjordjeVuckovic/pagekit/pkg/uri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNewOffsetPage(t *testing.T) {
	tests := []struct {
		name      string
		items     []int
		req       *pagination.PageRequest
		maxLimit  int
		wantItems int
		wantNext  string
	}{
		{
			name:      "more results",
			items:     numbers(4),
			req:       pagination.NewPageRequestAt(6, 3),
			wantItems: 3,
			wantNext:  "/items?q=a&offset=9&limit=3",
		},
		{
			name:      "last page",
			items:     numbers(2),
			req:       pagination.NewPageRequestAt(6, 3),
			wantItems: 2,
		},
		{
			name:      "exactly full last page",
			items:     numbers(3),
			req:       pagination.NewPageRequestAt(6, 3),
			wantItems: 3,
		},
		{
			name:      "limit clamped to max",
			items:     numbers(10),
			req:       pagination.NewPageRequestWithLimit(50),
			maxLimit:  5,
			wantItems: 5,
			wantNext:  "/items?q=a&offset=5&limit=5",
		},
		{
			name:      "cursor token counts as zero",
			items:     numbers(3),
			req:       pagination.NewCursorPageRequest("zzz", 2),
			wantItems: 2,
			wantNext:  "/items?q=a&offset=2&limit=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := uri.FromString("/items?q=a")
			page := pagination.NewOffsetPage(tt.items, tt.req, base, tt.maxLimit)

			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantNext, page.Paging.Next)
			assert.Equal(t, tt.wantNext != "", page.Paging.HasNext())
			assert.Equal(t, tt.req.OffsetToken(), page.Paging.Offset)
		})
	}
}

func TestNewOffsetPage_EmptyItemsEncodeAsArray(t *testing.T) {
	page := pagination.NewOffsetPage[string](nil, pagination.NewPageRequest(), uri.FromString("/items"), 0)

	b, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"paging":{"offset":"0","limit":100}}`, string(b))
}

func TestNewCursorPage(t *testing.T) {
	cursorFn := func(n int) (string, error) {
		return "after-" + strconv.Itoa(n), nil
	}

	page, err := pagination.NewCursorPage(numbers(3), pagination.NewPageRequestWithLimit(2), uri.FromString("/items/{kind}"), 0, cursorFn)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, page.Items)
	assert.Equal(t, "/items/{kind}?offset=after-1&limit=2", page.Paging.Next)

	next, err := page.Paging.NextPageRequest()
	require.NoError(t, err)
	assert.True(t, pagination.NewCursorPageRequest("after-1", 2).Equal(next))
}

func TestNewCursorPage_CursorError(t *testing.T) {
	boom := errors.New("boom")
	cursorFn := func(int) (string, error) { return "", boom }

	_, err := pagination.NewCursorPage(numbers(3), pagination.NewPageRequestWithLimit(2), uri.FromString("/items"), 0, cursorFn)
	assert.ErrorIs(t, err, boom)
}

func TestPaging_NextPageRequest_LastPage(t *testing.T) {
	next, err := pagination.Paging{Offset: "0", Limit: 10}.NextPageRequest()
	assert.NoError(t, err)
	assert.Nil(t, next)
}

func TestPaging_NextPageRequest_InvalidLink(t *testing.T) {
	_, err := pagination.Paging{Next: "/items?offset=%zz"}.NextPageRequest()
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	data := numbers(23)
	base := uri.FromString("/items")

	var calls []string
	fetch := func(_ context.Context, req *pagination.PageRequest) (*pagination.Page[int], error) {
		calls = append(calls, req.String())
		offset, err := strconv.Atoi(req.OffsetToken())
		if err != nil {
			return nil, err
		}
		end := min(offset+req.SanitizedLimit()+1, len(data))
		return pagination.NewOffsetPage(data[offset:end], req, base, 0), nil
	}

	items, err := pagination.Collect(context.Background(), pagination.NewPageRequestWithLimit(10), fetch)
	require.NoError(t, err)

	assert.Equal(t, data, items)
	assert.Equal(t, []string{
		"PageRequest[offset=0,limit=10]",
		"PageRequest[offset=10,limit=10]",
		"PageRequest[offset=20,limit=10]",
	}, calls)
}

func TestCollect_FetchError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(_ context.Context, req *pagination.PageRequest) (*pagination.Page[int], error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return &pagination.Page[int]{
			Items:  []int{calls},
			Paging: pagination.Paging{Next: "/items?offset=" + strconv.Itoa(calls) + "&limit=1"},
		}, nil
	}

	items, err := pagination.Collect(context.Background(), nil, fetch)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, items)
}

func TestCollect_DetectsLoop(t *testing.T) {
	fetch := func(_ context.Context, req *pagination.PageRequest) (*pagination.Page[int], error) {
		return &pagination.Page[int]{
			Items:  []int{1},
			Paging: pagination.Paging{Next: "/items?offset=5&limit=2"},
		}, nil
	}

	items, err := pagination.Collect(context.Background(), pagination.NewPageRequestAt(5, 2), fetch)
	assert.ErrorIs(t, err, pagination.ErrPagingLoop)
	assert.Equal(t, []int{1}, items)
}

func TestCollect_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetch := func(_ context.Context, req *pagination.PageRequest) (*pagination.Page[int], error) {
		cancel()
		return &pagination.Page[int]{
			Items:  []int{1},
			Paging: pagination.Paging{Next: fmt.Sprintf("/items?offset=%d&limit=1", 1)},
		}, nil
	}

	items, err := pagination.Collect(ctx, pagination.NewPageRequestAt(0, 1), fetch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{1}, items)
}

func TestPages_StopsWhenConsumerBreaks(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, req *pagination.PageRequest) (*pagination.Page[int], error) {
		calls++
		return &pagination.Page[int]{
			Items:  []int{calls},
			Paging: pagination.Paging{Next: fmt.Sprintf("/items?offset=%d&limit=1", calls)},
		}, nil
	}

	for page, err := range pagination.Pages(context.Background(), nil, fetch) {
		require.NoError(t, err)
		if page.Items[0] == 3 {
			break
		}
	}
	assert.Equal(t, 3, calls)
}
