package pagination

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/DjordjeVuckovic/pagekit/pkg/uri"
)

// PageRequest describes which page to fetch next.
// Offset is either a decimal page offset or an opaque cursor issued by the server.
type PageRequest struct {
	Offset string `json:"offset" query:"offset"`
	Limit  int    `json:"limit" query:"limit"`
}

// NewPageRequest creates a request for the first page with the default limit
func NewPageRequest() *PageRequest {
	return &PageRequest{Offset: DefaultOffset, Limit: UnsetLimit}
}

// NewPageRequestWithLimit creates a request for the first page
func NewPageRequestWithLimit(limit int) *PageRequest {
	return &PageRequest{Offset: DefaultOffset, Limit: limit}
}

// NewPageRequestAt creates a request for a numeric offset
func NewPageRequestAt(offset int, limit int) *PageRequest {
	return &PageRequest{Offset: strconv.Itoa(offset), Limit: limit}
}

// NewCursorPageRequest creates a request for an opaque offset token
func NewCursorPageRequest(cursor string, limit int) *PageRequest {
	return &PageRequest{Offset: cursor, Limit: limit}
}

// OffsetToken returns the offset, reading an empty one as DefaultOffset
func (r *PageRequest) OffsetToken() string {
	if r.Offset == "" {
		return DefaultOffset
	}
	return r.Offset
}

func (r *PageRequest) SetOffset(offset string) {
	r.Offset = offset
}

func (r *PageRequest) SetLimit(limit int) {
	r.Limit = limit
}

// SanitizedLimit returns the limit to send to the server.
// Non-positive limits fall back to DefaultLimit.
func (r *PageRequest) SanitizedLimit() int {
	if r.Limit <= 0 {
		return DefaultLimit
	}
	return r.Limit
}

// SanitizedLimitMax is like SanitizedLimit but clamps the result to maxLimit.
// The default limit is clamped too.
func (r *PageRequest) SanitizedLimitMax(maxLimit int) int {
	limit := r.SanitizedLimit()
	if maxLimit > 0 && limit > maxLimit {
		return maxLimit
	}
	return limit
}

// PageURI appends the page parameters to a copy of b and renders it.
// b itself is left untouched.
func (r *PageRequest) PageURI(b *uri.Builder) string {
	c := b.Clone()
	if r.emitsOffset() {
		c.QueryParam(OffsetParam, r.OffsetToken())
	}
	c.QueryParam(LimitParam, strconv.Itoa(r.SanitizedLimit()))
	return c.String()
}

// UpdateWithPageParams returns a copy of b with offset and limit set,
// replacing whatever page parameters b already carried.
// Applying it to its own output yields the same URI.
func (r *PageRequest) UpdateWithPageParams(b *uri.Builder) *uri.Builder {
	c := b.Clone()
	if r.emitsOffset() {
		c.ReplaceQueryParam(OffsetParam, r.OffsetToken())
	} else {
		c.ReplaceQueryParam(OffsetParam)
	}
	c.ReplaceQueryParam(LimitParam, strconv.Itoa(r.SanitizedLimit()))
	return c
}

// QueryValues returns the page parameters as url.Values
func (r *PageRequest) QueryValues() url.Values {
	values := url.Values{}
	if r.emitsOffset() {
		values.Set(OffsetParam, r.OffsetToken())
	}
	values.Set(LimitParam, strconv.Itoa(r.SanitizedLimit()))
	return values
}

// emitsOffset reports whether the offset belongs in a rendered URI.
// Only the bare default request (zero offset, unset limit) omits it.
func (r *PageRequest) emitsOffset() bool {
	return r.OffsetToken() != DefaultOffset || r.Limit != UnsetLimit
}

// Equal compares offsets as text and limits as numbers
func (r *PageRequest) Equal(other *PageRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.OffsetToken() == other.OffsetToken() && r.Limit == other.Limit
}

func (r *PageRequest) String() string {
	return fmt.Sprintf("PageRequest[offset=%s,limit=%d]", r.OffsetToken(), r.Limit)
}
