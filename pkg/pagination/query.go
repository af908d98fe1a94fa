package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseQuery reads a PageRequest from query parameters.
// A missing offset becomes DefaultOffset; a missing or non-numeric limit stays unset.
func ParseQuery(values url.Values) *PageRequest {
	req := NewPageRequest()

	if offset := values.Get(OffsetParam); offset != "" {
		req.Offset = offset
	}

	if limit := strings.TrimSpace(values.Get(LimitParam)); limit != "" {
		n, err := strconv.Atoi(limit)
		if err == nil {
			req.Limit = n
		}
	}

	return req
}

// numericOffset returns the offset as a number, or 0 for cursor tokens
func numericOffset(r *PageRequest) int {
	n, err := strconv.Atoi(r.OffsetToken())
	if err != nil || n < 0 {
		return 0
	}
	return n
}
