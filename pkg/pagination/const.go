package pagination

// DefaultLimit is the page size used when no positive limit is requested
const DefaultLimit = 100

// UnsetLimit marks a request that carries no explicit limit
const UnsetLimit = 0

// DefaultOffset is the zero-offset token
const DefaultOffset = "0"

// Query parameter names
const (
	OffsetParam = "offset"
	LimitParam  = "limit"
)
