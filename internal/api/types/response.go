// internal/api/types/response.go
package types

// PaginatedResponse is one page of a newest-first listing such as the wallet ledger.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalCount int64 `json:"total_count"`
	HasMore    bool  `json:"has_more"`
}

// NewPage builds a page. A nil slice is rendered as an empty list.
func NewPage[T any](data []T, limit, offset int, total int64) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data:       data,
		Limit:      limit,
		Offset:     offset,
		TotalCount: total,
		HasMore:    int64(offset+len(data)) < total,
	}
}
