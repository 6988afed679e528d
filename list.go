package payflow

// Pagination defaults. The API counts pages from 1.
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

// ListOptions selects a page of a list endpoint. A nil *ListOptions or
// non-positive fields fall back to the defaults.
type ListOptions struct {
	PageNum  int
	PageSize int
}

// query normalizes the options into wire query parameters.
func (o *ListOptions) query() map[string]interface{} {
	pageNum := DefaultPageNum
	pageSize := DefaultPageSize
	if o != nil {
		if o.PageNum >= 1 {
			pageNum = o.PageNum
		}
		if o.PageSize >= 1 {
			pageSize = o.PageSize
		}
	}
	return map[string]interface{}{
		"pageNum":  pageNum,
		"pageSize": pageSize,
	}
}

// List is one page of entities plus the grand total across all pages.
type List[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}
