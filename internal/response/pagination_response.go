package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination derives page metadata from a count query plus the number of
// rows actually returned for the current page.
func NewPagination(page, pageSize int, total int64, count int) *Pagination {
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	from := (page-1)*pageSize + 1
	if count == 0 {
		from = 0
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         from + count - 1,
	}
}
