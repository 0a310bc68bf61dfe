// Package api описывает JSON контракт HTTP API, общий для сервера и клиента.
package api

// Response конверт всех JSON ответов API
type Response struct {
	Data       any         `json:"data,omitempty"`       // полезная нагрузка
	Total      *int64      `json:"total,omitempty"`      // общее количество для списков
	Pagination *Pagination `json:"pagination,omitempty"` // параметры страницы для списков
	Error      string      `json:"error,omitempty"`      // описание ошибки
	Success    bool        `json:"success"`
}

// Pagination описывает страницу списка
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPagination считает номер страницы и количество страниц по limit/offset
func NewPagination(total int64, limit, offset int) *Pagination {
	if limit <= 0 {
		limit = 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{
		Total:      total,
		Page:       offset/limit + 1,
		Limit:      limit,
		Offset:     offset,
		TotalPages: pages,
		HasNext:    int64(offset+limit) < total,
		HasPrev:    offset > 0,
	}
}
