package handlers

import (
	"net/http"
	"strconv"

	"github.com/washify/marketplace-service/internal/domain"
)

// Pagination блок пагинации в списочных ответах
type Pagination struct {
	Total   int64  `json:"total"`
	Limit   uint64 `json:"limit"`
	Offset  uint64 `json:"offset"`
	HasMore bool   `json:"hasMore"`
}

// NewPagination собирает блок пагинации по итогам выборки
func NewPagination(total int64, limit, offset uint64) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset)+int64(limit) < total,
	}
}

// ParseLimitOffset читает limit/offset из query-параметров.
// Невалидные или отсутствующие значения заменяются дефолтами,
// limit ограничивается сверху.
func ParseLimitOffset(r *http.Request, defaultLimit uint64) (limit, offset uint64) {
	limit = defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = parsed
		}
	}

	return limit, offset
}

// ParseInt64Param читает int64 из query-параметра, nil если параметр пуст
func ParseInt64Param(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// ParseFloatParam читает float64 из query-параметра, def если параметр пуст
func ParseFloatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
