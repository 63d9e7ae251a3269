package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 300
	MaxPageSize     = 1000
)

// URL: /talents?page=2&page_size=30
// → ParsePagination() → Pagination{PageSize:30, Page:2, Offset:30}
// → SQL: SELECT ... LIMIT 30 OFFSET 30
// → DB returns data + total count
// → ComputeMeta(total) → fills TotalPages, HasNext, etc.
type Pagination struct {
	PageSize   int  `json:"page_size"`   // items per page
	Offset     int  `json:"-"`           // SQL OFFSET value
	Page       int  `json:"page"`        // current page number
	Total      int  `json:"total"`       // total matching items
	TotalPages int  `json:"total_pages"` // total pages available
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePagination parses ?page_size=...&page=... safely. "limit" is accepted
// as an alias of page_size. Keys are case sensitive.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		PageSize: DefaultPageSize,
		Page:     1,
	}

	sizeStr := strings.TrimSpace(q.Get("page_size"))
	if sizeStr == "" {
		sizeStr = strings.TrimSpace(q.Get("limit"))
	}
	if sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			switch {
			case size <= 0:
				p.PageSize = DefaultPageSize
			case size > MaxPageSize:
				p.PageSize = MaxPageSize
			default:
				p.PageSize = size
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = min(page, MaxPage(p.PageSize))
		}
	}

	p.Offset = (p.Page - 1) * p.PageSize
	return p
}

// MaxPage is the highest page whose offset still fits in an int32, which
// keeps the OFFSET sent to Postgres positive on every platform.
func MaxPage(pageSize int) int {
	return math.MaxInt32/pageSize + 1
}

// ComputeMeta updates pagination after fetching total count.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.PageSize > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.PageSize)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = int64(p.Page)*int64(p.PageSize) < int64(total)
}

// ParseBool returns nil for missing or malformed values so unknown input is
// ignored instead of rejected.
func ParseBool(q url.Values, key string) *bool {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// List collects a repeatable parameter, also splitting comma separated
// values, trimming and dropping empties.
func List(q url.Values, keys ...string) []string {
	var out []string
	for _, key := range keys {
		for _, raw := range q[key] {
			for _, part := range strings.Split(raw, ",") {
				if v := strings.TrimSpace(part); v != "" {
					out = append(out, v)
				}
			}
		}
	}
	return out
}
