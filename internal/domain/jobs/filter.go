package jobs

import (
	"fmt"
	"net/url"
	"strings"

	"masterneo/internal/infra/dbx"
	"masterneo/internal/params"
)

var sortableColumns = map[string]string{
	"time_added":   "j.time_added",
	"salary":       "COALESCE(j.salary_min, j.salary_max)",
	"job_title":    "LOWER(j.job_title)",
	"company_name": "LOWER(j.company_name)",
}

// SortKeys lists the accepted sort_by values.
var SortKeys = []string{"time_added", "salary", "job_title", "company_name"}

var defaultSort = params.Sort{Key: "time_added", Desc: true}

type Filter struct {
	JobTypes   []string
	IsRemote   *bool
	IsFullTime *bool
	Location   string
	Search     string
	Sort       params.Sort
	Limit      int
	Offset     int
}

// ParseFilter reads the recognised query keys; anything else is ignored.
func ParseFilter(q url.Values) Filter {
	f := Filter{
		JobTypes:   params.List(q, "job_type", "job_types"),
		IsRemote:   params.ParseBool(q, "is_remote"),
		IsFullTime: params.ParseBool(q, "is_full_time"),
		Location:   strings.TrimSpace(q.Get("location")),
		Search:     strings.TrimSpace(q.Get("search")),
		Sort:       defaultSort,
	}
	if s, ok := params.ParseSort(q, SortKeys, nil); ok {
		f.Sort = s
	}
	return f
}

func buildWhere(f Filter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.JobTypes) > 0 {
		lowered := make([]string, len(f.JobTypes))
		for i, t := range f.JobTypes {
			lowered[i] = strings.ToLower(t)
		}
		clauses = append(clauses, fmt.Sprintf("LOWER(j.job_type) = ANY(%s)", next(lowered)))
	}
	if f.IsRemote != nil {
		clauses = append(clauses, fmt.Sprintf("j.is_remote = %s", next(*f.IsRemote)))
	}
	if f.IsFullTime != nil {
		clauses = append(clauses, fmt.Sprintf("j.is_full_time = %s", next(*f.IsFullTime)))
	}
	if f.Location != "" {
		clauses = append(clauses, fmt.Sprintf("j.location ILIKE %s", next("%"+dbx.EscapeLike(f.Location)+"%")))
	}
	if f.Search != "" {
		p := next("%" + dbx.EscapeLike(f.Search) + "%")
		clauses = append(clauses, fmt.Sprintf("(j.job_title ILIKE %[1]s OR j.company_name ILIKE %[1]s OR j.job_description ILIKE %[1]s)", p))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderBy(s params.Sort) string {
	col, ok := sortableColumns[s.Key]
	if !ok {
		s = defaultSort
		col = sortableColumns[s.Key]
	}
	dir := s.Direction()
	return fmt.Sprintf(" ORDER BY %s %s NULLS LAST, j.id %s", col, dir, dir)
}

// buildListQuery returns the page query (with a windowed total) and its args.
func buildListQuery(f Filter) (string, []any) {
	where, args := buildWhere(f)
	args = append(args, f.Limit, f.Offset)
	q := "SELECT " + jobColumns + ", COUNT(*) OVER() AS total_count FROM jobs j" +
		where + orderBy(f.Sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return q, args
}

func buildCountQuery(f Filter) (string, []any) {
	where, args := buildWhere(f)
	return "SELECT COUNT(*) FROM jobs j" + where, args
}
