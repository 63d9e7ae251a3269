package talents

import (
	"fmt"
	"net/url"
	"strings"

	"masterneo/internal/infra/dbx"
	"masterneo/internal/params"
)

var sortableColumns = map[string]string{
	"date_joined":    "t.date_joined",
	"rating":         "t.average_rating",
	"reviews_count":  "t.reviews_count",
	"profile_visits": "t.profile_visits",
	"username":       "LOWER(t.username)",
}

var SortKeys = []string{"date_joined", "rating", "reviews_count", "profile_visits", "username"}

// SortAliases keeps the ordering names used by earlier clients.
var SortAliases = map[string]params.Sort{
	"most_experienced":  {Key: "rating", Desc: true},
	"least_experienced": {Key: "rating", Desc: false},
}

var defaultSort = params.Sort{Key: "date_joined", Desc: true}

type Filter struct {
	Skills   []string
	Timezone string
	Language string
	Search   string
	Sort     params.Sort
	Limit    int
	Offset   int
}

func ParseFilter(q url.Values) Filter {
	f := Filter{
		Skills:   params.List(q, "skills", "skill"),
		Timezone: strings.TrimSpace(q.Get("timezone")),
		Language: strings.TrimSpace(q.Get("language")),
		Search:   strings.TrimSpace(q.Get("search")),
		Sort:     defaultSort,
	}
	if s, ok := params.ParseSort(q, SortKeys, SortAliases); ok {
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

	if len(f.Skills) > 0 {
		ors := make([]string, 0, len(f.Skills))
		for _, s := range f.Skills {
			ors = append(ors, fmt.Sprintf("s.name ILIKE %s", next("%"+dbx.EscapeLike(s)+"%")))
		}
		clauses = append(clauses, "EXISTS (SELECT 1 FROM unnest(t.skills) AS s(name) WHERE "+strings.Join(ors, " OR ")+")")
	}
	if f.Timezone != "" {
		clauses = append(clauses, fmt.Sprintf("t.timezone = %s", next(f.Timezone)))
	}
	if f.Language != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(t.language) = LOWER(%s)", next(f.Language)))
	}
	if f.Search != "" {
		p := next("%" + dbx.EscapeLike(f.Search) + "%")
		clauses = append(clauses, fmt.Sprintf("(t.username ILIKE %[1]s OR t.global_name ILIKE %[1]s OR t.summary ILIKE %[1]s)", p))
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
	return fmt.Sprintf(" ORDER BY %s %s NULLS LAST, t.id %s", col, dir, dir)
}

func buildListQuery(f Filter) (string, []any) {
	where, args := buildWhere(f)
	args = append(args, f.Limit, f.Offset)
	q := "SELECT " + talentColumns + ", COUNT(*) OVER() AS total_count FROM talents t" +
		where + orderBy(f.Sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return q, args
}

func buildCountQuery(f Filter) (string, []any) {
	where, args := buildWhere(f)
	return "SELECT COUNT(*) FROM talents t" + where, args
}
