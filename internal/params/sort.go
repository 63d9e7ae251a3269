package params

import (
	"net/url"
	"strings"
)

type Sort struct {
	Key  string
	Desc bool
}

// ParseSort reads ?sort_by=key&order=asc|desc. A leading "-" on the key also
// selects descending order; with neither, the order is descending. Keys not in
// allowed (after alias resolution) report ok=false so callers fall back to
// their default ordering.
func ParseSort(q url.Values, allowed []string, aliases map[string]Sort) (Sort, bool) {
	raw := strings.ToLower(strings.TrimSpace(q.Get("sort_by")))
	if raw == "" {
		return Sort{}, false
	}

	if alias, ok := aliases[raw]; ok {
		return alias, true
	}

	s := Sort{Desc: true}
	if strings.HasPrefix(raw, "-") {
		raw = raw[1:]
	} else if strings.EqualFold(strings.TrimSpace(q.Get("order")), "asc") {
		s.Desc = false
	}

	for _, a := range allowed {
		if a == raw {
			s.Key = raw
			return s, true
		}
	}
	return Sort{}, false
}

func (s Sort) Direction() string {
	if s.Desc {
		return "DESC"
	}
	return "ASC"
}
