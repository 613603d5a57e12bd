package rest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// encodeQuery renders filters, ordering and embeds as PostgREST parameters.
func encodeQuery(q store.Query, withSelect bool) url.Values {
	values := url.Values{}
	if withSelect {
		values.Set("select", selectClause(q.Embeds))
	}
	for _, f := range q.Filters {
		values.Add(f.Field, filterValue(f.Value))
	}
	if q.Order != nil {
		dir := "desc"
		if q.Order.Ascending {
			dir = "asc"
		}
		values.Set("order", q.Order.Field+"."+dir)
	}
	return values
}

// selectClause builds "*,players(first_name,last_name)".
func selectClause(embeds []store.Embed) string {
	parts := []string{"*"}
	for _, e := range embeds {
		cols := "*"
		if len(e.Columns) > 0 {
			cols = strings.Join(e.Columns, ",")
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", e.Relation, cols))
	}
	return strings.Join(parts, ",")
}

func filterValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "is.null"
	case string:
		return "eq." + val
	case fmt.Stringer:
		return "eq." + val.String()
	default:
		return fmt.Sprintf("eq.%v", val)
	}
}
