package ledger

import (
	"strings"

	"github.com/pluto-fi/plutotui/pluto"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Filter narrows a transaction list. The zero value passes everything.
type Filter struct {
	// Category filters on exact category match; empty or "all"
	// disables it.
	Category string
	// Query is a case-insensitive substring matched against name,
	// merchant name and category.
	Query string
	// GlobalQuery is the cross-view search token. It is ANDed with
	// Query: a transaction must satisfy both.
	GlobalQuery string
}

// Apply returns the transactions passing the filter, in input order.
// The input slice is never mutated; applying the same filter twice is
// a no-op.
func (f Filter) Apply(ts []pluto.Transaction) []pluto.Transaction {
	out := make([]pluto.Transaction, 0, len(ts))
	for _, t := range ts {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) matches(t pluto.Transaction) bool {
	if f.Category != "" && f.Category != CategoryAll && t.Category != f.Category {
		return false
	}
	return matchesQuery(t, f.Query) && matchesQuery(t, f.GlobalQuery)
}

func matchesQuery(t pluto.Transaction, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.MerchantName), q) ||
		strings.Contains(strings.ToLower(t.Category), q)
}
