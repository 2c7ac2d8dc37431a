package ledger

import (
	"math"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pluto-fi/plutotui/pluto"
)

// SortKey selects the field transactions are ordered by.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByName   SortKey = "name"
)

// Direction is the sort direction. The default is descending.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

var nameCollator = collate.New(language.English, collate.Loose)

// Sort returns a copy of the transactions ordered by the given key.
// Amount sorts by magnitude, not signed value; name comparison is
// locale-aware. Equal elements keep their input order.
func Sort(ts []pluto.Transaction, key SortKey, dir Direction) []pluto.Transaction {
	sorted := slices.Clone(ts)

	var cmp func(a, b pluto.Transaction) int
	switch key {
	case SortByAmount:
		cmp = func(a, b pluto.Transaction) int {
			return compareFloats(math.Abs(a.Amount), math.Abs(b.Amount))
		}
	case SortByName:
		cmp = func(a, b pluto.Transaction) int {
			return nameCollator.CompareString(a.Name, b.Name)
		}
	default: // SortByDate
		cmp = func(a, b pluto.Transaction) int {
			return a.Date.Compare(b.Date.Time)
		}
	}

	if dir == Ascending {
		slices.SortStableFunc(sorted, cmp)
	} else {
		slices.SortStableFunc(sorted, func(a, b pluto.Transaction) int { return -cmp(a, b) })
	}

	return sorted
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
