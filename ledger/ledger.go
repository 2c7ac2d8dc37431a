// Package ledger derives aggregates and chart-ready rollups from flat
// transaction lists. Every view that needs category, account or month
// totals goes through this package instead of re-deriving them.
//
// All functions are pure: they never mutate their input and always
// return defined values for empty input.
package ledger

import (
	"math"
	"slices"
	"time"

	"github.com/pluto-fi/plutotui/pluto"
)

// Bucket is a named accumulator of transaction magnitudes.
type Bucket struct {
	Key   string
	Total float64
}

// accumulator keeps buckets in insertion order of first occurrence.
type accumulator struct {
	order  []string
	totals map[string]float64
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]float64)}
}

func (a *accumulator) add(key string, amount float64) {
	if _, ok := a.totals[key]; !ok {
		a.order = append(a.order, key)
	}
	a.totals[key] += amount
}

func (a *accumulator) buckets() []Bucket {
	buckets := make([]Bucket, 0, len(a.order))
	for _, key := range a.order {
		buckets = append(buckets, Bucket{Key: key, Total: a.totals[key]})
	}
	return buckets
}

// IncomeTotal sums the amounts of all credits.
func IncomeTotal(ts []pluto.Transaction) float64 {
	var total float64
	for _, t := range ts {
		if t.Amount > 0 {
			total += t.Amount
		}
	}
	return total
}

// ExpenseTotal sums the magnitudes of all debits.
func ExpenseTotal(ts []pluto.Transaction) float64 {
	var total float64
	for _, t := range ts {
		if t.Amount < 0 {
			total += -t.Amount
		}
	}
	return total
}

// NetFlow is income minus expenses over the set.
func NetFlow(ts []pluto.Transaction) float64 {
	return IncomeTotal(ts) - ExpenseTotal(ts)
}

// ByCategory sums transaction magnitudes per category, in insertion
// order of first occurrence. Every transaction lands in exactly one
// bucket.
func ByCategory(ts []pluto.Transaction) []Bucket {
	acc := newAccumulator()
	for _, t := range ts {
		acc.add(t.Category, math.Abs(t.Amount))
	}
	return acc.buckets()
}

// ByAccount sums transaction magnitudes per account display name. The
// names map translates account IDs; an unknown ID buckets under the
// raw ID.
func ByAccount(ts []pluto.Transaction, names map[string]string) []Bucket {
	acc := newAccumulator()
	for _, t := range ts {
		name := t.AccountID
		if display, ok := names[t.AccountID]; ok {
			name = display
		}
		acc.add(name, math.Abs(t.Amount))
	}
	return acc.buckets()
}

const monthLabelLayout = "Jan 2006"

// ByMonth sums transaction magnitudes per month. All twelve months of
// the reference year are pre-seeded with zero totals so charts never
// have gaps; transactions outside the reference year append their own
// labeled buckets after the seeded year.
func ByMonth(ts []pluto.Transaction, referenceYear int) []Bucket {
	acc := newAccumulator()
	for month := time.January; month <= time.December; month++ {
		label := time.Date(referenceYear, month, 1, 0, 0, 0, 0, time.UTC).Format(monthLabelLayout)
		acc.add(label, 0)
	}

	for _, t := range ts {
		acc.add(t.Date.Format(monthLabelLayout), math.Abs(t.Amount))
	}

	return acc.buckets()
}

// SortByTotal returns a copy of the buckets ordered by total
// descending. Required before truncating to a top-N view.
func SortByTotal(buckets []Bucket) []Bucket {
	sorted := slices.Clone(buckets)
	slices.SortStableFunc(sorted, func(a, b Bucket) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// BucketSum totals a bucket list. For ByCategory output this equals
// the sum of magnitudes of the source transactions.
func BucketSum(buckets []Bucket) float64 {
	var total float64
	for _, b := range buckets {
		total += b.Total
	}
	return total
}
