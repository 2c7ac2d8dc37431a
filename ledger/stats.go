package ledger

import (
	"math"
	"slices"

	"github.com/pluto-fi/plutotui/pluto"
)

// Stats are descriptive statistics over transaction magnitudes,
// mirroring the backend's mathematical summary so the two are
// interchangeable.
type Stats struct {
	Mean             float64
	Median           float64
	Variance         float64
	StdDev           float64
	Min              float64
	Max              float64
	Count            int
	UniqueCategories int
	IncomeTotal      float64
	ExpenseTotal     float64
	NetFlow          float64
}

// Describe computes statistics over abs(amount) across the set. An
// empty list yields all zeros, never NaN.
func Describe(ts []pluto.Transaction) Stats {
	stats := Stats{
		Count:        len(ts),
		IncomeTotal:  IncomeTotal(ts),
		ExpenseTotal: ExpenseTotal(ts),
	}
	stats.NetFlow = stats.IncomeTotal - stats.ExpenseTotal

	if len(ts) == 0 {
		return stats
	}

	magnitudes := make([]float64, len(ts))
	categories := make(map[string]struct{})
	var sum float64
	for i, t := range ts {
		magnitudes[i] = math.Abs(t.Amount)
		sum += magnitudes[i]
		categories[t.Category] = struct{}{}
	}
	stats.UniqueCategories = len(categories)
	stats.Mean = sum / float64(len(magnitudes))

	// population variance, matching the backend
	var squaredDiffs float64
	for _, v := range magnitudes {
		d := v - stats.Mean
		squaredDiffs += d * d
	}
	stats.Variance = squaredDiffs / float64(len(magnitudes))
	stats.StdDev = math.Sqrt(stats.Variance)

	sorted := slices.Clone(magnitudes)
	slices.Sort(sorted)
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Median = median(sorted)

	return stats
}

// median expects a sorted, non-empty slice. Even-length lists average
// the two middle values.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// FromSummary converts a backend mathematical summary into Stats so
// views can render either source identically.
func FromSummary(s pluto.MathematicalSummary) Stats {
	return Stats{
		Mean:         s.Mean,
		Median:       s.Median,
		Variance:     s.Variance,
		StdDev:       s.StandardDeviation,
		Min:          s.MinValue,
		Max:          s.MaxValue,
		Count:        s.TotalTransactions,
		IncomeTotal:  s.IncomeTotal,
		ExpenseTotal: s.ExpenseTotal,
		NetFlow:      s.NetFlow,
	}
}
