package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/pluto-fi/plutotui/pluto"
)

func TestDescribe(t *testing.T) {
	march := pluto.NewDate(2025, time.March, 1)
	ts := []pluto.Transaction{
		tx("t1", "Salary", "salary", 1000, march),
		tx("t2", "Rent", "rent", -200, march),
		tx("t3", "Rent", "rent", -50, march),
		tx("t4", "Groceries", "groceries", -150, march),
	}

	stats := Describe(ts)

	be.Equal(t, 4, stats.Count)
	be.Equal(t, 3, stats.UniqueCategories)
	be.Equal(t, 1000.0, stats.IncomeTotal)
	be.Equal(t, 400.0, stats.ExpenseTotal)
	be.Equal(t, 600.0, stats.NetFlow)
	be.Equal(t, 50.0, stats.Min)
	be.Equal(t, 1000.0, stats.Max)
	be.Equal(t, 350.0, stats.Mean)
	// even-length median averages the two middle magnitudes (150, 200)
	be.Equal(t, 175.0, stats.Median)

	// population variance over magnitudes 1000, 200, 50, 150
	wantVariance := (650.0*650 + 150.0*150 + 300.0*300 + 200.0*200) / 4
	be.Equal(t, wantVariance, stats.Variance)
	be.Equal(t, math.Sqrt(wantVariance), stats.StdDev)
}

func TestDescribeOddMedian(t *testing.T) {
	march := pluto.NewDate(2025, time.March, 1)
	ts := []pluto.Transaction{
		tx("t1", "A", "misc", -10, march),
		tx("t2", "B", "misc", 30, march),
		tx("t3", "C", "misc", -20, march),
	}

	be.Equal(t, 20.0, Describe(ts).Median)
}

func TestDescribeEmptyList(t *testing.T) {
	stats := Describe(nil)

	be.Equal(t, 0, stats.Count)
	be.Equal(t, 0, stats.UniqueCategories)
	be.Equal(t, 0.0, stats.Mean)
	be.Equal(t, 0.0, stats.Median)
	be.Equal(t, 0.0, stats.Variance)
	be.Equal(t, 0.0, stats.StdDev)
	be.Equal(t, 0.0, stats.Min)
	be.Equal(t, 0.0, stats.Max)
	be.False(t, math.IsNaN(stats.Mean))
}

func TestFromSummaryMatchesLocal(t *testing.T) {
	summary := pluto.MathematicalSummary{
		Mean: 1.5, Median: 1.0, StandardDeviation: 0.5, Variance: 0.25,
		MinValue: 1, MaxValue: 2, TotalTransactions: 4,
		IncomeTotal: 4, ExpenseTotal: 2, NetFlow: 2,
	}

	stats := FromSummary(summary)

	be.Equal(t, 1.5, stats.Mean)
	be.Equal(t, 0.25, stats.Variance)
	be.Equal(t, 4, stats.Count)
	be.Equal(t, stats.IncomeTotal-stats.ExpenseTotal, stats.NetFlow)
}
