package ledger

import (
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/pluto-fi/plutotui/pluto"
)

func TestRecurringDetectsStableMonthlyCharge(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "Netflix", "entertainment", -15.50, pluto.NewDate(2025, 1, 5)),
		tx("t2", "Netflix", "entertainment", -15.50, pluto.NewDate(2025, 2, 5)),
		tx("t3", "Netflix", "entertainment", -15.50, pluto.NewDate(2025, 3, 5)),
		tx("t4", "One-off Dinner", "food", -80, pluto.NewDate(2025, 2, 14)),
	}

	recurring := Recurring(ts)

	be.Equal(t, 1, len(recurring))
	be.Equal(t, "Netflix", recurring[0].Name)
	be.Equal(t, 3, recurring[0].Occurrences)
	be.Equal(t, 15.50, recurring[0].MonthlyAmount)
	be.Equal(t, "2025-03-05", recurring[0].LastDate.String())
}

func TestRecurringIgnoresUnstableAmounts(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "Groceries", "food", -40, pluto.NewDate(2025, 1, 3)),
		tx("t2", "Groceries", "food", -220, pluto.NewDate(2025, 2, 3)),
	}

	be.Equal(t, 0, len(Recurring(ts)))
}

func TestRecurringRequiresTwoMonths(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "Gym", "health", -30, pluto.NewDate(2025, 1, 2)),
		tx("t2", "Gym", "health", -30, pluto.NewDate(2025, 1, 20)),
	}

	be.Equal(t, 0, len(Recurring(ts)))
}

func TestRecurringSkipsIncome(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "Salary", "income", 2000, pluto.NewDate(2025, 1, 1)),
		tx("t2", "Salary", "income", 2000, pluto.NewDate(2025, 2, 1)),
	}

	be.Equal(t, 0, len(Recurring(ts)))
}

func TestRecurringMatchesNameCaseInsensitively(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "Spotify", "entertainment", -9.99, pluto.NewDate(2025, 1, 9)),
		tx("t2", "SPOTIFY", "entertainment", -9.99, pluto.NewDate(2025, 2, 9)),
	}

	recurring := Recurring(ts)

	be.Equal(t, 1, len(recurring))
	be.Equal(t, 2, recurring[0].Occurrences)
}
