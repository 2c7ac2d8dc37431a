package overview

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/pluto-fi/plutotui/pluto"
)

func TestUpdateAccountTree_GroupsByType(t *testing.T) {
	m := New()

	m.SetAccounts([]pluto.Account{
		{ID: 1, Name: "Everyday Checking", Type: "checking", Mask: "1111", Balance: 1200},
		{ID: 2, Name: "Bills Checking", Type: "checking", Mask: "2222", Balance: 300},
		{ID: 3, Name: "Rainy Day", Type: "savings", Mask: "3333", Balance: 5000},
	})

	treeString := m.accountTree.String()

	// both checking accounts live under a single Checking node
	lines := strings.Split(treeString, "\n")
	checkingTypeLines := 0
	for _, line := range lines {
		if (strings.Contains(line, "├── Checking") || strings.Contains(line, "└── Checking")) &&
			!strings.Contains(line, "(") {
			checkingTypeLines++
		}
	}
	if checkingTypeLines != 1 {
		t.Errorf("Expected exactly one 'Checking' type node, but found %d", checkingTypeLines)
		t.Logf("Tree output:\n%s", treeString)
	}

	be.True(t, strings.Contains(treeString, "Everyday Checking"))
	be.True(t, strings.Contains(treeString, "Bills Checking"))
	be.True(t, strings.Contains(treeString, "Rainy Day"))
}

func TestNetWorthCountsCreditAsDebt(t *testing.T) {
	m := New()
	m.SetAccounts([]pluto.Account{
		{ID: 1, Name: "Checking", Type: "checking", Balance: 1000},
		{ID: 2, Name: "Card", Type: "credit", Balance: 250},
	})

	be.Equal(t, 750, m.netWorth())
}

func TestTotalsPreferBackendSummary(t *testing.T) {
	m := New()
	m.SetTransactions([]pluto.Transaction{
		{TransactionID: "t1", Name: "Salary", Amount: 1000, Category: "income"},
		{TransactionID: "t2", Name: "Rent", Amount: -200, Category: "housing"},
	}, nil)

	income, spent, net := m.totals()
	be.Equal(t, 1000, income)
	be.Equal(t, 200, spent)
	be.Equal(t, 800, net)

	m.SetSummary(&pluto.FinancialSummary{TotalIncome: 5000, TotalExpenses: 3000})

	income, spent, net = m.totals()
	be.Equal(t, 5000, income)
	be.Equal(t, 3000, spent)
	be.Equal(t, 2000, net)
}

func TestSpendingBreakdownSkipsIncome(t *testing.T) {
	m := New()
	m.SetTransactions([]pluto.Transaction{
		{TransactionID: "t1", Name: "Salary", Amount: 1000, Category: "income"},
		{TransactionID: "t2", Name: "Rent", Amount: -300, Category: "housing"},
		{TransactionID: "t3", Name: "Groceries", Amount: -100, Category: "food"},
	}, nil)

	rows := m.spendingBreakdown()
	be.Equal(t, 2, len(rows))

	// sorted by spend, housing first
	be.Equal(t, "Housing", rows[0][0])
	be.Equal(t, "75.00%", rows[0][2])
	be.Equal(t, "Food", rows[1][0])
	be.Equal(t, "25.00%", rows[1][2])
}
