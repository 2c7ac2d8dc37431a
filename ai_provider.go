package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pluto-fi/plutotui/chart"
	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

// AIProvider answers a free-form question about the user's finances.
// The snapshot carries the fetched data so the provider never calls
// the backend itself.
type AIProvider interface {
	Ask(ctx context.Context, question string, snapshot FinanceSnapshot) (string, error)
}

// FinanceSnapshot is the financial context handed to a provider with
// each question.
type FinanceSnapshot struct {
	Period       string
	Stats        ledger.Stats
	TopSpending  []chart.Point
	Transactions []pluto.Transaction
	Goals        int
}

// cannedProvider answers from the snapshot alone. It is the default
// when no Anthropic API key is configured, and what tests run against.
type cannedProvider struct{}

func (cannedProvider) Ask(_ context.Context, question string, snapshot FinanceSnapshot) (string, error) {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "spend") || strings.Contains(q, "spent"):
		if len(snapshot.TopSpending) == 0 {
			return "No spending recorded for " + snapshot.Period + ".", nil
		}
		top := snapshot.TopSpending[0]
		return fmt.Sprintf(
			"You spent %s in %s. Your biggest category was %s at %s.",
			displayMoney(snapshot.Stats.ExpenseTotal), snapshot.Period, top.Label, displayMoney(top.Value),
		), nil

	case strings.Contains(q, "income") || strings.Contains(q, "earn"):
		return fmt.Sprintf(
			"Your income for %s was %s, against %s in expenses.",
			snapshot.Period, displayMoney(snapshot.Stats.IncomeTotal), displayMoney(snapshot.Stats.ExpenseTotal),
		), nil

	case strings.Contains(q, "sav") || strings.Contains(q, "goal"):
		return fmt.Sprintf(
			"Your net flow for %s is %s. You are tracking %d savings goals.",
			snapshot.Period, displayMoney(snapshot.Stats.NetFlow), snapshot.Goals,
		), nil
	}

	return fmt.Sprintf(
		"For %s: %d transactions, %s in, %s out, %s net. Ask about spending, income or goals for more.",
		snapshot.Period,
		snapshot.Stats.Count,
		displayMoney(snapshot.Stats.IncomeTotal),
		displayMoney(snapshot.Stats.ExpenseTotal),
		displayMoney(snapshot.Stats.NetFlow),
	), nil
}

// snapshot assembles the provider context from the current model
// state.
func (m model) snapshot() FinanceSnapshot {
	outgoing := make([]pluto.Transaction, 0, len(m.transactionList))
	for _, t := range m.transactionList {
		if !t.IsIncome() {
			outgoing = append(outgoing, t)
		}
	}

	return FinanceSnapshot{
		Period:       m.period.String(),
		Stats:        m.stats,
		TopSpending:  chart.TopN(chart.Series(ledger.ByCategory(outgoing)), topCategoryCount),
		Transactions: m.transactionList,
		Goals:        len(m.goals.Goals()),
	}
}
