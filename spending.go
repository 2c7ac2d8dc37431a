package main

import (
	"fmt"
	"strings"

	"github.com/pluto-fi/plutotui/chart"
	"github.com/pluto-fi/plutotui/goal"
	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

func (m model) spendingView() string {
	ts := m.visibleTransactions()

	outgoing := make([]pluto.Transaction, 0, len(ts))
	for _, t := range ts {
		if !t.IsIncome() {
			outgoing = append(outgoing, t)
		}
	}

	var b strings.Builder

	total := ledger.ExpenseTotal(ts)
	net := ledger.NetFlow(ts)
	b.WriteString(m.styles.cardStyle.Render(fmt.Sprintf(
		"total spending\n%s\nnet flow %s",
		m.styles.expenseStyle.Render(displayMoney(total)),
		displayMoney(net),
	)))
	b.WriteString("\n\n")

	byCategory := chart.TopN(chart.Series(ledger.ByCategory(outgoing)), topCategoryCount)
	b.WriteString(m.styles.titleStyle.Render("top categories"))
	b.WriteString("\n")
	b.WriteString(chart.BarChart(byCategory, barChartWidth, displayMoney))
	b.WriteString("\n\n")

	b.WriteString(m.styles.titleStyle.Render("budgets"))
	b.WriteString("\n")
	b.WriteString(m.budgetLines(byCategory))
	b.WriteString("\n\n")

	if recurring := m.recurringLines(ts); recurring != "" {
		b.WriteString(m.styles.titleStyle.Render("recurring"))
		b.WriteString("\n")
		b.WriteString(recurring)
		b.WriteString("\n\n")
	}

	b.WriteString(m.statsCard())

	return b.String()
}

// recurringLines lists stable monthly charges detected in the window.
// Annual mode is the interesting one: a month window rarely holds two
// occurrences of anything.
func (m model) recurringLines(ts []pluto.Transaction) string {
	recurring := ledger.Recurring(ts)
	if len(recurring) == 0 {
		return ""
	}

	lines := make([]string, 0, len(recurring))
	for _, r := range recurring {
		lines = append(lines, fmt.Sprintf("%-16s %s/month, seen %d times, last %s",
			r.Name, displayMoney(r.MonthlyAmount), r.Occurrences, r.LastDate.String()))
	}

	return strings.Join(lines, "\n")
}

// budgetLines renders per-category spend against its budget. Without
// a user-set budget the derived heuristic value is marked estimated.
func (m model) budgetLines(byCategory []chart.Point) string {
	if len(byCategory) == 0 {
		return m.styles.statusStyle.Render("no spending this period")
	}

	lines := make([]string, 0, len(byCategory))
	for _, p := range byCategory {
		budget, derived := goal.BudgetFor(m.cfg.Budgets[p.Label], p.Value)

		line := fmt.Sprintf("%-16s %s of %s", p.Label, displayMoney(p.Value), displayMoney(budget))
		if derived {
			line += m.styles.statusStyle.Render(" (estimated)")
		}
		if p.Value > budget {
			line += m.styles.errorStyle.Render(" over budget")
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
