package main

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluto-fi/plutotui/chart"
	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

// displayMoney formats a float amount the same way every view does.
func displayMoney(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}

func (m model) incomeView() string {
	ts := m.visibleTransactions()

	incoming := make([]pluto.Transaction, 0, len(ts))
	for _, t := range ts {
		if t.IsIncome() {
			incoming = append(incoming, t)
		}
	}

	var b strings.Builder

	total := ledger.IncomeTotal(ts)
	b.WriteString(m.styles.cardStyle.Render(
		fmt.Sprintf("total income\n%s", m.styles.incomeStyle.Render(displayMoney(total))),
	))
	b.WriteString("\n\n")

	byMonth := chart.Series(ledger.ByMonth(incoming, m.currentPeriod.Year()))
	b.WriteString(m.styles.titleStyle.Render("income by month"))
	b.WriteString("\n")
	b.WriteString(chart.BarChart(byMonth, barChartWidth, displayMoney))
	b.WriteString("\n\n")

	bySource := chart.TopN(chart.Series(ledger.ByCategory(incoming)), topCategoryCount)
	if len(bySource) > 0 {
		b.WriteString(m.styles.titleStyle.Render("top sources"))
		b.WriteString("\n")
		b.WriteString(chart.BarChart(bySource, barChartWidth, displayMoney))
	}

	return b.String()
}

// statsCard renders the descriptive statistics shared by the income
// and spending views.
func (m model) statsCard() string {
	source := "computed locally"
	if m.summary != nil {
		source = "from backend"
	}

	rows := []string{
		fmt.Sprintf("transactions  %d", m.stats.Count),
		fmt.Sprintf("mean          %s", displayMoney(m.stats.Mean)),
		fmt.Sprintf("median        %s", displayMoney(m.stats.Median)),
		fmt.Sprintf("std dev       %s", displayMoney(m.stats.StdDev)),
		fmt.Sprintf("range         %s to %s", displayMoney(m.stats.Min), displayMoney(m.stats.Max)),
		m.styles.statusStyle.Render(source),
	}

	return m.styles.cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
