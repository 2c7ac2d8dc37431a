// Package overview renders the summary dashboard: the income/spending
// summary, the account tree with net worth, the spending breakdown and
// the Pluto score.
package overview

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

var titleCaser = cases.Title(language.English)

// Model defines the state for the overview widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	accounts     []pluto.Account
	transactions []pluto.Transaction
	accountNames map[string]string

	// summary is the backend financial summary when available; totals
	// fall back to local aggregation without it
	summary *pluto.FinancialSummary
	score   *pluto.PlutoScore

	accountTree *tree.Tree
}

type Styles struct {
	IncomeStyle      lipgloss.Style
	SpentStyle       lipgloss.Style
	TreeRootStyle    lipgloss.Style
	AccountTypeStyle lipgloss.Style
	AccountStyle     lipgloss.Style
	SummaryStyle     lipgloss.Style
	HeaderStyle      lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		TreeRootStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		AccountTypeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		AccountStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		SummaryStyle:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		HeaderStyle:      lipgloss.NewStyle().Bold(true),
	}
}

// Colors carries the theme colors the widget should pick up.
type Colors struct {
	Primary string
}

type Option func(*Model)

// WithColors overrides the default styling with theme colors.
func WithColors(colors Colors) Option {
	return func(m *Model) {
		if colors.Primary != "" {
			m.Styles.HeaderStyle = m.Styles.HeaderStyle.Foreground(lipgloss.Color(colors.Primary))
			m.Styles.AccountStyle = m.Styles.AccountStyle.Foreground(lipgloss.Color(colors.Primary))
		}
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:      defaultStyles(),
		Viewport:    viewport.New(0, 20),
		accountTree: tree.New(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetAccounts replaces the linked accounts and rebuilds the tree.
func (m *Model) SetAccounts(accounts []pluto.Account) {
	m.accounts = accounts
	m.updateAccountTree()
	m.UpdateViewport()
}

// SetTransactions replaces the transaction list the breakdown and
// local totals derive from. The names map resolves account masks to
// display names.
func (m *Model) SetTransactions(transactions []pluto.Transaction, names map[string]string) {
	m.transactions = transactions
	m.accountNames = names
	m.UpdateViewport()
}

// SetSummary sets the backend summary, preferred over local totals.
func (m *Model) SetSummary(summary *pluto.FinancialSummary) {
	m.summary = summary
	m.UpdateViewport()
}

// SetScore sets the Pluto financial health score.
func (m *Model) SetScore(score *pluto.PlutoScore) {
	m.score = score
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func display(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}

func (m *Model) UpdateViewport() {
	accountTreeContent := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(lipgloss.Top,
				m.accountTree.String(),
				fmt.Sprintf("Estimated Net Worth: %s", m.Styles.IncomeStyle.Render(display(m.netWorth()))),
				m.accountActivity(),
			),
		)

	spendingBreakdown := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(lipgloss.Top,
				lipgloss.NewStyle().Bold(true).Render("Spending Breakdown"),
				table.New(
					table.WithColumns([]table.Column{
						{Title: "Category", Width: 20},
						{Title: "Total Spent", Width: 15},
						{Title: "% of Total", Width: 10},
					}),
					table.WithRows(m.spendingBreakdown()),
				).View(),
			),
		)

	panels := []string{m.summaryView(), accountTreeContent, spendingBreakdown}
	if scoreView := m.scoreView(); scoreView != "" {
		panels = append(panels, scoreView)
	}

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.HeaderStyle.Render("Overview"),
			lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		),
	)
}

// totals prefers the backend summary, falling back to local
// aggregation of the fetched transactions.
func (m *Model) totals() (income, spent, net float64) {
	if m.summary != nil {
		return m.summary.TotalIncome, m.summary.TotalExpenses, m.summary.TotalIncome - m.summary.TotalExpenses
	}

	return ledger.IncomeTotal(m.transactions),
		ledger.ExpenseTotal(m.transactions),
		ledger.NetFlow(m.transactions)
}

func (m Model) summaryView() string {
	income, spent, net := m.totals()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Income: %s\n", m.Styles.IncomeStyle.Render(display(income))))
	b.WriteString(fmt.Sprintf("Spent: %s\n", m.Styles.SpentStyle.Render(display(spent))))
	if net < 0 {
		b.WriteString(fmt.Sprintf("Net Flow: %s", m.Styles.SpentStyle.Render(display(net))))
	} else {
		b.WriteString(fmt.Sprintf("Net Flow: %s", m.Styles.IncomeStyle.Render(display(net))))
	}

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m Model) scoreView() string {
	if m.score == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Pluto Score: %.0f / 100\n", m.score.Score))
	b.WriteString(fmt.Sprintf("Savings Rate: %.1f%%\n", m.score.SavingsRate*100))
	b.WriteString(fmt.Sprintf("Categories: %d", m.score.CategoryDiversity))

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m *Model) spendingBreakdown() []table.Row {
	outgoing := make([]pluto.Transaction, 0, len(m.transactions))
	for _, t := range m.transactions {
		if !t.IsIncome() {
			outgoing = append(outgoing, t)
		}
	}

	buckets := ledger.SortByTotal(ledger.ByCategory(outgoing))
	totalSpent := ledger.BucketSum(buckets)

	rows := make([]table.Row, 0, len(buckets))
	for _, b := range buckets {
		percentage := 0.0
		if totalSpent > 0 {
			percentage = b.Total / totalSpent * 100
		}
		category := b.Key
		if category == "" {
			category = "uncategorized"
		}
		rows = append(rows, table.Row{titleCaser.String(category), display(b.Total), fmt.Sprintf("%.2f%%", percentage)})
	}

	return rows
}

// accountActivity shows total transaction volume per account, busiest
// first.
func (m *Model) accountActivity() string {
	buckets := ledger.SortByTotal(ledger.ByAccount(m.transactions, m.accountNames))
	if len(buckets) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nActivity:\n")
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "%s %s\n", m.Styles.AccountStyle.Render(bucket.Key), display(bucket.Total))
	}

	return strings.TrimRight(b.String(), "\n")
}

// netWorth sums account balances, counting credit balances as debt.
func (m *Model) netWorth() float64 {
	var netWorth float64
	for _, a := range m.accounts {
		if a.Type == "credit" {
			netWorth -= a.Balance
			continue
		}
		netWorth += a.Balance
	}
	return netWorth
}

func (m *Model) updateAccountTree() {
	m.accountTree = tree.New()
	m.accountTree.Root(m.Styles.TreeRootStyle.Render("Accounts"))

	// group accounts by type
	byType := make(map[string][]pluto.Account)
	order := make([]string, 0)
	for _, a := range m.accounts {
		if _, ok := byType[a.Type]; !ok {
			order = append(order, a.Type)
		}
		byType[a.Type] = append(byType[a.Type], a)
	}

	for _, typeName := range order {
		typeTree := tree.New().Root(titleCaser.String(m.Styles.AccountTypeStyle.Render(typeName)))
		for _, a := range byType[typeName] {
			text := fmt.Sprintf("%s (%s)", a.DisplayName(), a.DisplayBalance())
			typeTree.Child(m.Styles.AccountStyle.Render(text))
		}

		m.accountTree.Child(typeTree)
	}
}
