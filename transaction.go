package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

// transactionItem wraps a transaction for the bubbles list.
type transactionItem struct {
	t           pluto.Transaction
	accountName string
}

func (t transactionItem) Title() string {
	name := t.t.Name
	if name == "" {
		name = t.t.MerchantName
	}
	if t.t.Pending {
		name += " (pending)"
	}
	return name
}

func (t transactionItem) Description() string {
	category := t.t.Category
	if category == "" {
		category = "uncategorized"
	}

	return fmt.Sprintf("%s | %s | %s | %s",
		t.t.Date.Format("2006-01-02"),
		category,
		t.accountName,
		t.t.DisplayAmount(),
	)
}

func (t transactionItem) FilterValue() string {
	return t.t.Name + " " + t.t.MerchantName + " " + t.t.Category
}

// visibleTransactions applies the active category filter, the global
// search token and the current sort to the fetched list.
func (m *model) visibleTransactions() []pluto.Transaction {
	filter := ledger.Filter{
		Category:    m.categoryFilter,
		GlobalQuery: m.searchInput.Value(),
	}

	ts := filter.Apply(m.transactionList)
	if m.cfg.HidePendingTransactions {
		ts = slices.DeleteFunc(ts, func(t pluto.Transaction) bool { return t.Pending })
	}

	return ledger.Sort(ts, m.sortKey, m.sortDir)
}

// updateTransactions rebuilds the list items from the fetched
// transactions. Called after every fetch, filter or sort change.
func (m *model) updateTransactions() tea.Cmd {
	ts := m.visibleTransactions()

	items := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		items = append(items, transactionItem{
			t:           t,
			accountName: m.accountNames[t.AccountID],
		})
	}

	m.transactionsList.Title = m.transactionListTitle(len(ts))

	return m.transactionsList.SetItems(items)
}

func (m *model) transactionListTitle(visible int) string {
	title := fmt.Sprintf("%d transactions", visible)
	if m.categoryFilter != ledger.CategoryAll {
		title += " | " + m.categoryFilter
	}
	if len(m.skippedAccounts) > 0 {
		title += fmt.Sprintf(" | %d accounts unavailable", len(m.skippedAccounts))
	}
	return title
}

// handleTransactionKeys handles filter and sort shortcuts local to the
// transactions view.
func (m model) handleTransactionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f":
		m.categoryFilter = m.nextCategory()
		return m, m.updateTransactions()
	case "d":
		m.sortKey = ledger.SortByDate
		return m, m.updateTransactions()
	case "a":
		m.sortKey = ledger.SortByAmount
		return m, m.updateTransactions()
	case "n":
		m.sortKey = ledger.SortByName
		return m, m.updateTransactions()
	case "r":
		if m.sortDir == ledger.Descending {
			m.sortDir = ledger.Ascending
		} else {
			m.sortDir = ledger.Descending
		}
		return m, m.updateTransactions()
	}

	return m, nil
}

// nextCategory cycles through the categories present in the fetched
// list, returning to "all" after the last one.
func (m model) nextCategory() string {
	categories := make([]string, 0)
	seen := map[string]bool{}
	for _, t := range m.transactionList {
		if t.Category == "" || seen[strings.ToLower(t.Category)] {
			continue
		}
		seen[strings.ToLower(t.Category)] = true
		categories = append(categories, t.Category)
	}
	slices.Sort(categories)

	if len(categories) == 0 {
		return ledger.CategoryAll
	}

	if m.categoryFilter == ledger.CategoryAll {
		return categories[0]
	}

	idx := slices.Index(categories, m.categoryFilter)
	if idx < 0 || idx == len(categories)-1 {
		return ledger.CategoryAll
	}
	return categories[idx+1]
}
