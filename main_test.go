package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pluto-fi/plutotui/overview"
	"github.com/pluto-fi/plutotui/pluto"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testModel() model {
	m := model{
		keys:                 initializeKeyMap(),
		sessionState:         overviewState,
		previousSessionState: overviewState,
		loadingState:         newLoadingState("accounts", "transactions", "summary"),
		searchInput:          textinput.New(),
		overview:             overview.New(),
		transactionsList:     list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0),
		transactionList:      []pluto.Transaction{},
		currentPeriod:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		periodType:           monthlyPeriodType,
	}
	m.period.setPeriod(m.currentPeriod, m.periodType)
	m.loadingState.set("accounts")
	m.loadingState.set("transactions")
	m.loadingState.set("summary")
	return m
}

func TestViewNavigation(t *testing.T) {
	tests := []struct {
		key      rune
		expected sessionState
	}{
		{'t', transactions},
		{'i', incomeState},
		{'s', spendingState},
		{'v', savingsState},
		{'g', settingsState},
	}

	for _, tt := range tests {
		m := testModel()

		resultModel, cmd := handleKeyPress(keyMsg(tt.key), &m)
		result := resultModel.(*model)

		be.Equal(t, tt.expected, result.sessionState)
		be.Nonzero(t, cmd)
	}
}

func TestNavigationPushesHistory(t *testing.T) {
	m := testModel()

	resultModel, _ := handleKeyPress(keyMsg('t'), &m)
	result := resultModel.(*model)

	be.Equal(t, 1, len(result.history))
	be.Equal(t, overviewState, result.history[0].view)
}

func TestEscapePopsHistory(t *testing.T) {
	m := testModel()

	_, _ = handleKeyPress(keyMsg('t'), &m)
	be.Equal(t, transactions, m.sessionState)

	resultModel, _ := handleKeyPress(tea.KeyMsg{Type: tea.KeyEscape}, &m)
	result := resultModel.(*model)

	be.Equal(t, overviewState, result.sessionState)
	be.Equal(t, 0, len(result.history))
}

func TestEscapeWithEmptyHistoryStaysPut(t *testing.T) {
	m := testModel()

	resultModel, _ := handleKeyPress(tea.KeyMsg{Type: tea.KeyEscape}, &m)
	result := resultModel.(*model)

	be.Equal(t, overviewState, result.sessionState)
}

func TestEscapeRestoresSearch(t *testing.T) {
	m := testModel()
	m.searchInput.SetValue("coffee")

	_, _ = handleKeyPress(keyMsg('s'), &m)
	m.searchInput.SetValue("rent")

	resultModel, _ := handleKeyPress(tea.KeyMsg{Type: tea.KeyEscape}, &m)
	result := resultModel.(*model)

	be.Equal(t, overviewState, result.sessionState)
	be.Equal(t, "coffee", result.searchInput.Value())
}

func TestSearchFocusBlocksNavigation(t *testing.T) {
	m := testModel()

	_, cmd := handleKeyPress(keyMsg('/'), &m)
	be.Nonzero(t, cmd)
	be.True(t, m.searchFocused)

	// navigation keys must not change the view while typing a query
	resultModel, _ := handleKeyPress(keyMsg('t'), &m)
	result := resultModel.(*model)
	be.Equal(t, overviewState, result.sessionState)

	// esc dismisses the search bar
	_, _ = handleKeyPress(tea.KeyMsg{Type: tea.KeyEscape}, &m)
	be.True(t, !m.searchFocused)
}

func TestQuitIgnoredWhileSearching(t *testing.T) {
	m := testModel()
	m.searchFocused = true

	_, cmd := handleKeyPress(keyMsg('q'), &m)
	if cmd != nil {
		be.Unequal(t, tea.Quit(), cmd())
	}
}

func TestNavigatingToSameViewIsNoop(t *testing.T) {
	m := testModel()

	resultModel, cmd := handleKeyPress(keyMsg('o'), &m)
	result := resultModel.(*model)

	be.Equal(t, overviewState, result.sessionState)
	be.Equal(t, 0, len(result.history))
	if cmd != nil {
		t.Error("expected no command when navigating to the active view")
	}
}

func TestStaleTransactionFetchDropped(t *testing.T) {
	m := testModel()
	m.fetchSeq = 2
	m.transactionList = []pluto.Transaction{{TransactionID: "keep"}}

	updated, _ := m.handleTransactions(transactionsMsg{
		seq:          1,
		transactions: []pluto.Transaction{{TransactionID: "stale"}},
	})

	be.Equal(t, 1, len(updated.transactionList))
	be.Equal(t, "keep", updated.transactionList[0].TransactionID)
}

func TestCurrentTransactionFetchApplied(t *testing.T) {
	m := testModel()
	m.fetchSeq = 2

	updated, _ := m.handleTransactions(transactionsMsg{
		seq:          2,
		transactions: []pluto.Transaction{{TransactionID: "fresh", Amount: -10}},
		skipped:      []string{"1234"},
	})

	be.Equal(t, 1, len(updated.transactionList))
	be.Equal(t, "fresh", updated.transactionList[0].TransactionID)
	be.Equal(t, 1, len(updated.skippedAccounts))
}

func TestSummaryFallbackComputesLocalStats(t *testing.T) {
	m := testModel()
	m.transactionList = []pluto.Transaction{
		{TransactionID: "t1", Amount: 1000},
		{TransactionID: "t2", Amount: -200},
	}

	updated, _ := m.handleSummary(summaryMsg{})

	be.Equal(t, 1000, updated.stats.IncomeTotal)
	be.Equal(t, 200, updated.stats.ExpenseTotal)
	be.Equal(t, 800, updated.stats.NetFlow)
}

func TestSummaryPreferredOverLocalStats(t *testing.T) {
	m := testModel()
	m.transactionList = []pluto.Transaction{{TransactionID: "t1", Amount: 5}}

	updated, _ := m.handleSummary(summaryMsg{
		summary: &pluto.FinancialSummary{
			MathematicalSummary: pluto.MathematicalSummary{
				IncomeTotal:  9000,
				ExpenseTotal: 4000,
				NetFlow:      5000,
			},
		},
	})

	be.Equal(t, 9000, updated.stats.IncomeTotal)
}

func TestCheckIfLoading(t *testing.T) {
	m := testModel()
	m.loadingState.unset("transactions")
	m.previousSessionState = spendingState

	be.Equal(t, loading, m.checkIfLoading())

	m.loadingState.set("transactions")
	be.Equal(t, spendingState, m.checkIfLoading())
}

func TestNavigationFromErrorStateRecovers(t *testing.T) {
	m := testModel()
	m.sessionState = errorState
	m.loadingState = newLoadingState("accounts", "transactions", "summary")
	m.transactionList = nil

	resultModel, cmd := handleKeyPress(keyMsg('t'), &m)
	result := resultModel.(*model)

	be.Equal(t, loading, result.sessionState)
	be.Equal(t, transactions, result.previousSessionState)
	be.Nonzero(t, cmd)
	// the error screen is not a destination esc should return to
	be.Equal(t, 0, len(result.history))

	updated, _ := m.Update(accountsMsg{accounts: []pluto.Account{
		{ID: 1, Name: "Checking", Mask: "1234", Type: "checking"},
	}})
	m = updated.(model)

	updated, _ = m.Update(summaryMsg{})
	m = updated.(model)
	be.Equal(t, loading, m.sessionState)

	updated, _ = m.Update(transactionsMsg{seq: m.fetchSeq, transactions: []pluto.Transaction{
		{TransactionID: "t1", Name: "Coffee", Amount: -4.50, Category: "food", AccountID: "1234"},
	}})
	m = updated.(model)

	be.Equal(t, transactions, m.sessionState)
	be.Equal(t, 1, len(m.transactionList))
}

func TestAbortedLoginFormQuits(t *testing.T) {
	m := testModel()
	m.sessionState = loginState
	m.loginForm = newLoginForm()
	m.loginForm.State = huh.StateAborted

	_, cmd := m.updateLoginForm(keyMsg('x'))

	be.Nonzero(t, cmd)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit command, got %T", cmd())
	}
}

func TestRefreshFromErrorStateLandsOnOverview(t *testing.T) {
	m := testModel()
	m.sessionState = errorState
	m.loadingState = newLoadingState("accounts", "transactions", "summary")
	m.transactionList = nil

	resultModel, cmd := handleKeyPress(keyMsg('R'), &m)
	result := resultModel.(*model)

	be.Equal(t, loading, result.sessionState)
	be.Equal(t, overviewState, result.previousSessionState)
	be.Nonzero(t, cmd)
}

func TestPeriodNavigationReloads(t *testing.T) {
	m := testModel()
	m.sessionState = spendingState

	resultModel, cmd := handleKeyPress(keyMsg(']'), &m)
	result := resultModel.(*model)

	be.Equal(t, loading, result.sessionState)
	be.Equal(t, spendingState, result.previousSessionState)
	be.Equal(t, time.April, result.currentPeriod.Month())
	be.Nonzero(t, cmd)
	be.Equal(t, 1, result.fetchSeq)
}

func TestSwitchPeriodType(t *testing.T) {
	m := testModel()

	_, _ = handleKeyPress(keyMsg('p'), &m)
	be.Equal(t, annualPeriodType, m.periodType)

	m.sessionState = overviewState
	_, _ = handleKeyPress(keyMsg('p'), &m)
	be.Equal(t, monthlyPeriodType, m.periodType)
}
