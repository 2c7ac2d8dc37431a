package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// route is one addressable location: a view plus the search token that
// was active there. Routes drive back navigation, replacing the
// original hash-fragment scheme with a single source of truth for the
// active view and its parameters.
type route struct {
	view   sessionState
	search string
}

// navigate switches to the given view, pushing the current route onto
// the history stack and kicking off the fetches the view needs.
func (m *model) navigate(view sessionState) (tea.Model, tea.Cmd) {
	if m.sessionState == view {
		return m, nil
	}

	log.Debug("navigating", "from", m.sessionState.String(), "to", view.String())

	// error and loading screens are not destinations worth returning to
	if m.sessionState != errorState && m.sessionState != loading {
		m.history = append(m.history, route{view: m.sessionState, search: m.searchInput.Value()})
	}
	m.previousSessionState = m.sessionState

	return m.enter(view)
}

// popRoute removes and returns the most recent history entry.
func (m *model) popRoute() (route, bool) {
	if len(m.history) == 0 {
		return route{}, false
	}

	r := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return r, true
}

// restoreRoute re-enters a popped route, restoring its search token.
func (m *model) restoreRoute(r route) (tea.Model, tea.Cmd) {
	m.searchInput.SetValue(r.search)
	m.previousSessionState = m.sessionState
	return m.enter(r.view)
}

// goBack pops one history entry, staying put when there is none.
func (m *model) goBack() (tea.Model, tea.Cmd) {
	if r, ok := m.popRoute(); ok {
		return m.restoreRoute(r)
	}
	return m, nil
}

// enter activates a view and returns the commands that load its data.
// Views that work off the shared transaction list refetch when the
// list is missing or stale.
func (m *model) enter(view sessionState) (tea.Model, tea.Cmd) {
	switch view {
	case settingsState:
		m.settings.SetFocus(true)
		m.sessionState = settingsState
		return m, noopCmd

	case savingsState:
		m.sessionState = savingsState
		return m, noopCmd

	case chatState:
		m.sessionState = chatState
		return m, m.chatInput.Focus()

	case loginState:
		m.sessionState = loginState
		return m, m.loginForm.Init()

	case overviewState, incomeState, spendingState, transactions:
		m.sessionState = view
		if m.transactionList == nil {
			m.previousSessionState = view
			m.sessionState = loading
			return m, m.reloadMissing()
		}
		return m, noopCmd
	}

	m.sessionState = view
	return m, noopCmd
}

// reloadMissing refetches whichever loads have not settled yet, so a
// view entered after a failed startup fetch still fills in. Accounts
// chain into transactions, so only one of the two is issued.
func (m *model) reloadMissing() tea.Cmd {
	cmds := []tea.Cmd{m.loadingSpinner.Tick}

	if !m.loadingState["accounts"] {
		m.loadingState.unset("transactions")
		cmds = append(cmds, m.getAccounts)
	} else {
		cmds = append(cmds, m.getTransactions())
	}

	if !m.loadingState["summary"] {
		cmds = append(cmds, m.getSummary)
	}

	return tea.Batch(cmds...)
}

// advancePeriod advances the current period by one month or year depending on the period type.
func advancePeriod(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(0, 1, 0)
	}

	if m.periodType == annualPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(1, 0, 0)
	}

	return reloadPeriodData(m)
}

// retrievePreviousPeriod retrieves the previous period by one month or year depending on the period type.
func retrievePreviousPeriod(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(0, -1, 0)
	}

	if m.periodType == annualPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(-1, 0, 0)
	}

	return reloadPeriodData(m)
}

func switchPeriodType(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.periodType = annualPeriodType
	} else {
		m.periodType = monthlyPeriodType
	}

	return reloadPeriodData(m)
}

// reloadPeriodData refetches the transaction window after any period
// change. The fetch carries a new sequence number so a response from
// the previous window cannot overwrite this one.
func reloadPeriodData(m *model) (tea.Model, tea.Cmd) {
	m.period.setPeriod(m.currentPeriod, m.periodType)
	m.previousSessionState = m.sessionState
	m.sessionState = loading
	m.loadingState.unset("transactions")
	return m, m.getTransactions()
}

// refreshCurrentView refetches everything the active view depends on.
// This is the manual recovery path after a partial fetch failure.
func refreshCurrentView(m *model) (tea.Model, tea.Cmd) {
	target := m.sessionState
	if target == errorState || target == loading {
		target = overviewState
	}
	m.previousSessionState = target
	m.sessionState = loading
	m.loadingState.unset("accounts")
	m.loadingState.unset("transactions")
	m.loadingState.unset("summary")
	return m, tea.Batch(m.getAccounts, m.getTransactions(), m.getSummary)
}
