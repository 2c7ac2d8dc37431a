package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	overview     key.Binding
	income       key.Binding
	spending     key.Binding
	savings      key.Binding
	transactions key.Binding
	settings     key.Binding
	chat         key.Binding
	search       key.Binding
	refresh      key.Binding
	nextPeriod   key.Binding
	prevPeriod   key.Binding
	switchPeriod key.Binding
	back         key.Binding
	fullHelp     key.Binding
	quit         key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.overview,
		km.transactions,
		km.income,
		km.spending,
		km.savings,
		km.search,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.income,
			km.spending,
			km.savings,
			km.transactions,
			km.settings,
			km.chat,
		},
		{
			km.search,
			km.refresh,
			km.nextPeriod,
			km.prevPeriod,
			km.switchPeriod,
			km.back,
			km.quit,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		income: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "income"),
		),
		spending: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spending"),
		),
		savings: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "savings"),
		),
		transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		settings: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "settings"),
		),
		chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chat"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search everywhere"),
		),
		refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		nextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next period"),
		),
		prevPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous period"),
		),
		switchPeriod: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "switch range"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is captured by the search bar or an active form
	if isInputBlocked(m) {
		return m, nil
	}

	// Handle period navigation keys
	if model, cmd := handlePeriodKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Handle view navigation
	if model, cmd := handleViewKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) && !m.searchFocused && m.sessionState != chatState && m.sessionState != loginState {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.back) {
		return handleEscape(msg, m)
	}

	if key.Matches(msg, m.keys.search) && !m.searchFocused && m.sessionState != chatState && m.sessionState != loginState {
		m.searchFocused = true
		return m, m.searchInput.Focus()
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.searchFocused {
		return true
	}

	if m.sessionState == loading || m.sessionState == chatState || m.sessionState == loginState {
		return true
	}

	if m.addGoalForm != nil && m.addGoalForm.State == huh.StateNormal {
		return true
	}

	return false
}

func handlePeriodKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.nextPeriod):
		return advancePeriod(m)
	case key.Matches(msg, m.keys.prevPeriod):
		return retrievePreviousPeriod(m)
	case key.Matches(msg, m.keys.switchPeriod):
		return switchPeriodType(m)
	case key.Matches(msg, m.keys.refresh):
		return refreshCurrentView(m)
	}

	return m, nil
}

func handleViewKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.overview):
		return m.navigate(overviewState)
	case key.Matches(msg, m.keys.income):
		return m.navigate(incomeState)
	case key.Matches(msg, m.keys.spending):
		return m.navigate(spendingState)
	case key.Matches(msg, m.keys.savings):
		return m.navigate(savingsState)
	case key.Matches(msg, m.keys.transactions):
		return m.navigate(transactions)
	case key.Matches(msg, m.keys.settings):
		return m.navigate(settingsState)
	case key.Matches(msg, m.keys.chat):
		return m.navigate(chatState)
	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, noopCmd
	}

	return m, nil
}

// noopCmd exists so key handlers can signal "handled" without
// scheduling work.
func noopCmd() tea.Msg { return nil }

// handleEscape pops the navigation history, or dismisses the search
// bar when it is focused.
func handleEscape(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		m.searchFocused = false
		m.searchInput.Blur()
		return m, noopCmd
	}

	if m.addGoalForm != nil && m.addGoalForm.State == huh.StateNormal {
		m.addGoalForm.State = huh.StateAborted
		m.addGoalForm = nil
		return m, noopCmd
	}

	if m.sessionState == chatState {
		return m.goBack()
	}

	if route, ok := m.popRoute(); ok {
		return m.restoreRoute(route)
	}

	return m, nil
}
