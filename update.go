package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		if updated, cmd := handleKeyPress(msg, &m); cmd != nil {
			return updated, cmd
		}
		return m.updateActiveComponent(msg)

	case accountsMsg:
		return m.handleAccounts(msg)

	case transactionsMsg:
		return m.handleTransactions(msg)

	case summaryMsg:
		return m.handleSummary(msg)

	case fetchErrorMsg:
		return m.handleFetchError(msg)

	case authErrorMsg:
		return m.handleAuthError(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case goalAddedMsg:
		m.addGoalForm = nil
		return m, nil

	case chatReplyMsg:
		return m.handleChatReply(msg)

	case spinner.TickMsg:
		if m.sessionState != loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m.updateActiveComponent(msg)
}

func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - chromeHeight
	m.transactionsList.SetSize(msg.Width-standardMargin*2, contentHeight)
	m.overview.SetSize(msg.Width-standardMargin*2, contentHeight)
	m.settings.SetSize(msg.Width-standardMargin*2, contentHeight)
	m.chatViewport.Width = msg.Width - standardMargin*2
	m.chatViewport.Height = contentHeight - 3
	m.help.Width = msg.Width

	return m, nil
}

// updateActiveComponent routes a message to whichever component owns
// the keyboard right now.
func (m model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.searchFocused {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			m.searchFocused = false
			m.searchInput.Blur()
			return m, m.updateTransactions()
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd, m.updateTransactions())
		return m, tea.Batch(cmds...)
	}

	switch m.sessionState {
	case loginState:
		return m.updateLoginForm(msg)

	case chatState:
		return m.updateChat(msg)

	case transactions:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			if updated, cmd := m.handleTransactionKeys(keyMsg); cmd != nil {
				return updated, cmd
			}
		}
		var cmd tea.Cmd
		m.transactionsList, cmd = m.transactionsList.Update(msg)
		return m, cmd

	case settingsState:
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd

	case savingsState:
		if m.addGoalForm != nil {
			return m.updateAddGoalForm(msg)
		}
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "a" {
			m.addGoalForm = newAddGoalForm()
			return m, m.addGoalForm.Init()
		}
		return m, nil

	case overviewState:
		var cmd tea.Cmd
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	switch m.loginForm.State {
	case huh.StateCompleted:
		email := m.loginForm.GetString(loginEmailKey)
		password := m.loginForm.GetString(loginPasswordKey)
		signup := m.loginForm.GetBool(loginSignupKey)
		return m, m.submitLogin(email, password, signup)

	case huh.StateAborted:
		// no session without a token, so an abandoned login exits
		return m, tea.Quit
	}

	return m, cmd
}

func (m model) updateAddGoalForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.addGoalForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.addGoalForm = f
	}

	if m.addGoalForm.State == huh.StateCompleted {
		return m, m.submitGoal(m.addGoalForm)
	}
	if m.addGoalForm.State == huh.StateAborted {
		m.addGoalForm = nil
		return m, nil
	}

	return m, cmd
}
