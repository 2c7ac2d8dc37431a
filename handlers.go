package main

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

const fetchTimeout = 30 * time.Second

type accountsMsg struct {
	accounts []pluto.Account
}

type transactionsMsg struct {
	seq          int
	transactions []pluto.Transaction
	skipped      []string
}

type summaryMsg struct {
	summary *pluto.FinancialSummary
	score   *pluto.PlutoScore
}

// fetchErrorMsg reports a failed fetch along with which fetch it was,
// so the loading state can still settle.
type fetchErrorMsg struct {
	scope string
	err   error
}

type authErrorMsg struct {
	err error
}

type loginResultMsg struct {
	token string
	err   error
}

type goalAddedMsg struct{}

func (m model) getAccounts() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	accounts, err := m.client.Accounts(ctx)
	if err != nil {
		if errors.Is(err, pluto.ErrUnauthorized) {
			return authErrorMsg{err: err}
		}
		return fetchErrorMsg{scope: "accounts", err: err}
	}

	return accountsMsg{accounts: accounts}
}

// getTransactions issues a sequenced fetch across every linked account
// for the current period. The sequence number lets the handler drop a
// stale response that lands after a newer fetch was issued.
func (m *model) getTransactions() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	m.loadingState.unset("transactions")

	client := m.client
	masks := make([]string, 0, len(m.accounts))
	for mask := range m.accounts {
		masks = append(masks, mask)
	}
	start, end := m.period.startDate(), m.period.endDate()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		ts, skipped, err := client.TransactionsForAccounts(ctx, masks, start, end, pluto.DefaultTransactionLimit)
		if err != nil {
			if errors.Is(err, pluto.ErrUnauthorized) {
				return authErrorMsg{err: err}
			}
			return fetchErrorMsg{scope: "transactions", err: err}
		}

		return transactionsMsg{seq: seq, transactions: ts, skipped: skipped}
	}
}

// getSummary fetches the backend financial summary. Unlike the other
// fetches a failure here is not fatal: the handler falls back to
// computing statistics locally from the transaction list.
func (m model) getSummary() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	summary, err := m.client.FinancialSummary(ctx)
	if err != nil {
		if errors.Is(err, pluto.ErrUnauthorized) {
			return authErrorMsg{err: err}
		}
		log.Debug("summary endpoint unavailable, falling back to local stats", "error", err)
		return summaryMsg{}
	}

	score, err := m.client.Score(ctx)
	if err != nil {
		log.Debug("score endpoint unavailable", "error", err)
	}

	return summaryMsg{summary: summary, score: score}
}

func (m model) handleAccounts(msg accountsMsg) (model, tea.Cmd) {
	m.accounts = make(map[string]pluto.Account, len(msg.accounts))
	m.accountNames = make(map[string]string, len(msg.accounts))
	for _, a := range msg.accounts {
		m.accounts[a.Mask] = a
		m.accountNames[a.Mask] = a.DisplayName()
	}

	m.loadingState.set("accounts")
	m.overview.SetAccounts(msg.accounts)

	// transactions need the account masks, so their fetch starts here
	return m, m.getTransactions()
}

func (m model) handleTransactions(msg transactionsMsg) (model, tea.Cmd) {
	if msg.seq != m.fetchSeq {
		log.Debug("dropping stale transaction fetch", "seq", msg.seq, "want", m.fetchSeq)
		return m, nil
	}

	m.transactionList = msg.transactions
	m.skippedAccounts = msg.skipped
	m.loadingState.set("transactions")

	if m.summary == nil {
		m.stats = ledger.Describe(m.transactionList)
	}

	m.overview.SetTransactions(m.transactionList, m.accountNames)
	m.sessionState = m.checkIfLoading()

	return m, m.updateTransactions()
}

func (m model) handleSummary(msg summaryMsg) (model, tea.Cmd) {
	m.summary = msg.summary
	m.loadingState.set("summary")

	if m.summary != nil {
		m.stats = ledger.FromSummary(m.summary.MathematicalSummary)
		m.overview.SetSummary(m.summary)
	}
	if msg.score != nil {
		m.overview.SetScore(msg.score)
	}
	if m.summary == nil && m.transactionList != nil {
		m.stats = ledger.Describe(m.transactionList)
	}

	m.sessionState = m.checkIfLoading()

	return m, nil
}

func (m model) handleFetchError(msg fetchErrorMsg) (model, tea.Cmd) {
	log.Error("fetch failed", "scope", msg.scope, "error", msg.err)
	m.errorMsg = msg.err.Error()
	m.sessionState = errorState

	return m, nil
}

// handleAuthError clears the stored token and drops the user on the
// login form. A token that stopped working is not worth keeping.
func (m model) handleAuthError(msg authErrorMsg) (model, tea.Cmd) {
	log.Warn("session rejected by backend", "error", msg.err)

	m.cfg.Token = ""
	if err := saveConfig(m.cfgPath, m.cfg); err != nil {
		log.Error("persisting cleared token", "error", err)
	}
	m.client.SetToken("")

	m.loginForm = newLoginForm()
	m.sessionState = loginState

	return m, m.loginForm.Init()
}

func (m model) handleLoginResult(msg loginResultMsg) (model, tea.Cmd) {
	if msg.err != nil {
		log.Error("login failed", "error", msg.err)
		m.loginForm = newLoginForm()
		m.errorMsg = msg.err.Error()
		return m, m.loginForm.Init()
	}

	m.errorMsg = ""
	m.cfg.Token = msg.token
	if err := saveConfig(m.cfgPath, m.cfg); err != nil {
		log.Error("persisting token", "error", err)
	}
	m.settings.SetConfig(m.cfg)

	m.sessionState = loading
	m.previousSessionState = overviewState

	return m, tea.Batch(m.getAccounts, m.getSummary, m.loadingSpinner.Tick)
}
