package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pluto-fi/plutotui/config"
	"github.com/pluto-fi/plutotui/goal"
	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/overview"
	"github.com/pluto-fi/plutotui/pluto"
)

type model struct {
	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model

	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	// overview is the summary dashboard widget
	overview overview.Model
	// settings is the configuration table view
	settings config.Model
	// transactionsList is a bubbletea list model of financial transactions
	transactionsList list.Model

	// searchInput holds the global search token ANDed into every
	// view's transaction filter
	searchInput   textinput.Model
	searchFocused bool

	// chat widget state
	chatInput    textinput.Model
	chatViewport viewport.Model
	chatHistory  []chatMessage
	chatWaiting  bool
	assistant    AIProvider

	loginForm   *huh.Form
	addGoalForm *huh.Form

	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState
	// history is the navigation stack popped by esc
	history      []route
	loadingState loadingState

	// accounts are the linked bank accounts, keyed by mask
	accounts map[string]pluto.Account
	// accountNames maps masks to display names for aggregation
	accountNames map[string]string
	// transactionList is the flat fetched list all views derive from;
	// nil until the first fetch lands
	transactionList []pluto.Transaction
	// skippedAccounts are masks whose fetch failed this round
	skippedAccounts []string

	// summary is the backend-computed financial summary, nil when the
	// endpoint was unavailable and stats were computed locally
	summary *pluto.FinancialSummary
	stats   ledger.Stats

	goals *goal.Store

	// transactions view filter and sort state
	categoryFilter string
	sortKey        ledger.SortKey
	sortDir        ledger.Direction

	currentPeriod time.Time
	periodType    string
	period        Period

	// fetchSeq tags transaction fetches so a stale in-flight response
	// cannot overwrite a newer one (last request wins)
	fetchSeq int

	client   *pluto.Client
	cfg      Config
	cfgPath  string
	errorMsg string

	width, height int
}

func newModel(cfg Config, cfgPath string, client *pluto.Client, assistant AIProvider) model {
	theme := newTheme(cfg.Colors)

	searchInput := textinput.New()
	searchInput.Placeholder = "search everywhere"
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 64

	chatInput := textinput.New()
	chatInput.Placeholder = "ask about your finances"
	chatInput.Prompt = "> "

	m := model{
		keys:           initializeKeyMap(),
		theme:          theme,
		styles:         createStyles(theme),
		help:           createHelpModel(theme),
		overview:       overview.New(overview.WithColors(overview.Colors{Primary: string(theme.Primary)})),
		settings:       config.New(),
		searchInput:    searchInput,
		chatInput:      chatInput,
		chatViewport:   viewport.New(0, 20),
		assistant:      assistant,
		sessionState:   loading,
		loadingState:   newLoadingState("accounts", "transactions", "summary"),
		goals:          goal.NewStore(seedGoals()...),
		categoryFilter: ledger.CategoryAll,
		sortKey:        ledger.SortByDate,
		sortDir:        ledger.Descending,
		currentPeriod:  time.Now(),
		periodType:     monthlyPeriodType,
		client:         client,
		cfg:            cfg,
		cfgPath:        cfgPath,
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
	}

	m.settings.SetConfig(cfg)
	m.period.setPeriod(m.currentPeriod, m.periodType)

	delegate := m.newItemDelegate()
	transactionList := list.New([]list.Item{}, delegate, 0, 0)
	transactionList.SetShowTitle(false)
	transactionList.StatusMessageLifetime = 3 * time.Second
	m.transactionsList = transactionList

	if cfg.Token == "" {
		m.loginForm = newLoginForm()
		m.sessionState = loginState
	}

	return m
}

func (m model) Init() tea.Cmd {
	if m.sessionState == loginState {
		return m.loginForm.Init()
	}

	return tea.Batch(
		m.getAccounts,
		m.getSummary,
		m.loadingSpinner.Tick,
	)
}

// checkIfLoading returns to the view the user was on once every
// pending fetch has settled.
func (m model) checkIfLoading() sessionState {
	if !m.loadingState.allLoaded() {
		return loading
	}

	if m.previousSessionState != loading && m.previousSessionState != errorState {
		return m.previousSessionState
	}

	return overviewState
}

// seedGoals are the demo goals shown before the user adds their own.
// There is no backend storage for goals.
func seedGoals() []goal.Goal {
	return []goal.Goal{
		{
			ID:                  "emergency-fund",
			Name:                "Emergency Fund",
			Target:              10000,
			Current:             6500,
			Deadline:            time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			MonthlyContribution: 500,
			Priority:            "high",
			Category:            "security",
		},
		{
			ID:                  "vacation",
			Name:                "Japan Trip",
			Target:              5000,
			Current:             2800,
			Deadline:            time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			MonthlyContribution: 400,
			Priority:            "medium",
			Category:            "travel",
		},
		{
			ID:                  "new-laptop",
			Name:                "New Laptop",
			Target:              1000,
			Current:             1200,
			MonthlyContribution: 100,
			Priority:            "low",
			Category:            "tech",
		},
	}
}
