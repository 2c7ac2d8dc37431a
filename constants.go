package main

// Session states
type sessionState int

const (
	overviewState sessionState = iota
	incomeState
	spendingState
	savingsState
	transactions
	settingsState
	chatState
	loginState
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case overviewState:
		return "overview"
	case incomeState:
		return "income"
	case spendingState:
		return "spending"
	case savingsState:
		return "savings"
	case transactions:
		return "transactions"
	case settingsState:
		return "settings"
	case chatState:
		return "chat"
	case loginState:
		return "sign in"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}

const (
	topCategoryCount = 5
	barChartWidth    = 30
	standardMargin   = 2
	// chromeHeight is the rows taken by the title bar, status line
	// and help footer around the active view
	chromeHeight = 6
)
