package pluto

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

const dateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD" on the wire.
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}

	d.Time = t
	return nil
}

// Account is a linked bank account. The Mask (last digits) is the key
// used to request the account's transactions, not the numeric ID.
type Account struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Nickname string  `json:"nickname,omitempty"`
	Type     string  `json:"type"`
	Mask     string  `json:"mask"`
	Balance  float64 `json:"balance"`
}

// DisplayName prefers the user-set nickname over the institution name.
func (a Account) DisplayName() string {
	if a.Nickname != "" {
		return a.Nickname
	}
	return a.Name
}

// DisplayBalance formats the balance as a currency string.
func (a Account) DisplayBalance() string {
	return money.NewFromFloat(a.Balance, money.USD).Display()
}

// Transaction is a single ledger entry. The amount sign is the sole
// income/expense discriminator: positive is a credit, negative a debit.
// Identity is TransactionID; fetched transactions are never mutated.
type Transaction struct {
	AccountID     string  `json:"account_id"`
	TransactionID string  `json:"transaction_id"`
	Name          string  `json:"name"`
	MerchantName  string  `json:"merchant_name,omitempty"`
	Amount        float64 `json:"amount"`
	Date          Date    `json:"date"`
	Category      string  `json:"category"`
	Pending       bool    `json:"pending"`
}

// IsIncome reports whether the transaction is a credit.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// DisplayAmount formats the signed amount as a currency string.
func (t Transaction) DisplayAmount() string {
	return money.NewFromFloat(t.Amount, money.USD).Display()
}

// FinancialSummary mirrors the backend's precomputed mathematical
// summary. Clients prefer these values over recomputing locally,
// falling back to local aggregation when the request fails.
type FinancialSummary struct {
	TotalBalance        float64             `json:"total_balance"`
	TotalIncome         float64             `json:"total_income"`
	TotalExpenses       float64             `json:"total_expenses"`
	NetWorth            float64             `json:"net_worth"`
	AccountCount        int                 `json:"account_count"`
	MathematicalSummary MathematicalSummary `json:"mathematical_summary"`
}

// MathematicalSummary holds descriptive statistics over transaction
// magnitudes.
type MathematicalSummary struct {
	Mean              float64 `json:"mean"`
	Median            float64 `json:"median"`
	StandardDeviation float64 `json:"standard_deviation"`
	Variance          float64 `json:"variance"`
	MinValue          float64 `json:"min_value"`
	MaxValue          float64 `json:"max_value"`
	TotalTransactions int     `json:"total_transactions"`
	IncomeTotal       float64 `json:"income_total"`
	ExpenseTotal      float64 `json:"expense_total"`
	NetFlow           float64 `json:"net_flow"`
}
