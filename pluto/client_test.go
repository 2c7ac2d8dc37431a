package pluto

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/auth/login", r.URL.Path)
		be.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "")
	be.NilErr(t, err)

	token, err := c.Login(context.Background(), "user@example.com", "hunter2")
	be.NilErr(t, err)
	be.Equal(t, "tok-123", token)
	// subsequent requests should carry the new token
	be.Equal(t, "tok-123", c.token)
}

func TestAccountsSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Everyday Checking","type":"checking","mask":"1234","balance":2500.75}]`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "tok-abc")
	be.NilErr(t, err)

	accounts, err := c.Accounts(context.Background())
	be.NilErr(t, err)
	be.Equal(t, 1, len(accounts))
	be.Equal(t, "Everyday Checking", accounts[0].Name)
	be.Equal(t, "1234", accounts[0].Mask)
}

func TestUnauthorizedIsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "expired")
	be.NilErr(t, err)

	_, err = c.Accounts(context.Background())
	be.True(t, err != nil)
	be.True(t, errors.Is(err, ErrUnauthorized))
}

func TestTransactionsQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/fake/plaid/transactions", r.URL.Path)
		q := r.URL.Query()
		be.Equal(t, "1234", q.Get("account_id"))
		be.Equal(t, "2025-01-01", q.Get("start_date"))
		be.Equal(t, "2025-01-31", q.Get("end_date"))
		be.Equal(t, "100", q.Get("limit"))

		_, _ = w.Write([]byte(`{"transactions":[
			{"account_id":"1234","transaction_id":"t1","name":"AMAZON.COM","amount":-54.23,"date":"2025-01-12","category":"shopping","pending":false}
		]}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "tok")
	be.NilErr(t, err)

	ts, err := c.Transactions(context.Background(),
		"1234", NewDate(2025, time.January, 1), NewDate(2025, time.January, 31), 100)
	be.NilErr(t, err)
	be.Equal(t, 1, len(ts))
	be.Equal(t, "t1", ts[0].TransactionID)
	be.Equal(t, -54.23, ts[0].Amount)
	be.Equal(t, 2025, ts[0].Date.Year())
	be.Equal(t, time.January, ts[0].Date.Month())
}

func TestTransactionsForAccountsToleratesPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("account_id") {
		case "1111":
			_, _ = w.Write([]byte(`{"transactions":[
				{"account_id":"1111","transaction_id":"a","name":"Salary","amount":3500,"date":"2025-03-01","category":"salary"}
			]}`))
		case "2222":
			w.WriteHeader(http.StatusInternalServerError)
		case "3333":
			_, _ = w.Write([]byte(`{"transactions":[
				{"account_id":"3333","transaction_id":"b","name":"SuperMart","amount":-80.10,"date":"2025-03-05","category":"groceries"},
				{"account_id":"3333","transaction_id":"c","name":"City Utilities","amount":-120,"date":"2025-03-15","category":"utilities"}
			]}`))
		}
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "tok")
	be.NilErr(t, err)

	ts, skipped, err := c.TransactionsForAccounts(context.Background(),
		[]string{"1111", "2222", "3333"},
		NewDate(2025, time.March, 1), NewDate(2025, time.March, 31), 0)
	be.NilErr(t, err)
	be.Equal(t, 3, len(ts))
	be.Equal(t, 1, len(skipped))
	be.Equal(t, "2222", skipped[0])

	// ordering within the flat list follows account order, not fetch
	// completion order
	ids := make([]string, len(ts))
	for i, tx := range ts {
		ids[i] = tx.TransactionID
	}
	be.True(t, slices.Equal(ids, []string{"a", "b", "c"}))
}

func TestTransactionsForAccountsAbortsOnUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "expired")
	be.NilErr(t, err)

	_, _, err = c.TransactionsForAccounts(context.Background(),
		[]string{"1111"}, NewDate(2025, time.March, 1), NewDate(2025, time.March, 31), 0)
	be.True(t, errors.Is(err, ErrUnauthorized))
}

func TestFinancialSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/insights/financial-summary", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"total_balance": 12000.50,
			"total_income": 10500,
			"total_expenses": 4300.25,
			"net_worth": 12000.50,
			"account_count": 3,
			"mathematical_summary": {
				"mean": 87.5, "median": 42.1, "standard_deviation": 12.2,
				"variance": 148.84, "min_value": 4.99, "max_value": 3500,
				"total_transactions": 120, "income_total": 10500,
				"expense_total": 4300.25, "net_flow": 6199.75
			}
		}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "tok")
	be.NilErr(t, err)

	summary, err := c.FinancialSummary(context.Background())
	be.NilErr(t, err)
	be.Equal(t, 3, summary.AccountCount)
	be.Equal(t, 120, summary.MathematicalSummary.TotalTransactions)
	be.Equal(t, 6199.75, summary.MathematicalSummary.NetFlow)
}
