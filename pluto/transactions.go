package pluto

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultTransactionLimit is the page size requested when the caller
// does not specify one.
const DefaultTransactionLimit = 500

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// Transactions fetches one account's transactions inside the inclusive
// date window. The mask identifies the account.
func (c *Client) Transactions(ctx context.Context, mask string, start, end Date, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	query := url.Values{}
	query.Set("account_id", mask)
	query.Set("start_date", start.String())
	query.Set("end_date", end.String())
	query.Set("limit", strconv.Itoa(limit))

	var resp transactionsResponse
	if err := c.do(ctx, http.MethodGet, "/fake/plaid/transactions", query, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Transactions, nil
}

// TransactionsForAccounts fetches each account's transactions
// concurrently and concatenates the results into one unsorted list.
// A failing account is logged and skipped rather than aborting the
// whole fetch; the returned masks list names the accounts that were
// skipped. An authentication failure is not tolerated and aborts.
func (c *Client) TransactionsForAccounts(
	ctx context.Context,
	masks []string,
	start, end Date,
	limit int,
) ([]Transaction, []string, error) {
	perAccount := make([][]Transaction, len(masks))

	var mu sync.Mutex
	var skipped []string

	var errGroup errgroup.Group
	for i, mask := range masks {
		errGroup.Go(func() error {
			ts, err := c.Transactions(ctx, mask, start, end, limit)
			if err != nil {
				if errors.Is(err, ErrUnauthorized) {
					return err
				}
				log.Error("skipping account after fetch failure", "account", mask, "error", err)
				mu.Lock()
				skipped = append(skipped, mask)
				mu.Unlock()
				return nil
			}
			// some backend fixtures omit account_id on each row
			for j := range ts {
				if ts[j].AccountID == "" {
					ts[j].AccountID = mask
				}
			}
			perAccount[i] = ts
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, nil, err
	}

	var all []Transaction
	for _, ts := range perAccount {
		all = append(all, ts...)
	}

	return all, skipped, nil
}
