package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

// transactionsCmd lists transactions across all linked accounts with
// the same filter and sort pipeline the dashboard uses.
var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Transaction commands",
	Long:  `Commands for listing and filtering transactions across all linked accounts.`,
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long:  `List transactions for the current month across all linked accounts.`,
	RunE:  transactionsListRun,
}

func init() {
	transactionsCmd.AddCommand(transactionsListCmd)

	transactionsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	transactionsListCmd.Flags().String("start", "", "start date (YYYY-MM-DD), defaults to first of the month")
	transactionsListCmd.Flags().String("end", "", "end date (YYYY-MM-DD), defaults to today")
	transactionsListCmd.Flags().String("category", ledger.CategoryAll, "only show this category")
	transactionsListCmd.Flags().String("search", "", "free-text search over name, merchant and category")
	transactionsListCmd.Flags().String("sort", string(ledger.SortByDate), "sort key: date, amount or name")
	transactionsListCmd.Flags().Bool("asc", false, "sort ascending instead of descending")
	transactionsListCmd.Flags().Int("limit", pluto.DefaultTransactionLimit, "maximum transactions per account")
}

func transactionsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	start, end, err := resolveDateWindow(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}

	accounts, err := client.Accounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching accounts: %w", err)
	}

	masks := make([]string, 0, len(accounts))
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		masks = append(masks, a.Mask)
		names[a.Mask] = a.DisplayName()
	}

	ts, skipped, err := client.TransactionsForAccounts(cmd.Context(), masks, start, end, limit)
	if err != nil {
		return fmt.Errorf("fetching transactions: %w", err)
	}

	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")
	filter := ledger.Filter{Category: category, Query: search}
	ts = filter.Apply(ts)

	sortKey, _ := cmd.Flags().GetString("sort")
	asc, _ := cmd.Flags().GetBool("asc")
	dir := ledger.Descending
	if asc {
		dir = ledger.Ascending
	}
	ts = ledger.Sort(ts, ledger.SortKey(sortKey), dir)

	if len(skipped) > 0 {
		fmt.Printf("warning: %d accounts could not be loaded: %v\n", len(skipped), skipped)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(ts)
	case tableOutputFormat:
		return outputTransactionsTable(ts, names)
	default:
		return errors.New("unsupported output format")
	}
}

func resolveDateWindow(cmd *cobra.Command) (pluto.Date, pluto.Date, error) {
	now := time.Now()
	start := pluto.NewDate(now.Year(), now.Month(), 1)
	end := pluto.NewDate(now.Year(), now.Month(), now.Day())

	if s, _ := cmd.Flags().GetString("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return start, end, fmt.Errorf("invalid start date %q: %w", s, err)
		}
		start = pluto.NewDate(t.Year(), t.Month(), t.Day())
	}

	if s, _ := cmd.Flags().GetString("end"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return start, end, fmt.Errorf("invalid end date %q: %w", s, err)
		}
		end = pluto.NewDate(t.Year(), t.Month(), t.Day())
	}

	return start, end, nil
}

func outputTransactionsTable(ts []pluto.Transaction, names map[string]string) error {
	t := createStyledTable(
		"DATE",
		"NAME",
		"CATEGORY",
		"ACCOUNT",
		"AMOUNT",
	)

	for _, tx := range ts {
		name := tx.Name
		if name == "" {
			name = tx.MerchantName
		}
		category := tx.Category
		if category == "" {
			category = "-"
		}

		t.Row(
			tx.Date.String(),
			name,
			category,
			names[tx.AccountID],
			tx.DisplayAmount(),
		)
	}

	fmt.Println(t)

	return nil
}
