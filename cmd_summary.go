package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pluto-fi/plutotui/ledger"
	"github.com/pluto-fi/plutotui/pluto"
)

// summaryCmd prints the financial summary and health score.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the financial summary",
	Long:  `Show the backend-computed financial summary and Pluto score.`,
	RunE:  summaryRun,
}

func init() {
	summaryCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func summaryRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	summary, err := client.FinancialSummary(cmd.Context())
	if err != nil {
		// compute locally from this month's transactions when the
		// insights endpoint is unavailable
		return summaryFromTransactions(cmd, outputFormat)
	}

	// score is optional, the summary is still useful without it
	score, err := client.Score(cmd.Context())
	if err != nil {
		score = nil
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(map[string]any{
			"summary": summary,
			"score":   score,
		})
	case tableOutputFormat:
		return outputSummaryTable(ledger.FromSummary(summary.MathematicalSummary), summary.NetWorth, score)
	default:
		return errors.New("unsupported output format")
	}
}

func summaryFromTransactions(cmd *cobra.Command, outputFormat string) error {
	accounts, err := client.Accounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching accounts: %w", err)
	}

	masks := make([]string, 0, len(accounts))
	var netWorth float64
	for _, a := range accounts {
		masks = append(masks, a.Mask)
		if a.Type == "credit" {
			netWorth -= a.Balance
			continue
		}
		netWorth += a.Balance
	}

	now := time.Now()
	start := pluto.NewDate(now.Year(), now.Month(), 1)
	end := pluto.NewDate(now.Year(), now.Month(), now.Day())

	ts, _, err := client.TransactionsForAccounts(cmd.Context(), masks, start, end, pluto.DefaultTransactionLimit)
	if err != nil {
		return fmt.Errorf("fetching transactions: %w", err)
	}

	stats := ledger.Describe(ts)

	if outputFormat == jsonOutputFormat {
		return outputJSON(stats)
	}
	return outputSummaryTable(stats, netWorth, nil)
}

func outputSummaryTable(stats ledger.Stats, netWorth float64, score *pluto.PlutoScore) error {
	t := createStyledTable("METRIC", "VALUE")

	t.Row("net worth", displayMoney(netWorth))
	t.Row("income", displayMoney(stats.IncomeTotal))
	t.Row("expenses", displayMoney(stats.ExpenseTotal))
	t.Row("net flow", displayMoney(stats.NetFlow))
	t.Row("transactions", fmt.Sprintf("%d", stats.Count))
	t.Row("mean", displayMoney(stats.Mean))
	t.Row("median", displayMoney(stats.Median))
	t.Row("std dev", displayMoney(stats.StdDev))

	if score != nil {
		t.Row("pluto score", fmt.Sprintf("%.0f / 100", score.Score))
		t.Row("savings rate", fmt.Sprintf("%.1f%%", score.SavingsRate*100))
	}

	fmt.Println(t)

	return nil
}
