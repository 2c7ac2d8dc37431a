package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pluto-fi/plutotui/pluto"
)

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Account management commands",
	Long:  `Commands for managing linked bank accounts in Pluto.`,
}

// accountsListCmd represents the accounts list command.
var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all linked accounts",
	Long:  `List all linked bank accounts with their balances and details.`,
	RunE:  accountsListRun,
}

var accountsLinkCmd = &cobra.Command{
	Use:   "link <username>",
	Short: "Link a bank account",
	Long:  `Link a new bank account through the sandbox provider using its credentials.`,
	Args:  cobra.ExactArgs(1),
	RunE:  accountsLinkRun,
}

var accountsUnlinkCmd = &cobra.Command{
	Use:   "unlink <id>",
	Short: "Unlink a bank account",
	Long:  `Remove a linked bank account by its numeric ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  accountsUnlinkRun,
}

func init() {
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsLinkCmd)
	accountsCmd.AddCommand(accountsUnlinkCmd)

	accountsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	accountsLinkCmd.Flags().String("password", "", "sandbox provider password")
	accountsLinkCmd.Flags().String("type", "checking", "account type: checking, savings or credit")
	accountsLinkCmd.Flags().String("nickname", "", "display nickname for the account")
}

func accountsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	accounts, err := client.Accounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching accounts: %w", err)
	}

	// Sort accounts by name for consistent output
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].DisplayName() < accounts[j].DisplayName()
	})

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(accounts)
	case tableOutputFormat:
		return outputAccountsTable(accounts)
	default:
		return errors.New("unsupported output format")
	}
}

func outputAccountsTable(accounts []pluto.Account) error {
	t := createStyledTable(
		"ID",
		"NAME",
		"TYPE",
		"MASK",
		"BALANCE",
	)

	for _, account := range accounts {
		t.Row(
			fmt.Sprintf("%d", account.ID),
			account.DisplayName(),
			account.Type,
			account.Mask,
			account.DisplayBalance(),
		)
	}

	fmt.Println(t)

	return nil
}

func accountsLinkRun(cmd *cobra.Command, args []string) error {
	accountType, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("failed to get password flag: %w", err)
	}
	nickname, err := cmd.Flags().GetString("nickname")
	if err != nil {
		return fmt.Errorf("failed to get nickname flag: %w", err)
	}

	account, err := client.LinkAccount(cmd.Context(), pluto.LinkRequest{
		Username:    args[0],
		Password:    password,
		AccountType: accountType,
		Nickname:    nickname,
	})
	if err != nil {
		return fmt.Errorf("linking account: %w", err)
	}

	fmt.Printf("linked %s (id %d, mask %s)\n", account.DisplayName(), account.ID, account.Mask)
	return nil
}

func accountsUnlinkRun(cmd *cobra.Command, args []string) error {
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return fmt.Errorf("invalid account id %q: %w", args[0], err)
	}

	if err := client.DeleteAccount(cmd.Context(), id); err != nil {
		return fmt.Errorf("unlinking account: %w", err)
	}

	fmt.Printf("unlinked account %d\n", id)
	return nil
}
