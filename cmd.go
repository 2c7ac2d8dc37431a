package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pluto-fi/plutotui/pluto"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	token    string
	baseURL  string
	hidePend bool
	client   *pluto.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "plutotui",
	Short: "A terminal UI and CLI for Pluto",
	Long:  `A terminal-based dashboard and CLI for your Pluto personal finance data.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		log.SetLevel(log.InfoLevel)
		if debug {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		client, err = pluto.NewClient(baseURL, token)
		if err != nil {
			return fmt.Errorf("failed to create Pluto client: %w", err)
		}

		client.HTTP.Transport = newLoggingTransport(client.HTTP.Transport, log.Default())

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), buildConfig(), client)
	},
}

func buildConfig() Config {
	cfg := Config{
		Debug:                   debug,
		Token:                   token,
		BaseURL:                 baseURL,
		HidePendingTransactions: hidePend,
		AnthropicAPIKey:         viper.GetString("anthropic_api_key"),
	}
	_ = viper.UnmarshalKey("colors", &cfg.Colors)
	_ = viper.UnmarshalKey("budgets", &cfg.Budgets)
	return cfg
}

// rootAction launches the dashboard.
func rootAction(_ context.Context, cfg Config, client *pluto.Client) error {
	if cfg.Debug {
		f, err := tea.LogToFile("plutotui.log", "plutotui")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	var assistant AIProvider = cannedProvider{}
	if cfg.AnthropicAPIKey != "" {
		assistant = NewAnthropicProvider(cfg.AnthropicAPIKey)
	}

	m := newModel(cfg, viper.ConfigFileUsed(), client, assistant)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.plutotui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "the API bearer token for Pluto")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "the Pluto API base URL")
	rootCmd.PersistentFlags().BoolVar(&hidePend, "hide-pending-transactions", false,
		"hide pending transactions from all transaction lists")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("hide_pending_transactions", rootCmd.PersistentFlags().Lookup("hide-pending-transactions"))

	// Bind environment variables
	_ = viper.BindEnv("token", "PLUTO_API_TOKEN")
	_ = viper.BindEnv("base_url", "PLUTO_BASE_URL")
	_ = viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(goalsCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error finding home directory", "error", err)
			os.Exit(1)
		}

		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("plutotui")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "plutotui"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "plutotui"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/plutotui")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
	} else {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("token") {
		token = viper.GetString("token")
	}
	if !rootCmd.PersistentFlags().Changed("base-url") {
		baseURL = viper.GetString("base_url")
	}
	if !rootCmd.PersistentFlags().Changed("hide-pending-transactions") {
		hidePend = viper.GetBool("hide_pending_transactions")
	}
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", fmt.Errorf("failed to get output flag: %w", err)
	}

	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", errors.New("output format must be either 'table' or 'json'")
	}

	return outputFormat, nil
}
