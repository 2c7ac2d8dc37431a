// Package config holds the application configuration and the settings
// view that displays it.
package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// Token is the Pluto API bearer token, persisted across sessions
	Token string `toml:"token"`
	// BaseURL is the Pluto API base URL
	BaseURL string `toml:"base_url"`
	// HidePendingTransactions hides pending transactions from all transaction lists
	HidePendingTransactions bool `toml:"hide_pending_transactions"`
	// AnthropicAPIKey enables the live chat assistant; without it the
	// chat view falls back to canned responses
	AnthropicAPIKey string `toml:"anthropic_api_key"`
	// Budgets maps a spending category to its monthly budget. A
	// category without an entry gets an estimate derived from its
	// spend.
	Budgets map[string]float64 `toml:"budgets"`
	// Colors customizes the theme
	Colors Colors `toml:"colors"`
}

// Colors holds theme color overrides. Empty values fall back to
// defaults.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Warning       string `toml:"warning"`
	Muted         string `toml:"muted"`
	Income        string `toml:"income"`
	Expense       string `toml:"expense"`
	Border        string `toml:"border"`
	Background    string `toml:"background"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// Model represents the settings view model.
type Model struct {
	configTable table.Model
}

// New creates a new settings view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 30},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the settings table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the settings table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Base URL",
			config.BaseURL,
			"Pluto API base URL",
		},
		{
			"Token",
			maskSensitiveValue(config.Token),
			"Pluto API bearer token",
		},
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Hide Pending Transactions",
			strconv.FormatBool(config.HidePendingTransactions),
			"Hide pending transactions from all transaction lists",
		},
		{
			"Anthropic API Key",
			maskSensitiveValue(config.AnthropicAPIKey),
			"Enables the live chat assistant",
		},
		{
			"Budgets",
			strconv.Itoa(len(config.Budgets)) + " categories",
			"Monthly budgets by spending category",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the settings view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the settings view.
func (m Model) View() string {
	return m.configTable.View()
}
