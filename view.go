package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.titleBar())
	b.WriteString("\n\n")

	switch m.sessionState {
	case loading:
		b.WriteString(fmt.Sprintf("%s loading financial data...", m.loadingSpinner.View()))

	case errorState:
		b.WriteString(m.styles.errorStyle.Render("something went wrong: " + m.errorMsg))
		b.WriteString("\n\n")
		b.WriteString(m.styles.statusStyle.Render("press R to retry"))

	case loginState:
		b.WriteString(m.loginView())

	case overviewState:
		b.WriteString(m.overview.View())

	case incomeState:
		b.WriteString(m.incomeView())

	case spendingState:
		b.WriteString(m.spendingView())

	case savingsState:
		b.WriteString(m.savingsView())

	case transactions:
		b.WriteString(m.transactionsList.View())

	case settingsState:
		b.WriteString(m.settings.View())

	case chatState:
		b.WriteString(m.chatView())
	}

	b.WriteString("\n")
	if status := m.statusLine(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) titleBar() string {
	parts := []string{
		m.styles.titleStyle.Render("plutotui"),
		m.sessionState.String(),
	}

	if m.sessionState != loginState {
		parts = append(parts, m.period.String())
	}

	if m.searchFocused {
		parts = append(parts, m.searchInput.View())
	} else if q := m.searchInput.Value(); q != "" {
		parts = append(parts, m.styles.statusStyle.Render("search: "+q))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  |  "))
}

// statusLine surfaces partial fetch failures without blocking the view.
func (m model) statusLine() string {
	if len(m.skippedAccounts) == 0 {
		return ""
	}

	names := make([]string, 0, len(m.skippedAccounts))
	for _, mask := range m.skippedAccounts {
		if name, ok := m.accountNames[mask]; ok {
			names = append(names, name)
		} else {
			names = append(names, mask)
		}
	}

	return m.styles.errorStyle.Render(
		fmt.Sprintf("could not load: %s (R to retry)", strings.Join(names, ", ")),
	)
}
