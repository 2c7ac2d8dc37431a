package main

import (
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluto-fi/plutotui/config"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name         string
		colorStr     string
		defaultColor string
		want         lipgloss.Color
	}{
		{name: "empty falls back to default", colorStr: "", defaultColor: "#ffd644", want: lipgloss.Color("#ffd644")},
		{name: "hex color", colorStr: "#ff00ff", defaultColor: "#ffd644", want: lipgloss.Color("#ff00ff")},
		{name: "ansi code", colorStr: "21", defaultColor: "#ffd644", want: lipgloss.Color("21")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, parseColor(tt.colorStr, tt.defaultColor))
		})
	}
}

func TestNewThemeDefaults(t *testing.T) {
	theme := newTheme(config.Colors{})

	be.Equal(t, lipgloss.Color("#ffd644"), theme.Primary)
	be.Equal(t, lipgloss.Color("#22ba46"), theme.Success)
	be.Equal(t, lipgloss.Color("#00ff00"), theme.Income)
}

func TestNewThemeOverrides(t *testing.T) {
	theme := newTheme(config.Colors{Primary: "#112233", Expense: "#445566"})

	be.Equal(t, lipgloss.Color("#112233"), theme.Primary)
	be.Equal(t, lipgloss.Color("#445566"), theme.Expense)
	// untouched colors keep their defaults
	be.Equal(t, lipgloss.Color("#FAFAFA"), theme.Text)
}
