package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state sessionState
		want  string
	}{
		{overviewState, "overview"},
		{incomeState, "income"},
		{spendingState, "spending"},
		{savingsState, "savings"},
		{transactions, "transactions"},
		{settingsState, "settings"},
		{chatState, "chat"},
		{loginState, "sign in"},
		{loading, "loading"},
		{errorState, "error"},
		{sessionState(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			be.Equal(t, tt.want, tt.state.String())
		})
	}
}
