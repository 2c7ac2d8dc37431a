package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"
)

const anthropicMaxTokens = 1024

// AnthropicProvider implements AIProvider against Anthropic's Claude
// API. Only the snapshot summary is sent, never raw account numbers.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates an Anthropic-backed chat provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: &client,
	}
}

// Ask implements AIProvider.
func (p *AnthropicProvider) Ask(ctx context.Context, question string, snapshot FinanceSnapshot) (string, error) {
	prompt := buildFinancePrompt(question, snapshot)

	log.Debug("sending chat request to Anthropic", "question_length", len(question))

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     "claude-3-haiku-20240307",
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Error("failed to call Anthropic API", "error", err)
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var responseText string
	if len(response.Content) > 0 {
		responseText = response.Content[0].Text
	}
	if responseText == "" {
		return "", errors.New("empty response from Anthropic API")
	}

	return strings.TrimSpace(responseText), nil
}

// buildFinancePrompt summarizes the snapshot for the model alongside
// the user's question.
func buildFinancePrompt(question string, snapshot FinanceSnapshot) string {
	var categories strings.Builder
	for _, p := range snapshot.TopSpending {
		fmt.Fprintf(&categories, "- %s: %.2f\n", p.Label, p.Value)
	}

	return fmt.Sprintf(`You are a personal finance assistant inside a terminal dashboard.
Answer the user's question using only the data below. Be concise (2-4 sentences), concrete, and do not invent numbers.

Period: %s
Transactions: %d
Income total: %.2f
Expense total: %.2f
Net flow: %.2f
Mean transaction: %.2f
Top spending categories:
%s
Savings goals tracked: %d

Question: %s`,
		snapshot.Period,
		snapshot.Stats.Count,
		snapshot.Stats.IncomeTotal,
		snapshot.Stats.ExpenseTotal,
		snapshot.Stats.NetFlow,
		snapshot.Stats.Mean,
		categories.String(),
		snapshot.Goals,
		question,
	)
}
