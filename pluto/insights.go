package pluto

import (
	"context"
	"net/http"
)

// FinancialSummary fetches the backend-computed financial summary.
func (c *Client) FinancialSummary(ctx context.Context) (*FinancialSummary, error) {
	var summary FinancialSummary
	if err := c.do(ctx, http.MethodGet, "/insights/financial-summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// PlutoScore is the backend's financial health score over a rolling
// 30 day window.
type PlutoScore struct {
	Score             float64 `json:"score"`
	WindowDays        int     `json:"window_days"`
	Income30d         float64 `json:"income_30d"`
	Spend30d          float64 `json:"spend_30d"`
	SavingsRate       float64 `json:"savings_rate"`
	CategoryDiversity int     `json:"category_diversity"`
}

// Score fetches the Pluto financial health score.
func (c *Client) Score(ctx context.Context) (*PlutoScore, error) {
	var score PlutoScore
	if err := c.do(ctx, http.MethodGet, "/insights/pluto-score", nil, nil, &score); err != nil {
		return nil, err
	}
	return &score, nil
}
