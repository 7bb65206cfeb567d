package api

import (
	"context"
	"net/http"

	"tacgear/internal/domain"
)

// QuoteRequest is the immutable submission body: a snapshot of cart lines
// plus the buyer-supplied metadata from the quote form.
type QuoteRequest struct {
	Items                  []domain.QuoteItem `json:"items"`
	ProjectName            string             `json:"project_name"`
	IntendedUse            string             `json:"intended_use"`
	DeliveryDate           string             `json:"delivery_date,omitempty"`
	DeliveryAddress        string             `json:"delivery_address"`
	BillingAddress         string             `json:"billing_address"`
	CompanySize            string             `json:"company_size,omitempty"`
	BudgetRange            string             `json:"budget_range,omitempty"`
	AdditionalRequirements string             `json:"additional_requirements,omitempty"`
}

// SubmitQuote sends one quote request for manual pricing review.
func (c *Client) SubmitQuote(ctx context.Context, token string, req QuoteRequest) (domain.Quote, error) {
	var q domain.Quote
	if err := c.do(ctx, http.MethodPost, "/quotes", token, req, &q); err != nil {
		return domain.Quote{}, err
	}
	return q, nil
}

// Quotes lists the quote requests submitted by the token's user, newest
// first.
func (c *Client) Quotes(ctx context.Context, token string) ([]domain.Quote, error) {
	var out []domain.Quote
	if err := c.do(ctx, http.MethodGet, "/quotes", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
