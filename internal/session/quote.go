package session

import (
	"context"
	"errors"

	"tacgear/internal/api"
	"tacgear/internal/domain"
	"tacgear/internal/validate"
)

// ErrEmptyCart gates the quote flow: nothing to quote means nothing to send.
var ErrEmptyCart = errors.New("cart is empty")

// QuoteForm is the buyer-supplied metadata collected in the second stage of
// the quote flow. ProjectName, IntendedUse, DeliveryAddress and
// BillingAddress are required; the rest is optional.
type QuoteForm struct {
	ProjectName            string
	IntendedUse            string
	DeliveryDate           string
	DeliveryAddress        string
	BillingAddress         string
	CompanySize            string
	BudgetRange            string
	AdditionalRequirements string
}

// Validate does the purely local required-field check that runs before a
// submission is attempted. It never talks to the platform.
func (f QuoteForm) Validate() error {
	fields := map[string]string{}
	if _, ok := validate.Text(f.ProjectName, 120); !ok || f.ProjectName == "" {
		fields["project_name"] = "project name is required"
	}
	if _, ok := validate.Text(f.IntendedUse, 500); !ok || f.IntendedUse == "" {
		fields["intended_use"] = "intended use is required"
	}
	if _, ok := validate.Text(f.DeliveryAddress, 300); !ok || f.DeliveryAddress == "" {
		fields["delivery_address"] = "delivery address is required"
	}
	if _, ok := validate.Text(f.BillingAddress, 300); !ok || f.BillingAddress == "" {
		fields["billing_address"] = "billing address is required"
	}
	if f.DeliveryDate != "" {
		if _, ok := validate.Date(f.DeliveryDate); !ok {
			fields["delivery_date"] = "delivery date must be YYYY-MM-DD"
		}
	}
	if _, ok := validate.Text(f.AdditionalRequirements, 2000); !ok {
		fields["additional_requirements"] = "additional requirements too long"
	}
	if len(fields) > 0 {
		return &api.ValidationError{Message: "please fill in the required fields", Fields: fields}
	}
	return nil
}

// BeginQuote is the first stage gate: it hands back the cart the quote will
// be built from, or fails when there is no active user identity or the cart
// is empty (callers redirect to login or catalog respectively).
func (s *Session) BeginQuote() (domain.Cart, error) {
	if _, ok := s.userCredential(); !ok {
		return domain.Cart{}, api.ErrUnauthenticated
	}
	cart := s.Cart()
	if cart.Empty() {
		return domain.Cart{}, ErrEmptyCart
	}
	return cart, nil
}

// SubmitQuote snapshots the current cart lines together with the form into
// one immutable request and sends it once. With an empty cart it fails fast
// without contacting the platform. The cart is deliberately not cleared on
// success — the buyer decides when they are done with it. On failure the
// caller re-renders the form with the entered values so nothing is retyped.
func (s *Session) SubmitQuote(ctx context.Context, form QuoteForm) (domain.Quote, error) {
	token, ok := s.userCredential()
	if !ok {
		return domain.Quote{}, api.ErrUnauthenticated
	}
	cart := s.Cart()
	if cart.Empty() {
		return domain.Quote{}, ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return domain.Quote{}, err
	}

	items := make([]domain.QuoteItem, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = domain.QuoteItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	req := api.QuoteRequest{
		Items:                  items,
		ProjectName:            form.ProjectName,
		IntendedUse:            form.IntendedUse,
		DeliveryDate:           form.DeliveryDate,
		DeliveryAddress:        form.DeliveryAddress,
		BillingAddress:         form.BillingAddress,
		CompanySize:            form.CompanySize,
		BudgetRange:            form.BudgetRange,
		AdditionalRequirements: form.AdditionalRequirements,
	}
	return s.api.SubmitQuote(ctx, token, req)
}

// QuoteHistory lists the quotes already submitted by the active user.
func (s *Session) QuoteHistory(ctx context.Context) ([]domain.Quote, error) {
	token, ok := s.userCredential()
	if !ok {
		return nil, api.ErrUnauthenticated
	}
	return s.api.Quotes(ctx, token)
}
