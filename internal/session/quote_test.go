package session_test

import (
	"context"
	"errors"
	"testing"

	"tacgear/internal/api"
	"tacgear/internal/session"
)

func validForm() session.QuoteForm {
	return session.QuoteForm{
		ProjectName:     "Range refit",
		IntendedUse:     "Outfitting a private training facility",
		DeliveryAddress: "4410 Calder Rd, El Paso TX",
		BillingAddress:  "PO Box 119, El Paso TX",
	}
}

func TestQuoteFormValidation(t *testing.T) {
	var ve *api.ValidationError

	err := (session.QuoteForm{}).Validate()
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	for _, field := range []string{"project_name", "intended_use", "delivery_address", "billing_address"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("missing field error for %s: %+v", field, ve.Fields)
		}
	}

	f := validForm()
	f.DeliveryDate = "next tuesday"
	err = f.Validate()
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError for bad date, got %v", err)
	}
	if _, ok := ve.Fields["delivery_date"]; !ok {
		t.Fatalf("want delivery_date error, got %+v", ve.Fields)
	}

	f = validForm()
	f.DeliveryDate = "2026-10-01"
	if err := f.Validate(); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestBeginQuoteGates(t *testing.T) {
	e := newEnv(t)
	s := e.session("sid-1")

	if _, err := s.BeginQuote(); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}

	loginUser(t, s)
	if _, err := s.BeginQuote(); !errors.Is(err, session.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}

	if err := s.AddItem(context.Background(), "bt-550", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := s.BeginQuote()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("bad quote cart: %+v", cart)
	}
}

func TestSubmitQuoteEmptyCartFailsBeforeNetwork(t *testing.T) {
	e := newEnv(t)
	s := e.session("sid-1")
	loginUser(t, s)

	before := e.doer.n
	_, err := s.SubmitQuote(context.Background(), validForm())
	if !errors.Is(err, session.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	if e.doer.n != before {
		t.Fatal("empty-cart submission must not contact the platform")
	}
}

func TestSubmitQuoteInvalidFormFailsBeforeNetwork(t *testing.T) {
	e := newEnv(t)
	s := e.session("sid-1")
	loginUser(t, s)
	if err := s.AddItem(context.Background(), "bt-550", 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	before := e.doer.n
	_, err := s.SubmitQuote(context.Background(), session.QuoteForm{ProjectName: "only one field"})
	var ve *api.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if e.doer.n != before {
		t.Fatal("invalid form must be rejected locally")
	}
}

func TestSubmitQuoteSnapshotsCartAndKeepsIt(t *testing.T) {
	e := newEnv(t)
	s := e.session("sid-1")
	loginUser(t, s)
	if err := s.AddItem(context.Background(), "pc-100", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddItem(context.Background(), "ap-410", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	quote, err := s.SubmitQuote(context.Background(), validForm())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if quote.ID == "" || quote.Status != "PENDING" {
		t.Fatalf("bad quote: %+v", quote)
	}
	if len(quote.Items) != 2 {
		t.Fatalf("want 2 quote items, got %d", len(quote.Items))
	}

	// The cart is not cleared by a submission; the buyer decides when they
	// are done with it.
	if s.Cart().Empty() {
		t.Fatal("cart should survive the quote submission")
	}

	history, err := s.QuoteHistory(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != quote.ID {
		t.Fatalf("bad history: %+v", history)
	}
	if history[0].ProjectName != "Range refit" {
		t.Fatalf("bad project name: %q", history[0].ProjectName)
	}
}

func TestQuoteHistoryRequiresUser(t *testing.T) {
	e := newEnv(t)
	s := e.session("sid-anon")
	if _, err := s.QuoteHistory(context.Background()); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
}
