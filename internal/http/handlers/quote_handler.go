package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tacgear/internal/api"
	applog "tacgear/internal/log"
	"tacgear/internal/session"
)

type QuoteHandler struct {
	Sessions *session.Manager
}

// Form is the gate into the quote flow: no user identity redirects to
// login, an empty cart redirects back to the catalog.
func (h *QuoteHandler) Form(c *fiber.Ctx) error {
	cart, err := sess(c).BeginQuote()
	if errors.Is(err, api.ErrUnauthenticated) {
		return c.Redirect("/login")
	}
	if errors.Is(err, session.ErrEmptyCart) {
		return c.Redirect("/products")
	}
	return render(c, "quote_form", fiber.Map{"Cart": cart, "Form": session.QuoteForm{}})
}

func formFromRequest(c *fiber.Ctx) session.QuoteForm {
	return session.QuoteForm{
		ProjectName:            c.FormValue("project_name"),
		IntendedUse:            c.FormValue("intended_use"),
		DeliveryDate:           c.FormValue("delivery_date"),
		DeliveryAddress:        c.FormValue("delivery_address"),
		BillingAddress:         c.FormValue("billing_address"),
		CompanySize:            c.FormValue("company_size"),
		BudgetRange:            c.FormValue("budget_range"),
		AdditionalRequirements: c.FormValue("additional_requirements"),
	}
}

func (h *QuoteHandler) Submit(c *fiber.Ctx) error {
	s := sess(c)
	form := formFromRequest(c)

	quote, err := s.SubmitQuote(c.UserContext(), form)
	if errors.Is(err, api.ErrUnauthenticated) {
		return c.Redirect("/login")
	}
	if errors.Is(err, session.ErrEmptyCart) {
		return c.Redirect("/products")
	}
	if err != nil {
		// Re-render with the entered values preserved so nothing is retyped.
		msg := "Could not submit your quote request. Please try again."
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			msg = ve.Error()
		}
		applog.Error(c, "quote.submit.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).Render("quote_form", fiber.Map{
			"Cart": s.Cart(), "Form": form, "Err": msg,
			"FieldErrs": fieldErrs(err), "CSRFToken": c.Locals("CSRFToken"),
		})
	}

	applog.Audit(c, "quote.submit", map[string]any{"quote_id": quote.ID, "items": len(quote.Items)})
	// The cart is deliberately left intact; the buyer clears it when done.
	return c.Redirect("/quotes")
}

func fieldErrs(err error) map[string]string {
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

func (h *QuoteHandler) History(c *fiber.Ctx) error {
	quotes, err := sess(c).QuoteHistory(c.UserContext())
	if errors.Is(err, api.ErrUnauthenticated) {
		return c.Redirect("/login")
	}
	if err != nil {
		applog.Error(c, "quote.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound",
			fiber.Map{"Message": "Could not load your quote requests"})
	}
	return render(c, "quote_history", fiber.Map{"Quotes": quotes})
}
