package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tacgear/internal/api"
	applog "tacgear/internal/log"
	"tacgear/internal/session"
	"tacgear/internal/validate"
)

type CartHandler struct {
	Sessions *session.Manager
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	s := sess(c)
	if err := s.RefreshCart(c.UserContext()); err != nil {
		// Show the last known cart rather than an error page; the cache is
		// still the most recent server truth we have.
		applog.Error(c, "cart.refresh.fail", err, nil)
	}
	return render(c, "cart", fiber.Map{"Cart": s.Cart()})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing product_id")
	}
	qty := validate.Qty(c.FormValue("qty"))

	err := sess(c).AddItem(c.UserContext(), productID, qty)
	if errors.Is(err, api.ErrUnauthenticated) {
		// The action is not dropped silently; sign in and try again.
		return c.Redirect("/login")
	}
	if err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product_id": productID})
		return c.Status(fiber.StatusBadGateway).Render("cart", fiber.Map{
			"Cart": sess(c).Cart(),
			"Err":  "Could not add the item. Please try again.",
		})
	}
	applog.Audit(c, "cart.add", map[string]any{"product_id": productID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing product_id")
	}

	err := sess(c).RemoveItem(c.UserContext(), productID)
	if errors.Is(err, api.ErrUnauthenticated) {
		return c.Redirect("/login")
	}
	if err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product_id": productID})
		return c.Status(fiber.StatusBadGateway).Render("cart", fiber.Map{
			"Cart": sess(c).Cart(),
			"Err":  "Could not remove the item. Please try again.",
		})
	}
	applog.Audit(c, "cart.remove", map[string]any{"product_id": productID})
	return c.Redirect("/cart")
}
