package handlers

import "github.com/gofiber/fiber/v2"

// RequireUser redirects to login when the retail identity is not signed in.
// Cart and quote pages sit behind this.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sess(c)
		if s == nil || s.User() == nil {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireDealer guards the dealer portal pages.
func RequireDealer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sess(c)
		if s == nil || s.Dealer() == nil {
			return c.Redirect("/dealer/login")
		}
		return c.Next()
	}
}
