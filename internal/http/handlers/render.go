package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tacgear/internal/session"
)

// ensureSID guarantees the browser has a session cookie; the sid is the key
// the credential store and session manager are scoped by.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

// Attach resolves the request's session and stores it in Locals so every
// handler and template reads the same state object. Session state is always
// passed down explicitly from here, never looked up globally.
func Attach(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessions.Get(c.UserContext(), ensureSID(c))
		c.Locals("sess", sess)
		return c.Next()
	}
}

func sess(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals("sess").(*session.Session)
	return s
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if s := sess(c); s != nil {
		if u := s.User(); u != nil {
			data["User"] = u
		}
		if d := s.Dealer(); d != nil {
			data["Dealer"] = d
		}
		data["CartCount"] = len(s.Cart().Items)
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
