package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tacgear/internal/api"
	applog "tacgear/internal/log"
	"tacgear/internal/session"
	"tacgear/internal/validate"
)

// IdentityHandler serves login/register/logout for one identity kind. The
// same handler type is mounted twice — once for users, once for dealers —
// so the two auth flows cannot drift apart.
type IdentityHandler struct {
	Kind     api.Kind
	Sessions *session.Manager
}

func (h *IdentityHandler) loginTemplate() string {
	if h.Kind == api.KindDealer {
		return "dealer_login"
	}
	return "login"
}

func (h *IdentityHandler) registerTemplate() string {
	if h.Kind == api.KindDealer {
		return "dealer_register"
	}
	return "register"
}

func (h *IdentityHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, h.loginTemplate(), fiber.Map{"Err": ""})
}

func (h *IdentityHandler) Login(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"kind": string(h.Kind), "reason": "bad_email_format"})
		return c.Status(fiber.StatusUnauthorized).Render(h.loginTemplate(),
			fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Locals("CSRFToken")})
	}
	pass := c.FormValue("password")

	_, err := sess(c).Login(c.UserContext(), h.Kind, email, pass)
	if err != nil {
		msg := "Invalid email or password"
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			msg = ve.Error() // e.g. dealer account pending approval
		}
		applog.Security(c, "auth.login.fail", map[string]any{"kind": string(h.Kind), "email": email})
		return c.Status(fiber.StatusUnauthorized).Render(h.loginTemplate(),
			fiber.Map{"Err": msg, "CSRFToken": c.Locals("CSRFToken")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"kind": string(h.Kind), "email": email})
	if h.Kind == api.KindDealer {
		return c.Redirect("/dealer")
	}
	return c.Redirect("/")
}

func (h *IdentityHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, h.registerTemplate(), fiber.Map{"Err": ""})
}

func (h *IdentityHandler) Register(c *fiber.Ctx) error {
	reg, err := h.registration(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render(h.registerTemplate(),
			fiber.Map{"Err": err.Error(), "CSRFToken": c.Locals("CSRFToken")})
	}

	if err := sess(c).Register(c.UserContext(), h.Kind, reg); err != nil {
		var ve *api.ValidationError
		msg := "Registration failed. Please try again."
		if errors.As(err, &ve) {
			msg = ve.Error()
		}
		applog.Security(c, "auth.register.fail", map[string]any{"kind": string(h.Kind), "email": reg.Email})
		return c.Status(fiber.StatusBadRequest).Render(h.registerTemplate(),
			fiber.Map{"Err": msg, "CSRFToken": c.Locals("CSRFToken")})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"kind": string(h.Kind), "email": reg.Email})
	// Registration never signs anyone in; dealers additionally wait for
	// approval, so both kinds land on their login page.
	if h.Kind == api.KindDealer {
		return render(c, "dealer_login", fiber.Map{"Notice": "Application received. You can sign in once your account is approved."})
	}
	return render(c, "login", fiber.Map{"Notice": "Account created. Please sign in."})
}

func (h *IdentityHandler) registration(c *fiber.Ctx) (api.Registration, error) {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return api.Registration{}, errors.New("please enter a valid email address")
	}
	pass := c.FormValue("password")
	if !validate.Password(pass) {
		return api.Registration{}, errors.New("password must be 8-64 characters with upper, lower and digit")
	}
	reg := api.Registration{Email: email, Password: pass}

	if h.Kind == api.KindDealer {
		company, ok := validate.Name(c.FormValue("company_name"))
		if !ok {
			return api.Registration{}, errors.New("company name is required")
		}
		contact, ok := validate.Name(c.FormValue("contact_name"))
		if !ok {
			return api.Registration{}, errors.New("contact name is required")
		}
		reg.CompanyName = company
		reg.ContactName = contact
		if phone := c.FormValue("phone"); phone != "" {
			p, ok := validate.Phone(phone)
			if !ok {
				return api.Registration{}, errors.New("please enter a valid phone number")
			}
			reg.Phone = p
		}
		return reg, nil
	}

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return api.Registration{}, errors.New("name is required")
	}
	reg.Name = name
	return reg, nil
}

// Portal renders the dealer's account page (profile + approval status).
// The dealer identity has no cart or quotes of its own.
func (h *IdentityHandler) Portal(c *fiber.Ctx) error {
	return render(c, "dealer_home", fiber.Map{"Dealer": sess(c).Dealer()})
}

// Logout is mounted once per kind but resets the whole session either way:
// both credentials, both identities and the cart are dropped (see
// session.Logout).
func (h *IdentityHandler) Logout(c *fiber.Ctx) error {
	sess(c).Logout()
	applog.Audit(c, "auth.logout", map[string]any{"kind": string(h.Kind)})
	return c.Redirect("/")
}
