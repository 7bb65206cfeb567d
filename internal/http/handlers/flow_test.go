package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"tacgear/internal/api"
	"tacgear/internal/credstore"
	"tacgear/internal/devserver"
	"tacgear/internal/http/handlers"
	"tacgear/internal/session"
)

// browser carries cookies between requests the way a real client would.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	db, err := devserver.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open dev db: %v", err)
	}
	creds, err := credstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open credstore: %v", err)
	}
	client := api.NewWithDoer("http://platform.test/api", devserver.New(db))
	sessions := session.NewManager(client, creds)
	deps := handlers.NewDeps(sessions, client)

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})
	app.Use(handlers.Attach(sessions))

	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/login", deps.UserAuth.LoginForm)
	app.Post("/login", deps.UserAuth.Login)
	app.Post("/logout", deps.UserAuth.Logout)
	app.Get("/dealer/login", deps.DealerAuth.LoginForm)
	app.Post("/dealer/login", deps.DealerAuth.Login)
	app.Get("/dealer", handlers.RequireDealer(), deps.DealerAuth.Portal)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Get("/quote", handlers.RequireUser(), deps.QuoteHandler.Form)
	app.Post("/quote", handlers.RequireUser(), deps.QuoteHandler.Submit)
	app.Get("/quotes", handlers.RequireUser(), deps.QuoteHandler.History)

	return &browser{t: t, app: app, cookies: map[string]string{}}
}

func (b *browser) do(method, path string, form map[string]string) *http.Response {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		form["csrf"] = b.cookies["csrf_"]
		vals := make([]string, 0, len(form))
		for k, v := range form {
			vals = append(vals, k+"="+v)
		}
		body = strings.NewReader(strings.Join(vals, "&"))
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, val := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: val})
	}
	resp, err := b.app.Test(req)
	if err != nil {
		b.t.Fatalf("%s %s: %v", method, path, err)
	}
	for _, c := range resp.Cookies() {
		b.cookies[c.Name] = c.Value
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestAddToCartSignedOutRedirectsToLogin(t *testing.T) {
	b := newBrowser(t)
	b.do("GET", "/login", nil) // establishes sid + csrf cookies

	resp := b.do("POST", "/cart", map[string]string{"product_id": "pc-100", "qty": "1"})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("want redirect to /login, got %q", loc)
	}
}

func TestLoginCartQuoteFlow(t *testing.T) {
	b := newBrowser(t)
	b.do("GET", "/login", nil)

	// bad password renders the login page again with 401
	resp := b.do("POST", "/login", map[string]string{"email": "morgan@tacgear.test", "password": "nope"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad creds: want 401, got %d", resp.StatusCode)
	}

	resp = b.do("POST", "/login", map[string]string{"email": "morgan@tacgear.test", "password": "Passw0rd1"})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login: want 302, got %d", resp.StatusCode)
	}

	resp = b.do("POST", "/cart", map[string]string{"product_id": "pc-100", "qty": "2"})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/cart" {
		t.Fatalf("add: got %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = b.do("GET", "/cart", nil)
	page := readBody(t, resp)
	if !strings.Contains(page, "Modular Plate Carrier") {
		t.Fatal("cart page missing the added item")
	}
	if !strings.Contains(page, "578.00") {
		t.Fatal("cart page missing the server-priced total")
	}

	resp = b.do("GET", "/quote", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("quote form: want 200, got %d", resp.StatusCode)
	}

	// missing required fields re-renders the form with the entered values
	resp = b.do("POST", "/quote", map[string]string{"project_name": "Range+refit"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid quote: want 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(readBody(t, resp), "Range refit") {
		t.Fatal("entered values should be preserved on failure")
	}

	resp = b.do("POST", "/quote", map[string]string{
		"project_name":     "Range+refit",
		"intended_use":     "Training+facility",
		"delivery_address": "4410+Calder+Rd",
		"billing_address":  "PO+Box+119",
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/quotes" {
		t.Fatalf("submit: got %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = b.do("GET", "/quotes", nil)
	if !strings.Contains(readBody(t, resp), "Range refit") {
		t.Fatal("history page missing the submitted quote")
	}

	// the cart survives the submission
	resp = b.do("GET", "/cart", nil)
	if !strings.Contains(readBody(t, resp), "Modular Plate Carrier") {
		t.Fatal("cart should not be cleared by a quote submission")
	}
}

func TestQuoteFormEmptyCartRedirectsToCatalog(t *testing.T) {
	b := newBrowser(t)
	b.do("GET", "/login", nil)
	resp := b.do("POST", "/login", map[string]string{"email": "morgan@tacgear.test", "password": "Passw0rd1"})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login: got %d", resp.StatusCode)
	}

	resp = b.do("GET", "/quote", nil)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/products" {
		t.Fatalf("want redirect to /products, got %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestDealerPortalAndPendingLogin(t *testing.T) {
	b := newBrowser(t)
	b.do("GET", "/dealer/login", nil)

	// pending dealers see the platform's message, not a generic one
	resp := b.do("POST", "/dealer/login", map[string]string{"email": "buyer@northwatch.test", "password": "Passw0rd1"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("pending: want 401, got %d", resp.StatusCode)
	}
	if !strings.Contains(readBody(t, resp), "pending approval") {
		t.Fatal("pending message should surface on the login page")
	}

	resp = b.do("POST", "/dealer/login", map[string]string{"email": "procurement@apexsecurity.test", "password": "Passw0rd1"})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/dealer" {
		t.Fatalf("dealer login: got %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = b.do("GET", "/dealer", nil)
	if !strings.Contains(readBody(t, resp), "Apex Security") {
		t.Fatal("portal should show the dealer profile")
	}
}

func TestLogoutEndsBothRoles(t *testing.T) {
	b := newBrowser(t)
	b.do("GET", "/login", nil)
	if resp := b.do("POST", "/login", map[string]string{"email": "morgan@tacgear.test", "password": "Passw0rd1"}); resp.StatusCode != http.StatusFound {
		t.Fatalf("login: got %d", resp.StatusCode)
	}
	b.do("POST", "/cart", map[string]string{"product_id": "bt-550", "qty": "1"})

	if resp := b.do("POST", "/logout", map[string]string{}); resp.StatusCode != http.StatusFound {
		t.Fatalf("logout: got %d", resp.StatusCode)
	}

	resp := b.do("GET", "/quote", nil)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login" {
		t.Fatalf("after logout /quote should redirect to login, got %d -> %q",
			resp.StatusCode, resp.Header.Get("Location"))
	}
	if !strings.Contains(readBody(t, b.do("GET", "/cart", nil)), "Your cart is empty") {
		t.Fatal("cart should be empty after logout")
	}
}
