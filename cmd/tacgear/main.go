package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"tacgear/internal/api"
	"tacgear/internal/config"
	"tacgear/internal/credstore"
	"tacgear/internal/http/handlers"
	applog "tacgear/internal/log"
	"tacgear/internal/session"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	creds, err := credstore.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	client := api.New(cfg.BackendURL, cfg.HTTPTimeout)
	sessions := session.NewManager(client, creds)
	deps := handlers.NewDeps(sessions, client)

	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})
	// Every request gets its session attached up front; handlers and
	// templates read state only through it.
	app.Use(handlers.Attach(sessions))

	app.Static("/static", "./web/static")

	loginLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many attempts. Please try again later.")
		},
	})

	// ---------- Catalog ----------
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/products", deps.CatalogHandler.Products)
	app.Get("/products/:id", deps.CatalogHandler.Detail)
	app.Get("/categories", deps.CatalogHandler.Categories)
	app.Get("/brands", deps.CatalogHandler.Brands)

	// ---------- Retail auth ----------
	app.Get("/login", deps.UserAuth.LoginForm)
	app.Post("/login", loginLimiter, deps.UserAuth.Login)
	app.Get("/register", deps.UserAuth.RegisterForm)
	app.Post("/register", deps.UserAuth.Register)
	app.Post("/logout", deps.UserAuth.Logout)

	// ---------- Dealer auth & portal ----------
	app.Get("/dealer/login", deps.DealerAuth.LoginForm)
	app.Post("/dealer/login", loginLimiter, deps.DealerAuth.Login)
	app.Get("/dealer/register", deps.DealerAuth.RegisterForm)
	app.Post("/dealer/register", deps.DealerAuth.Register)
	app.Post("/dealer/logout", deps.DealerAuth.Logout)
	app.Get("/dealer", handlers.RequireDealer(), deps.DealerAuth.Portal)

	// ---------- Cart ----------
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/remove", deps.CartHandler.Remove)

	// ---------- Quote flow ----------
	app.Get("/quote", handlers.RequireUser(), deps.QuoteHandler.Form)
	app.Post("/quote", handlers.RequireUser(), deps.QuoteHandler.Submit)
	app.Get("/quotes", handlers.RequireUser(), deps.QuoteHandler.History)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
