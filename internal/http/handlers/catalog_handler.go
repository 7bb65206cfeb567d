package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tacgear/internal/api"
	applog "tacgear/internal/log"
)

// CatalogHandler proxies the platform's catalog read endpoints into pages.
// Pure presentation; no state of its own.
type CatalogHandler struct {
	API *api.Client
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	featured, err := h.API.Featured(ctx)
	if err != nil {
		applog.Error(c, "home.load", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Catalog is unavailable right now"})
	}
	deals, err := h.API.Deals(ctx)
	if err != nil {
		applog.Error(c, "home.deals", err, nil)
		deals = nil // home still renders without the deals strip
	}
	return render(c, "home", fiber.Map{"Featured": featured, "Deals": deals})
}

func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	f := api.ProductFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Search:   c.Query("search"),
	}
	if v := c.Query("min_price"); v != "" {
		f.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		f.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}

	products, err := h.API.Products(c.UserContext(), f)
	if err != nil {
		applog.Error(c, "products.load", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Catalog is unavailable right now"})
	}
	categories, _ := h.API.Categories(c.UserContext())
	brands, _ := h.API.Brands(c.UserContext())
	return render(c, "products", fiber.Map{
		"Products": products, "Categories": categories, "Brands": brands, "Filter": f,
	})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	p, err := h.API.Product(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"Product": p})
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.API.Categories(c.UserContext())
	if err != nil {
		applog.Error(c, "categories.load", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Catalog is unavailable right now"})
	}
	return render(c, "categories", fiber.Map{"Categories": categories})
}

func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.API.Brands(c.UserContext())
	if err != nil {
		applog.Error(c, "brands.load", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Catalog is unavailable right now"})
	}
	return render(c, "brands", fiber.Map{"Brands": brands})
}
