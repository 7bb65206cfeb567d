package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"tacgear/internal/domain"
)

// ProductFilter narrows the product listing; zero values mean "no filter".
type ProductFilter struct {
	Category string
	Brand    string
	Search   string
	MinPrice float64
	MaxPrice float64
}

func (f ProductFilter) query() string {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.MinPrice > 0 {
		v.Set("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		v.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) Products(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products"+f.query(), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, "", nil, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Featured lists the platform's curated home-page picks.
func (c *Client) Featured(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/featured", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Deals(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/deals", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Brands(ctx context.Context) ([]domain.Brand, error) {
	var out []domain.Brand
	if err := c.do(ctx, http.MethodGet, "/brands", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
