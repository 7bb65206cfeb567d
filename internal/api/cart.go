package api

import (
	"context"
	"net/http"

	"tacgear/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart reads the authoritative cart for the user the token belongs to.
func (c *Client) Cart(ctx context.Context, token string) (domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// AddCartItem adds a line to the server cart. Callers must follow up with a
// Cart read; the response body here is not the cart.
func (c *Client) AddCartItem(ctx context.Context, token, productID string, qty int) error {
	return c.do(ctx, http.MethodPost, "/cart/add", token,
		addItemRequest{ProductID: productID, Quantity: qty}, nil)
}

// RemoveCartItem deletes a line from the server cart.
func (c *Client) RemoveCartItem(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/item/"+productID, token, nil, nil)
}
