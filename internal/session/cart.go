package session

import (
	"context"

	"tacgear/internal/api"
	"tacgear/internal/domain"
)

// Cart returns a snapshot of the last successfully fetched server cart. The
// total inside is server truth; nothing here is summed locally.
func (s *Session) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := domain.Cart{Total: s.cart.Total}
	if len(s.cart.Items) > 0 {
		out.Items = make([]domain.CartItem, len(s.cart.Items))
		copy(out.Items, s.cart.Items)
	}
	return out
}

// AddItem adds a product to the server cart and then re-reads the cart so
// the next render reflects server state. Without an active user identity it
// fails with api.ErrUnauthenticated before any network call; the caller is
// expected to redirect to login rather than drop the action silently.
//
// A second AddItem fired before the first refresh resolves is allowed to
// race: whichever refresh response lands last wins. That is the consistency
// model, not a bug — the server cart is always right and the cache only ever
// lags it.
func (s *Session) AddItem(ctx context.Context, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	token, ok := s.userCredential()
	if !ok {
		return api.ErrUnauthenticated
	}
	if err := s.api.AddCartItem(ctx, token, productID, qty); err != nil {
		// Cached cart untouched: no optimistic line was inserted, so there
		// is nothing to roll back.
		return err
	}
	return s.RefreshCart(ctx)
}

// RemoveItem mirrors AddItem: mutate remotely, then refresh.
func (s *Session) RemoveItem(ctx context.Context, productID string) error {
	token, ok := s.userCredential()
	if !ok {
		return api.ErrUnauthenticated
	}
	if err := s.api.RemoveCartItem(ctx, token, productID); err != nil {
		return err
	}
	return s.RefreshCart(ctx)
}

// RefreshCart replaces the cache with the authoritative server cart. With no
// active user identity it resolves to an empty cart without a network call.
// On failure the previous cache is kept as-is.
func (s *Session) RefreshCart(ctx context.Context) error {
	token, ok := s.userCredential()
	if !ok {
		s.mu.Lock()
		s.cart = domain.Cart{}
		s.mu.Unlock()
		return nil
	}
	cart, err := s.api.Cart(ctx, token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	return nil
}
