package session

import (
	"context"
	"sync"
	"time"

	"tacgear/internal/api"
	"tacgear/internal/domain"
	applog "tacgear/internal/log"
)

// Resolve exchanges each stored credential for a profile. The two kinds
// resolve concurrently and independently; neither waits on the other. A
// definitive rejection purges the stale token from the store — idempotent
// cleanup, no retry. A transport failure leaves the token in place so the
// next start can try again.
func (s *Session) Resolve(ctx context.Context) {
	var wg sync.WaitGroup
	for _, kind := range api.Kinds {
		token, ok := s.creds.Get(s.sid, kind)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(kind api.Kind, token string) {
			defer wg.Done()
			s.resolveKind(ctx, kind, token)
		}(kind, token)
	}
	wg.Wait()
}

func (s *Session) resolveKind(ctx context.Context, kind api.Kind, token string) {
	start := time.Now()
	acct, err := s.api.Profile(ctx, kind, token)
	if err != nil {
		if api.TokenRejected(err) {
			_ = s.creds.Clear(s.sid, kind)
		}
		applog.Backend("session.resolve."+string(kind), time.Since(start), err, nil)
		return
	}
	s.mu.Lock()
	s.slots[kind].set(acct)
	s.mu.Unlock()
	if kind == api.KindUser {
		if err := s.RefreshCart(ctx); err != nil {
			applog.Backend("session.resolve.cart", time.Since(start), err, nil)
		}
	}
}

// Login signs one identity kind in. On success the credential is persisted,
// the slot is set, and — for the user kind — the cart is refreshed. On
// failure every slot is left untouched; a failed dealer login does not drop
// an active user session or vice versa.
func (s *Session) Login(ctx context.Context, kind api.Kind, email, password string) (api.Account, error) {
	token, acct, err := s.api.Login(ctx, kind, email, password)
	if err != nil {
		return api.Account{}, err
	}
	if err := s.creds.Put(s.sid, kind, token); err != nil {
		return api.Account{}, err
	}
	s.mu.Lock()
	s.slots[kind].set(acct)
	s.mu.Unlock()

	if kind == api.KindUser {
		// Login already succeeded; a failed first refresh just leaves the
		// cart at its empty default until the next read.
		if err := s.RefreshCart(ctx); err != nil {
			applog.Backend("session.login.cart", 0, err, nil)
		}
	}
	return acct, nil
}

// Register creates an account on the platform and is side-effect-free
// locally: success does not sign anyone in, and dealer accounts still need
// manual approval before their first login.
func (s *Session) Register(ctx context.Context, kind api.Kind, reg api.Registration) error {
	return s.api.Register(ctx, kind, reg)
}

// Logout is a total reset: both credentials, both identity slots, and the
// cart cache are dropped no matter which kind initiated it. Signing out as
// dealer deliberately ends an active user session too — the storefront
// treats "log out" as "this browser is done", not "this role is done".
func (s *Session) Logout() {
	_ = s.creds.ClearAll(s.sid)
	s.mu.Lock()
	for _, sl := range s.slots {
		sl.clear()
	}
	s.cart = domain.Cart{}
	s.mu.Unlock()
}
