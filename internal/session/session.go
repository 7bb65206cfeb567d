// Package session holds the per-browser-session state container: which of
// the two identity kinds (user, dealer) is signed in, the cached copy of the
// server-held cart, and the quote submission flow fed from that cart.
//
// The Session is explicit state passed to every consumer; nothing in this
// package is a process-wide singleton. The cached cart follows a strict
// mutate-then-refetch contract: every add/remove round-trips through the
// platform and is followed by an authoritative re-read, so the cart shown to
// the UI is always the last successful server state and a failed mutation
// changes nothing locally.
package session

import (
	"sync"

	"tacgear/internal/api"
	"tacgear/internal/credstore"
	"tacgear/internal/domain"
)

// slot is one identity kind's resolved state. Session holds one slot per
// kind; the two are independent and never wait on each other.
type slot struct {
	kind api.Kind
	acct api.Account
}

func (sl *slot) active() bool         { return sl.acct.Active() }
func (sl *slot) set(a api.Account)    { sl.acct = a }
func (sl *slot) clear()               { sl.acct = api.Account{} }
func (sl *slot) account() api.Account { return sl.acct }

// Session is the controller facade for one browser session (sid cookie). It
// owns the identity slots and the cart cache; the credential store is its
// passive side-store. The mutex guards the in-memory state only — network
// round-trips are never held under it, so concurrent cart mutations are
// allowed to race and the last refresh response observed wins.
type Session struct {
	sid   string
	api   *api.Client
	creds *credstore.Store

	mu    sync.Mutex
	slots map[api.Kind]*slot
	cart  domain.Cart
}

func New(sid string, client *api.Client, creds *credstore.Store) *Session {
	s := &Session{
		sid:   sid,
		api:   client,
		creds: creds,
		slots: make(map[api.Kind]*slot, len(api.Kinds)),
	}
	for _, k := range api.Kinds {
		s.slots[k] = &slot{kind: k}
	}
	return s
}

func (s *Session) SID() string { return s.sid }

// Identity returns the resolved account for a kind, or an inactive Account
// when that kind is signed out.
func (s *Session) Identity(kind api.Kind) api.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[kind].account()
}

// User is a convenience accessor for the retail identity.
func (s *Session) User() *domain.Profile {
	return s.Identity(api.KindUser).User
}

// Dealer is a convenience accessor for the B2B identity.
func (s *Session) Dealer() *domain.DealerProfile {
	return s.Identity(api.KindDealer).Dealer
}

// userCredential returns the stored user token, but only while the user
// identity is actually resolved. A token on disk without a resolved profile
// does not count as signed in.
func (s *Session) userCredential() (string, bool) {
	s.mu.Lock()
	active := s.slots[api.KindUser].active()
	s.mu.Unlock()
	if !active {
		return "", false
	}
	return s.creds.Get(s.sid, api.KindUser)
}
