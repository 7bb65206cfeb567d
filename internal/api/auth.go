package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"tacgear/internal/domain"
)

// Account carries the profile for one identity kind; exactly one of the two
// pointers is set, matching the kind the call was made for.
type Account struct {
	User   *domain.Profile
	Dealer *domain.DealerProfile
}

func (a Account) Active() bool { return a.User != nil || a.Dealer != nil }

// Registration covers both identity kinds; the user fields and the dealer
// fields are mutually exclusive per request.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// user kind
	Name string `json:"name,omitempty"`
	// dealer kind
	CompanyName string `json:"company_name,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Profile json.RawMessage `json:"profile"`
}

func decodeAccount(kind Kind, raw []byte) (Account, error) {
	if kind == KindDealer {
		var p domain.DealerProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return Account{}, err
		}
		return Account{Dealer: &p}, nil
	}
	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Account{}, err
	}
	return Account{User: &p}, nil
}

// Login exchanges credentials for a bearer token and the resolved profile.
// A rejected email/password surfaces as ErrBadCreds.
func (c *Client) Login(ctx context.Context, kind Kind, email, password string) (string, Account, error) {
	var lr loginResponse
	err := c.do(ctx, http.MethodPost, "/"+kind.pathSegment()+"/login", "",
		loginRequest{Email: email, Password: password}, &lr)
	if errors.Is(err, ErrUnauthenticated) {
		return "", Account{}, ErrBadCreds
	}
	if err != nil {
		return "", Account{}, err
	}
	acct, err := decodeAccount(kind, lr.Profile)
	if err != nil {
		return "", Account{}, &NetworkError{Op: "decode " + string(kind) + " profile", Err: err}
	}
	return lr.Token, acct, nil
}

// Register creates an account. Success does not imply login; dealer accounts
// additionally wait for manual approval before they can sign in.
func (c *Client) Register(ctx context.Context, kind Kind, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/"+kind.pathSegment()+"/register", "", reg, nil)
}

// Profile exchanges a stored bearer token for the account it belongs to.
func (c *Client) Profile(ctx context.Context, kind Kind, token string) (Account, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/"+kind.pathSegment()+"/profile", token, nil, &raw); err != nil {
		return Account{}, err
	}
	acct, err := decodeAccount(kind, raw)
	if err != nil {
		return Account{}, &NetworkError{Op: "decode " + string(kind) + " profile", Err: err}
	}
	return acct, nil
}
