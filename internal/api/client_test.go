package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"tacgear/internal/api"
)

// stubDoer replays a canned response (or transport error) and records the
// requests it saw.
type stubDoer struct {
	status int
	body   string
	err    error
	last   *http.Request
}

func (d *stubDoer) Do(req *http.Request) (*http.Response, error) {
	d.last = req
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: d.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(d.body)),
	}, nil
}

func TestBearerTokenIsAttached(t *testing.T) {
	d := &stubDoer{status: 200, body: `{"items":[],"total":0}`}
	c := api.NewWithDoer("http://platform.test/api", d)

	if _, err := c.Cart(context.Background(), "tok-123"); err != nil {
		t.Fatalf("cart: %v", err)
	}
	if got := d.last.Header.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("bad auth header: %q", got)
	}
	if d.last.URL.String() != "http://platform.test/api/cart" {
		t.Fatalf("bad url: %s", d.last.URL)
	}
}

func TestErrorMapping(t *testing.T) {
	c := func(d *stubDoer) *api.Client { return api.NewWithDoer("http://platform.test/api", d) }

	// 401 on an authenticated call -> ErrUnauthenticated
	_, err := c(&stubDoer{status: 401, body: `{"error":"invalid or missing token"}`}).Cart(context.Background(), "stale")
	if !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("401: want ErrUnauthenticated, got %v", err)
	}

	// 404 -> ErrNotFound
	_, err = c(&stubDoer{status: 404, body: `{"error":"unknown product"}`}).Product(context.Background(), "nope")
	if !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("404: want ErrNotFound, got %v", err)
	}

	// other 4xx -> ValidationError carrying the platform's message
	err = c(&stubDoer{status: 400, body: `{"error":"dealer account pending approval"}`}).
		Register(context.Background(), api.KindDealer, api.Registration{})
	var ve *api.ValidationError
	if !errors.As(err, &ve) || ve.Error() != "dealer account pending approval" {
		t.Fatalf("400: want ValidationError with message, got %v", err)
	}

	// 5xx -> NetworkError with the status recorded
	_, err = c(&stubDoer{status: 503, body: `{"error":"down"}`}).Cart(context.Background(), "tok")
	var ne *api.NetworkError
	if !errors.As(err, &ne) || ne.StatusCode != 503 {
		t.Fatalf("503: want NetworkError{503}, got %v", err)
	}

	// transport failure -> NetworkError with no status
	_, err = c(&stubDoer{err: errors.New("connection refused")}).Cart(context.Background(), "tok")
	if !errors.As(err, &ne) || ne.StatusCode != 0 {
		t.Fatalf("transport: want NetworkError{0}, got %v", err)
	}
}

func TestLoginMapsRejectionToBadCreds(t *testing.T) {
	d := &stubDoer{status: 401, body: `{"error":"invalid email or password"}`}
	c := api.NewWithDoer("http://platform.test/api", d)

	_, _, err := c.Login(context.Background(), api.KindUser, "a@b.test", "nope")
	if !errors.Is(err, api.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if d.last.URL.Path != "/api/users/login" {
		t.Fatalf("bad login path: %s", d.last.URL.Path)
	}
}

func TestKindSelectsRoutePrefix(t *testing.T) {
	d := &stubDoer{status: 200, body: `{"token":"t","profile":{"id":"d-1","email":"x@y.test","company_name":"X","contact_name":"Y","status":"APPROVED"}}`}
	c := api.NewWithDoer("http://platform.test/api", d)

	_, acct, err := c.Login(context.Background(), api.KindDealer, "x@y.test", "Passw0rd1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if d.last.URL.Path != "/api/dealers/login" {
		t.Fatalf("bad dealer path: %s", d.last.URL.Path)
	}
	if acct.Dealer == nil || acct.User != nil {
		t.Fatalf("dealer login must fill the dealer side only: %+v", acct)
	}
}

func TestTokenRejected(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"unauthenticated", api.ErrUnauthenticated, true},
		{"validation", &api.ValidationError{Message: "bad"}, true},
		{"http 5xx", &api.NetworkError{StatusCode: 503, Err: errors.New("down")}, true},
		{"transport", &api.NetworkError{Err: errors.New("timeout")}, false},
	}
	for _, tc := range cases {
		if got := api.TokenRejected(tc.err); got != tc.want {
			t.Errorf("%s: TokenRejected=%v, want %v", tc.name, got, tc.want)
		}
	}
}
