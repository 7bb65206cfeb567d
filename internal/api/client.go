package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	applog "tacgear/internal/log"
)

// Kind selects one of the two mutually independent authentication domains.
type Kind string

const (
	KindUser   Kind = "user"
	KindDealer Kind = "dealer"
)

// Kinds lists both identity kinds in resolver order.
var Kinds = []Kind{KindUser, KindDealer}

func (k Kind) Valid() bool { return k == KindUser || k == KindDealer }

// pathSegment maps the kind onto the platform's route prefix.
func (k Kind) pathSegment() string {
	if k == KindDealer {
		return "dealers"
	}
	return "users"
}

// Doer is the transport the client sends requests through. *http.Client
// satisfies it; tests plug the in-process dev backend in instead.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a typed client for the commerce platform API. All methods take a
// context and the underlying transport carries a timeout, so a hung platform
// call fails instead of leaving the UI loading forever.
type Client struct {
	base string
	http Doer
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{base: baseURL, http: &http.Client{Timeout: timeout}}
}

// NewWithDoer builds a client over a custom transport.
func NewWithDoer(baseURL string, d Doer) *Client {
	return &Client{base: baseURL, http: d}
}

type errBody struct {
	Error string `json:"error"`
}

// do runs one round-trip and maps the response onto the error taxonomy:
// 401/403 -> ErrUnauthenticated, 404 -> ErrNotFound, other 4xx ->
// *ValidationError, 5xx and transport failures -> *NetworkError.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	op := method + " " + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &NetworkError{Op: op, Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	applog.Backend("backend."+op, time.Since(start), err, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	var eb errBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 500:
		return &ValidationError{Message: eb.Error}
	default:
		return &NetworkError{Op: op, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("platform returned %d: %s", resp.StatusCode, eb.Error)}
	}
}
