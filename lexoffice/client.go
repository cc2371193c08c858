// Package lexoffice is a minimal client for the lexoffice public API contacts and invoices
// endpoints.
package lexoffice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const DefaultURL = "https://api.lexoffice.io"

// Policy is the number of attempts and the fixed delay between attempts for a retried request.
type Policy struct {
	Attempts uint
	Delay    time.Duration
}

type Client struct {
	// Contacts governs contact lookups, retried on any failure.
	Contacts Policy

	// Invoices governs invoice creation, retried only when rate limited.
	Invoices Policy

	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient returns a client that sends the access token as a bearer credential. A non-positive
// requestsPerSecond disables client side pacing.
func NewClient(ctx context.Context, baseURL, accessToken string, timeout time.Duration, requestsPerSecond float64) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultURL
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	client.Timeout = timeout

	return &Client{
		Contacts: Policy{Attempts: 3, Delay: 1 * time.Second},
		Invoices: Policy{Attempts: 3, Delay: 5 * time.Second},

		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (int, []byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	rq, err := http.NewRequestWithContext(ctx, method, uri, r)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}

	rq.Header.Set("Accept", "application/json")
	if body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}

	response, err := c.client.Do(rq)
	if err != nil {
		return 0, nil, fmt.Errorf("error making request: %w", err)
	}

	defer response.Body.Close()

	reply, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, nil, fmt.Errorf("error reading response: %w", err)
	}

	return response.StatusCode, reply, nil
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %v", "WARN", fmt.Sprintf(format, args...))
}
