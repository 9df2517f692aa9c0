// Package catalog is the typed HTTP client for the remote catalog service.
// It owns envelope normalization, default substitution and the error
// taxonomy; everything past this package sees flat, normalized shapes.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production catalog origin.
const DefaultBaseURL = "https://keldibekov.online"

// defaultRetries is the number of extra attempts after a transport error
// or a 5xx. 4xx responses are never retried.
const defaultRetries = 2

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// RequestsPerSecond throttles outbound calls; 0 disables the limiter.
	RequestsPerSecond float64
	Burst             int
	// Retries overrides defaultRetries when > 0; -1 disables retries.
	Retries int
}

type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
	retries int
}

func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	retries := cfg.Retries
	switch {
	case retries == 0:
		retries = defaultRetries
	case retries < 0:
		retries = 0
	}
	return &Client{base: base, http: httpClient, limiter: limiter, retries: retries}
}

// response is the terminal result of do: the last status and body seen,
// whatever the status was. Status mapping is left to the operations.
type response struct {
	status int
	body   []byte
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, token string, body io.Reader, contentType string) (*http.Request, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do issues a JSON request, retrying transport errors and 5xx responses up
// to c.retries extra times. The limiter gate applies to every attempt.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, payload any) (*response, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("catalog: encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 250 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		var reader io.Reader
		contentType := ""
		if body != nil {
			reader = bytes.NewReader(body)
			contentType = "application/json"
		}
		req, err := c.newRequest(ctx, method, path, query, token, reader, contentType)
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 && attempt < c.retries {
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			continue
		}
		return &response{status: resp.StatusCode, body: respBody}, nil
	}
	return nil, fmt.Errorf("catalog: %s %s failed: %w", method, path, lastErr)
}

// serverMessage pulls the server-provided failure detail out of an error
// body, falling back to the operation's generic string.
func serverMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return fallback
}

// statusError maps a failure response for resource operations: 404 is
// NotFound, 401 means the action needed auth, anything else keeps its
// status and message.
func statusError(r *response, fallback string) error {
	switch {
	case r.status < 400:
		return nil
	case r.status == http.StatusNotFound:
		return ErrNotFound
	case r.status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuthRequired, serverMessage(r.body, fallback))
	}
	return &HTTPError{Status: r.status, Message: serverMessage(r.body, fallback)}
}

// httpError keeps every failure as an HTTPError. The auth endpoints use
// this: a 401 from /auth/login is a wrong password, not a missing token,
// and its message must reach the form verbatim.
func httpError(r *response, fallback string) error {
	if r.status < 400 {
		return nil
	}
	return &HTTPError{Status: r.status, Message: serverMessage(r.body, fallback)}
}

func logSoftFailure(op string, err error) {
	log.Printf("⚠️  catalog: %s failed: %v", op, err)
}
