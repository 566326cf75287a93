// Package api implements the authenticated GraphQL client for the
// storefront backend: one typed method per server operation over a shared
// JSON-POST transport with a bearer-attaching, logout-intercepting hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/novakart/storefront/internal/logging"
)

const codeUnauthenticated = "UNAUTHENTICATED"

// GraphQLClient talks to the storefront GraphQL endpoint. The token
// source and the unauthenticated hook are injected so the session layer
// owns credential state; the client itself stays stateless.
type GraphQLClient struct {
	endpoint string
	httpc    *http.Client
	log      logging.Logger

	tokenFn func() string
	onUnauf func()
}

type Option func(*GraphQLClient)

// WithTokenSource sets the function consulted for the bearer token on
// every request. An empty return sends no Authorization header value.
func WithTokenSource(fn func() string) Option {
	return func(c *GraphQLClient) { c.tokenFn = fn }
}

// WithUnauthenticatedHook sets the callback invoked when the server
// rejects a request as unauthenticated. Deduplication across concurrent
// failures is the hook owner's concern (the session store uses a
// per-generation once).
func WithUnauthenticatedHook(fn func()) Option {
	return func(c *GraphQLClient) { c.onUnauf = fn }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *GraphQLClient) { c.httpc = h }
}

func NewGraphQLClient(endpoint string, timeout time.Duration, log logging.Logger, opts ...Option) *GraphQLClient {
	c := &GraphQLClient{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: timeout},
		log:      log,
		tokenFn:  func() string { return "" },
		onUnauf:  func() {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *GraphQLClient) Close() error { return nil }

type gqlRequest struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

type gqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// do posts one operation and decodes the data payload into out (when out
// is non-nil). GraphQL errors with the UNAUTHENTICATED extension code
// fire the logout hook and map to ErrUnauthenticated; transport failures
// map to ErrUnavailable; any other GraphQL error surfaces its message.
func (c *GraphQLClient) do(ctx context.Context, opName, query string, vars any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", opName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s: %w", opName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokenFn(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request transport failure", "op", opName, "err", err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, opName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %v", ErrUnavailable, opName, err)
	}

	var env gqlEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Warn(ctx, "malformed response", "op", opName, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s: http %d", ErrUnavailable, opName, resp.StatusCode)
	}

	if len(env.Errors) > 0 {
		for _, e := range env.Errors {
			if e.Extensions.Code == codeUnauthenticated {
				c.log.Info(ctx, "unauthenticated response, forcing logout", "op", opName)
				c.onUnauf()
				return fmt.Errorf("%s: %w", opName, ErrUnauthenticated)
			}
		}
		return businessError(env.Errors[0].Message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s: %w", opName, err)
		}
	}
	return nil
}

// Ack is the generic success/message mutation payload.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Err converts a success:false payload into a business error carrying
// the server message verbatim.
func (a Ack) Err() error {
	if a.Success {
		return nil
	}
	return businessError(a.Message)
}
