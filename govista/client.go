package govista

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Slow payment confirmations can take minutes; every call shares this
// single upper bound.
const requestTimeout = 5 * time.Minute

// TokenSource provides the bearer tokens for an outbound request and
// clears them when the API reports the session expired. It is injected
// so the client never reads credential state ambiently.
type TokenSource interface {
	Tokens(ctx context.Context) (user, admin string)
	Clear(ctx context.Context)
}

// Client talks to the Govista REST API.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: requestTimeout},
		log:     log.With("component", "govista"),
	}
}

// do is the single choke point for outbound calls: it attaches one
// bearer token (admin preferred over user), issues the request and
// normalizes every failure into *APIError. Reads send query parameters,
// writes send a JSON body. A 401 on an authenticated request clears
// the stored tokens and returns ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	callURL, err := url.JoinPath(c.baseURL, path)

	if err != nil {
		return fmt.Errorf("failed to create URL: %w", err)
	}

	var body io.Reader = http.NoBody

	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)

		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}

		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, callURL, body)

	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if len(query) != 0 {
		req.URL.RawQuery = query.Encode()
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	userToken, adminToken := c.tokens.Tokens(ctx)
	token := preferAdmin(userToken, adminToken)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)

	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "requestId", requestID, "err", err)
		return &APIError{Message: err.Error(), Err: err}
	}

	defer res.Body.Close()

	resBody, readErr := io.ReadAll(res.Body)

	// A 401 only means the session expired when we actually sent a
	// token; an unauthenticated 401 (bad login credentials) carries a
	// server message worth surfacing.
	if res.StatusCode == http.StatusUnauthorized && token != "" {
		c.log.Warn("session expired, clearing credentials", "method", method, "path", path, "requestId", requestID)
		c.tokens.Clear(ctx)
		return ErrSessionExpired
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: res.StatusCode, Message: serverMessage(resBody)}
		c.log.Error("request failed", "method", method, "path", path, "requestId", requestID, "status", res.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if out != nil {
		if err := json.Unmarshal(resBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// preferAdmin picks the admin token over the user token when both are
// stored, matching the operator route tree's permissions.
func preferAdmin(user, admin string) string {
	if admin != "" {
		return admin
	}
	return user
}

// serverMessage pulls a human-readable message out of a structured
// error body, preferring message over error, with a generic fallback.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return genericFailure
}

const genericFailure = "API request failed"

// APIError is the single error shape every remote failure is
// normalized into.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return genericFailure
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// UserMessage extracts the message to surface for err, falling back to
// a generic string for anything that is not an APIError.
func UserMessage(err error) string {
	var apiErr *APIError

	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	if err != nil {
		return err.Error()
	}

	return genericFailure
}
