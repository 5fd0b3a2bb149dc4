// Package suggest fetches search query completions over HTTP.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/logging"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds a single suggestion request.
	DefaultTimeout = 3 * time.Second
	userAgent      = "Mozilla/5.0"
)

// ErrUnexpectedResponse is returned when the endpoint body is not an
// OpenSearch suggestions array.
var ErrUnexpectedResponse = errors.New("unexpected suggestion response")

// Client queries an OpenSearch-style suggestion endpoint
// (`["query", ["completion", ...]]`), such as Google's firefox client.
type Client struct {
	resty    *resty.Client
	endpoint string
}

var _ port.SuggestionProvider = (*Client)(nil)

// NewClient creates a client for endpoint. The query is appended as q=.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	r := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &Client{
		resty:    r,
		endpoint: endpoint,
	}
}

// Suggest returns completions for query in endpoint order.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to request suggestions: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("suggestion endpoint returned %s", resp.Status())
	}

	suggestions, err := parseOpenSearch(resp.Body())
	if err != nil {
		return nil, err
	}

	log.Trace().
		Str("query", query).
		Int("count", len(suggestions)).
		Dur("duration", time.Since(start)).
		Msg("suggestion request completed")

	return suggestions, nil
}

func parseOpenSearch(body []byte) ([]string, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %d elements", ErrUnexpectedResponse, len(parts))
	}

	var suggestions []string
	if err := json.Unmarshal(parts[1], &suggestions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions, nil
}
