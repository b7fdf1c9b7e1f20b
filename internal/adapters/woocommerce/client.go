package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
)

const (
	apiPrefix             = "/wp-json/wc/v3/"
	totalPagesHeader      = "X-WP-TotalPages"
	errorBodyLimit  int64 = 1024
	defaultTimeout        = 15 * time.Second
)

var errBaseURLRequired = errors.New("woocommerce store url is required")

// Client talks to the WooCommerce REST API (wc/v3) with consumer key credentials.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	consumerKey    string
	consumerSecret string
	now            func() time.Time
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithClock overrides the clock used for generated usernames.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient builds a client for the store at baseURL, e.g. https://shop.example.com.
func NewClient(baseURL, consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	client := &Client{
		httpClient:     &http.Client{Timeout: defaultTimeout},
		baseURL:        trimmed,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		now:            time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

var _ portsrepo.CatalogRepositoryFacade = (*Client)(nil)

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func remoteErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrRemoteFetch, op, err)
}

// do sends one request and decodes a 2xx JSON body into out. The response headers are returned for paging.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, remoteErr(op, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, remoteErr(op, fmt.Errorf("build request: %w", err))
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, remoteErr(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, remoteErr(op, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, remoteErr(op, fmt.Errorf("decode response: %w", err))
		}
	}
	return resp.Header, nil
}
