package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"showmarket/types"
)

const (
	DefaultBaseURL   = "https://mlb24.theshow.com/apis"
	DefaultUserAgent = "showmarket/1.0"
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 8 << 20
)

// Catalog is the read-only marketplace surface consumed by the TUI and the proxy server.
type Catalog interface {
	Captains(ctx context.Context, q types.CaptainsQuery) (types.CaptainPage, error)
	Items(ctx context.Context, q types.ItemsQuery) (types.ItemPage, error)
	Item(ctx context.Context, id string) (types.ItemDetail, error)
	Listings(ctx context.Context, q types.ListingsQuery) (types.ListingPage, error)
	Listing(ctx context.Context, id string) (types.Listing, error)
}

// Client talks to The Show public API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
	group     singleflight.Group
	now       func() time.Time
}

// Option configures a Client.
type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if ua := strings.TrimSpace(userAgent); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates an upstream client. An empty baseURL uses DefaultBaseURL
// and a nil httpClient gets a client with a 15s timeout.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	c := &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		userAgent: DefaultUserAgent,
		http:      httpClient,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Catalog = (*Client)(nil)

func (c *Client) Captains(ctx context.Context, q types.CaptainsQuery) (types.CaptainPage, error) {
	var page types.CaptainPage
	if err := c.getJSON(ctx, "captains", q.Values(), &page); err != nil {
		return types.CaptainPage{}, err
	}
	return page, nil
}

func (c *Client) Items(ctx context.Context, q types.ItemsQuery) (types.ItemPage, error) {
	var page types.ItemPage
	if err := c.getJSON(ctx, "items", q.Values(), &page); err != nil {
		return types.ItemPage{}, err
	}
	return page, nil
}

func (c *Client) Item(ctx context.Context, id string) (types.ItemDetail, error) {
	normalized, err := NormalizeUUID(id)
	if err != nil {
		return types.ItemDetail{}, err
	}

	var detail types.ItemDetail
	if err := c.getJSON(ctx, "item", url.Values{"uuid": {normalized}}, &detail); err != nil {
		return types.ItemDetail{}, err
	}
	return detail, nil
}

func (c *Client) Listings(ctx context.Context, q types.ListingsQuery) (types.ListingPage, error) {
	var page types.ListingPage
	if err := c.getJSON(ctx, "listings", q.Values(), &page); err != nil {
		return types.ListingPage{}, err
	}
	return page, nil
}

func (c *Client) Listing(ctx context.Context, id string) (types.Listing, error) {
	normalized, err := NormalizeUUID(id)
	if err != nil {
		return types.Listing{}, err
	}

	body, err := c.fetch(ctx, "listing", url.Values{"uuid": {normalized}})
	if err != nil {
		return types.Listing{}, err
	}
	listing, err := types.DecodeListing(body, c.now())
	if err != nil {
		return types.Listing{}, fmt.Errorf("decode listing response: %w", err)
	}
	return listing, nil
}

// NormalizeUUID validates id and returns it in the upstream's 32-hex form.
func NormalizeUUID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidUUID)
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidUUID, trimmed, err)
	}
	return strings.ReplaceAll(parsed.String(), "-", ""), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, dst any) error {
	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// fetch GETs endpoint.json. Identical in-flight requests share one round trip.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	target := c.endpointURL(endpoint, params)
	ch := c.group.DoChan(target, func() (any, error) {
		return c.do(context.WithoutCancel(ctx), endpoint, target)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("request %s: %w", endpoint, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) do(ctx context.Context, endpoint, target string) ([]byte, error) {
	if c.http.Timeout == 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("upstream request failed", "endpoint", endpoint, "url", target, "error", err)
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	c.logger.Debug("upstream request",
		"endpoint", endpoint,
		"url", target,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPStatusError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Body:     summarizeHTTPBody(body),
		}
	}
	return body, nil
}

func (c *Client) endpointURL(endpoint string, params url.Values) string {
	target := c.baseURL + "/" + endpoint + ".json"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}
