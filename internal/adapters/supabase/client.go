// Package supabase implements ports.Backend against a Supabase (PostgREST)
// REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"roastline/internal/metrics"
	"roastline/pkg/domain"
	"roastline/pkg/ports"
)

// Client talks to the Supabase REST endpoint. All methods are fallible; the
// session treats every error as recoverable.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the given project URL and anon key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Backend = (*Client)(nil)

func (c *Client) restURL(table string) string {
	return c.baseURL + "/rest/v1/" + table
}

// do performs one REST call and decodes the JSON response into out (skipped
// when out is nil).
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %w: %d %s", method, rawURL, domain.ErrBackendStatus, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) ListRegions(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	err := c.do(ctx, http.MethodGet, c.restURL("regions")+"?order=name.asc", nil, &regions)
	metrics.ObserveBackend("list_regions", err)
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (c *Client) ListProducts(ctx context.Context, regionID string) ([]domain.Product, error) {
	q := url.Values{}
	if regionID != "" {
		q.Set("region_id", "eq."+regionID)
	}
	q.Set("in_stock", "eq.true")
	q.Set("order", "category.asc,name.asc")

	var products []domain.Product
	err := c.do(ctx, http.MethodGet, c.restURL("products")+"?"+q.Encode(), nil, &products)
	metrics.ObserveBackend("list_products", err)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListSavedAddresses(ctx context.Context, fingerprint string) ([]domain.SavedAddress, error) {
	q := url.Values{}
	q.Set("user_fingerprint", "eq."+fingerprint)
	q.Set("order", "created_at.desc")
	q.Set("limit", "3")

	var addrs []domain.SavedAddress
	err := c.do(ctx, http.MethodGet, c.restURL("saved_addresses")+"?"+q.Encode(), nil, &addrs)
	metrics.ObserveBackend("list_saved_addresses", err)
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (c *Client) CreateSavedAddress(ctx context.Context, addr domain.SavedAddress) (domain.SavedAddress, error) {
	// PostgREST returns the inserted rows as an array.
	var created []domain.SavedAddress
	err := c.do(ctx, http.MethodPost, c.restURL("saved_addresses"), addr, &created)
	metrics.ObserveBackend("create_saved_address", err)
	if err != nil {
		return domain.SavedAddress{}, err
	}
	if len(created) == 0 {
		return addr, nil
	}
	return created[0], nil
}

func (c *Client) DeleteSavedAddress(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	err := c.do(ctx, http.MethodDelete, c.restURL("saved_addresses")+"?"+q.Encode(), nil, nil)
	metrics.ObserveBackend("delete_saved_address", err)
	return err
}

func (c *Client) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+userID)
	q.Set("order", "created_at.desc")

	var orders []domain.Order
	err := c.do(ctx, http.MethodGet, c.restURL("orders")+"?"+q.Encode(), nil, &orders)
	metrics.ObserveBackend("list_orders", err)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+userID)
	q.Set("order", "created_at.desc")

	var subs []domain.Subscription
	err := c.do(ctx, http.MethodGet, c.restURL("subscriptions")+"?"+q.Encode(), nil, &subs)
	metrics.ObserveBackend("list_subscriptions", err)
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	var created []domain.Order
	err := c.do(ctx, http.MethodPost, c.restURL("orders"), order, &created)
	metrics.ObserveBackend("create_order", err)
	if err != nil {
		return domain.Order{}, err
	}
	if len(created) == 0 {
		return order, nil
	}
	return created[0], nil
}

func (c *Client) CreateSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	var created []domain.Subscription
	err := c.do(ctx, http.MethodPost, c.restURL("subscriptions"), sub, &created)
	metrics.ObserveBackend("create_subscription", err)
	if err != nil {
		return domain.Subscription{}, err
	}
	if len(created) == 0 {
		return sub, nil
	}
	return created[0], nil
}
