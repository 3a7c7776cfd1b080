package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguelookup/pkg/config"
	"leaguelookup/pkg/messages"
	"leaguelookup/pkg/metrics"
	"net/http"
	"net/url"
	"time"
)

// Client holds everything needed to talk with the Riot API.
// It's shared between every fetcher of the same region.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	timeout    time.Duration
	limiter    Limiter
	metrics    metrics.Metrics
}

// Create the client for the configured region.
func CreateClient(cfg config.RiotConfiguration, limiter Limiter, m metrics.Metrics) *Client {
	if limiter == nil {
		limiter = NoLimit{}
	}
	if m == nil {
		m = metrics.Nop{}
	}

	return &Client{
		httpClient: &http.Client{},
		apiKey:     cfg.ApiKey,
		baseURL:    cfg.BaseURLFor(),
		timeout:    cfg.RequestTimeout,
		limiter:    limiter,
		metrics:    m,
	}
}

// BaseURL of the platform host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do a authenticated request to the Riot API.
// Return the respose.
func (c *Client) AuthRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// Add the token from the configuration.
	req.Header.Set("X-Riot-Token", c.apiKey)
	return c.httpClient.Do(req)
}

// Create a simple request and return it.
func Request(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

// GetJSON waits for the limiter, requests the path and decodes the body into T.
// A 404 is returned as notFound when it's set, since each endpoint gives it a different meaning.
func GetJSON[T any](ctx context.Context, c *Client, endpoint string, path string, query url.Values, notFound error) (*T, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", ErrTransport, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	start := time.Now()
	resp, err := c.AuthRequest(ctx, fullURL)
	if err != nil {
		c.metrics.ObserveRequest(endpoint, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: "+messages.RequestFailedMsg+": %w", ErrTransport, fullURL, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(endpoint, resp.StatusCode, time.Since(start).Seconds())

	// Check the status code.
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		if notFound != nil {
			return nil, notFound
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: fullURL}
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: fullURL}
	}

	// Parse the body.
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// The deadline can hit while the body is still being read.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: "+messages.RequestFailedMsg+": %w", ErrTransport, fullURL, ctxErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &out, nil
}
