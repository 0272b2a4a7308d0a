package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// Fetcher retrieves the raw bytes of a declared resource URL. Production
// code uses [HTTPFetcher]; tests supply a map-backed or error-injecting
// stub.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches resources over HTTP(S) using a shared client.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher using client, or http.DefaultClient
// if client is nil.
func NewHTTPFetcher(client *http.Client) HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return HTTPFetcher{Client: client}
}

// Fetch implements [Fetcher].
func (f HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("resource: build request for %s: %w", url, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resource: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resource: fetch %s: status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("resource: read body of %s: %w", url, err)
	}
	return body, nil
}

// RateLimitedFetcher wraps a Fetcher with a token-bucket limiter, so a
// document with many DEFINE NAMESPACE/ANNOTATION lines cannot burst a
// remote resource host.
type RateLimitedFetcher struct {
	inner   Fetcher
	limiter *rate.Limiter
}

// NewRateLimitedFetcher wraps inner with limiter.
func NewRateLimitedFetcher(inner Fetcher, limiter *rate.Limiter) RateLimitedFetcher {
	return RateLimitedFetcher{inner: inner, limiter: limiter}
}

// Fetch implements [Fetcher], waiting on the limiter before delegating.
func (f RateLimitedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("resource: rate limit wait for %s: %w", url, err)
	}
	return f.inner.Fetch(ctx, url)
}
