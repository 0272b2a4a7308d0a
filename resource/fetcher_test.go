package resource

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/time/rate"
)

type stubFetcher struct {
	body []byte
	err  error
	n    int
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	s.n++
	return s.body, s.err
}

func TestRateLimitedFetcher_DelegatesOnPermit(t *testing.T) {
	inner := &stubFetcher{body: []byte("AKT1")}
	f := NewRateLimitedFetcher(inner, rate.NewLimiter(rate.Inf, 1))
	body, err := f.Fetch(context.Background(), "https://example.test/ns")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(body) != "AKT1" {
		t.Errorf("Fetch() = %q; want %q", body, "AKT1")
	}
	if inner.n != 1 {
		t.Errorf("inner fetcher called %d times; want 1", inner.n)
	}
}

func TestRateLimitedFetcher_ContextCanceled(t *testing.T) {
	inner := &stubFetcher{body: []byte("AKT1")}
	f := NewRateLimitedFetcher(inner, rate.NewLimiter(0, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, "https://example.test/ns"); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v; want context.Canceled", err)
	}
}
