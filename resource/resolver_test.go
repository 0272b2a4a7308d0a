package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/belgraph/bel/entity"
)

func TestResolver_ResolveCachesAcrossCalls(t *testing.T) {
	inner := &stubFetcher{body: []byte("AKT1\nTP53|G")}
	r, err := NewResolver(inner, nil, 0)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	ctx := context.Background()

	v1, err := r.Resolve(ctx, "https://example.test/hgnc")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !v1.Contains("AKT1", entity.Function{}) {
		t.Error("expected AKT1 to resolve")
	}
	if !v1.Contains("TP53", entity.Gene) {
		t.Error("expected TP53 to be valid as Gene")
	}

	if _, err := r.Resolve(ctx, "https://example.test/hgnc"); err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if inner.n != 1 {
		t.Errorf("fetcher called %d times; want 1 (cache hit expected)", inner.n)
	}
}

func TestResolver_FetchFailureWrapped(t *testing.T) {
	inner := &stubFetcher{err: errors.New("connection refused")}
	r, err := NewResolver(inner, nil, 0)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	_, err = r.Resolve(context.Background(), "https://example.test/missing")
	if !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("Resolve() error = %v; want ErrResourceUnavailable", err)
	}
}

func TestResolver_PrefetchAll(t *testing.T) {
	inner := &stubFetcher{body: []byte("AKT1")}
	r, err := NewResolver(inner, nil, 0)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	urls := []string{
		"https://example.test/a",
		"https://example.test/b",
		"https://example.test/c",
	}
	if err := r.PrefetchAll(context.Background(), urls, 2); err != nil {
		t.Fatalf("PrefetchAll: %v", err)
	}
	for _, u := range urls {
		if _, ok := r.cache.Get(u); !ok {
			t.Errorf("expected %s to be cached after prefetch", u)
		}
	}
}

func TestParseEnumerated_SkipsBlankAndCommentLines(t *testing.T) {
	body := []byte("# comment\n\nAKT1\nTP53|G\n")
	v, err := ParseEnumerated(body)
	if err != nil {
		t.Fatalf("ParseEnumerated: %v", err)
	}
	if !v.Contains("AKT1", entity.Function{}) {
		t.Error("expected AKT1 to be present")
	}
	if !v.Contains("TP53", entity.Gene) {
		t.Error("expected TP53 to be valid as Gene")
	}
	if v.Contains("TP53", entity.Protein) {
		t.Error("expected TP53 not to be valid as Protein")
	}
}
