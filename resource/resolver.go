package resource

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/belgraph/bel/entity"
)

// ParseFunc turns the raw bytes of a fetched resource into a Validator.
// Resolver's default, [ParseEnumerated], treats the body as a pipe-delimited
// .belns-style name list; callers may supply their own for other resource
// shapes.
type ParseFunc func(body []byte) (Validator, error)

// Resolver resolves declared namespace/annotation URLs to [Validator]s,
// caching results for the lifetime of one compilation (spec.md §4.3, §5).
type Resolver struct {
	fetcher Fetcher
	parse   ParseFunc
	cache   *lru.Cache[string, Validator]
}

// NewResolver constructs a Resolver. cacheSize bounds the number of
// resolved URLs retained at once; a zero or negative value uses a default
// of 64. If parse is nil, [ParseEnumerated] is used.
func NewResolver(fetcher Fetcher, parse ParseFunc, cacheSize int) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = 64
	}
	if parse == nil {
		parse = ParseEnumerated
	}
	cache, err := lru.New[string, Validator](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("resource: build cache: %w", err)
	}
	return &Resolver{fetcher: fetcher, parse: parse, cache: cache}, nil
}

// Resolve returns the Validator for url, fetching and parsing it on a cache
// miss. A fetch or parse failure is fatal per spec.md §7 and is wrapped in
// [ErrResourceUnavailable].
func (r *Resolver) Resolve(ctx context.Context, url string) (Validator, error) {
	if v, ok := r.cache.Get(url); ok {
		return v, nil
	}
	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, url, err)
	}
	v, err := r.parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, url, err)
	}
	r.cache.Add(url, v)
	return v, nil
}

// PrefetchAll resolves every url concurrently, bounded by limit in-flight
// fetches, so a run of DEFINE lines declared ahead of any statement that
// needs them does not serialize on network latency. A zero or negative
// limit leaves errgroup's concurrency unbounded.
func (r *Resolver) PrefetchAll(ctx context.Context, urls []string, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, url := range urls {
		url := url
		g.Go(func() error {
			_, err := r.Resolve(ctx, url)
			return err
		})
	}
	return g.Wait()
}

// ParseEnumerated is the default [ParseFunc]. It treats body as a list of
// lines, each either a bare name or "name|LETTERS" where LETTERS is a
// concatenation of single-character function encodings (G=Gene, R=Rna,
// P=Protein, A=Abundance, B=BiologicalProcess, O=Pathology, M=MicroRna,
// Pop=Population collapsed to a single 'N' letter). Blank lines and lines
// starting with '#' are skipped.
func ParseEnumerated(body []byte) (Validator, error) {
	letterToFunction := map[byte]entity.Function{
		'A': entity.Abundance,
		'G': entity.Gene,
		'R': entity.Rna,
		'M': entity.MicroRna,
		'P': entity.Protein,
		'B': entity.BiologicalProcess,
		'O': entity.Pathology,
		'N': entity.Population,
	}

	var names []string
	encoding := make(map[string][]entity.Function)

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, letters, hasLetters := strings.Cut(line, "|")
		names = append(names, name)
		if !hasLetters {
			continue
		}
		var fns []entity.Function
		for i := 0; i < len(letters); i++ {
			if fn, ok := letterToFunction[letters[i]]; ok {
				fns = append(fns, fn)
			}
		}
		if len(fns) > 0 {
			encoding[name] = fns
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("resource: scan body: %w", err)
	}
	return NewEnumerated(names, encoding), nil
}
