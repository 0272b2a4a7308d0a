package bel

import (
	"log/slog"

	"github.com/belgraph/bel/resource"
)

// config holds the fully-resolved compilation configuration built from the
// defaults and any [Option]s passed to [Compile] or [Parse].
type config struct {
	allowNested                       bool
	allowNakedNames                   bool
	citationClearing                  bool
	disallowUnqualifiedTranslocations bool
	requiredAnnotations               []string
	logger                            *slog.Logger
	fetcher                           resource.Fetcher
	issueLimit                        int
}

// defaultConfig mirrors directive.NewContext's stated defaults: citation
// clearing and disallow-unqualified-translocations on, everything else off.
func defaultConfig() config {
	return config{
		citationClearing:                  true,
		disallowUnqualifiedTranslocations: true,
	}
}

// Option configures a call to [Compile] or [Parse].
type Option func(*config)

// WithAllowNested toggles whether one level of parenthesized nested
// statements is permitted in term/relation grammar.
func WithAllowNested(allow bool) Option {
	return func(c *config) { c.allowNested = allow }
}

// WithAllowNakedNames toggles whether a namespace-qualified term may omit
// its quoting around a bare identifier value.
func WithAllowNakedNames(allow bool) Option {
	return func(c *config) { c.allowNakedNames = allow }
}

// WithCitationClearing toggles whether a new SET Citation clears the
// evidence and free annotations accumulated under the previous citation.
func WithCitationClearing(enabled bool) Option {
	return func(c *config) { c.citationClearing = enabled }
}

// WithDisallowUnqualifiedTranslocations toggles whether a tloc()/sec()/
// surf() modifier is rejected on a statement with no citation and evidence.
func WithDisallowUnqualifiedTranslocations(disallow bool) Option {
	return func(c *config) { c.disallowUnqualifiedTranslocations = disallow }
}

// WithRequiredAnnotations sets the annotation keywords that must be in
// scope (via SET) on every qualified edge. A nil or empty slice disables
// the requirement.
func WithRequiredAnnotations(keys []string) Option {
	required := make([]string, len(keys))
	copy(required, keys)
	return func(c *config) { c.requiredAnnotations = required }
}

// WithLogger attaches a structured logger to the compilation. It logs the
// start and end of the compilation as a whole, a warning when ctx
// cancellation stops it early, and Debug-level graph node and edge
// insertion; lexing, directive dispatch, and parsing are not logged. Pass
// nil (the default) to disable tracing entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithFetcher supplies the [resource.Fetcher] used to resolve DEFINE
// NAMESPACE/ANNOTATION ... AS URL directives. Without this option, a
// DEFINE ... AS URL directive fails with E_RESOURCE_UNAVAILABLE: Compile
// does not reach out to the network on its own.
func WithFetcher(fetcher resource.Fetcher) Option {
	return func(c *config) { c.fetcher = fetcher }
}

// WithIssueLimit bounds the number of diagnostics collected during a single
// compilation; issues beyond the limit are dropped and counted (see
// [diag.Result.DroppedCount]). Zero, the default, means unlimited.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}
