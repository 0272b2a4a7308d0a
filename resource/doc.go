// Package resource implements the Resource Resolver component: fetching and
// parsing the documents a DEFINE NAMESPACE or DEFINE ANNOTATION AS URL
// declaration points at, and validating names against the result.
//
// Three Validator shapes cover the forms spec.md §4.3 describes:
// [EnumeratedValidator] for name lists, both fetched (AS URL) and inline
// (AS LIST), [RegexValidator] for inline AS PATTERN declarations, and
// [HierarchicalValidator] for names with a parent relation. [Resolver] owns
// the fetch-and-cache path for fetched lists; the directive package builds
// inline AS LIST and AS PATTERN validators directly from the directive text
// without a Fetcher. No directive builds a HierarchicalValidator.
//
// Resolver is the only blocking-IO suspension point in a compilation
// (spec.md §5); its cache may be reused across statements in one document,
// or shared across compilations behind a caller-supplied lock.
package resource
