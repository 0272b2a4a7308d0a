package resource

import "errors"

// Sentinel errors returned by [Validator.Validate] and [Resolver.Resolve].
// Resource fetch/parse failures are fatal per spec.md §7; name and function
// rejections are surfaced by callers as recoverable diagnostics.
var (
	// ErrResourceUnavailable means a DEFINE ... AS URL resource could not be
	// fetched or parsed.
	ErrResourceUnavailable = errors.New("resource: unavailable")

	// ErrNameNotFound means a name is not a member of a resolved namespace
	// or annotation list.
	ErrNameNotFound = errors.New("resource: name not found")

	// ErrFunctionNotAllowed means a name was found but is not encoded for
	// the BEL function it was used under.
	ErrFunctionNotAllowed = errors.New("resource: function not allowed for name")
)
