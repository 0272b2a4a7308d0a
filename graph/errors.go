package graph

import (
	"errors"
	"fmt"
)

// Error sentinels for internal graph failures.
// These indicate programmer errors, not data issues. Data issues (missing
// citation, invalid pubmed identifier, duplicate node content) are reported
// via diag.Result / diag.Issue, never as a Go error.
var (
	// ErrInternal is the base error for internal graph failures.
	ErrInternal = errors.New("internal graph failure")

	// ErrNilGraph indicates a method was called on a nil *Graph receiver.
	ErrNilGraph = fmt.Errorf("%w: nil *Graph receiver", ErrInternal)

	// ErrNilEntity indicates a nil entity.Entity was passed to AddNode or an
	// edge constructor.
	ErrNilEntity = fmt.Errorf("%w: nil entity.Entity", ErrInternal)
)
