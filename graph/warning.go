package graph

import "github.com/belgraph/bel/diag"

// Warning records one statement that failed to parse or validate during
// compilation (spec.md §4.4.4): the statement is not inserted, but parsing
// continues and the failure is preserved in document order.
//
// Warnings are accessed via [Graph.Warnings].
type Warning struct {
	// Line is the originating line number (1-based, first physical line of
	// the logical line).
	Line int

	// Original is the logical line text that failed.
	Original string

	// Code is the diagnostic code identifying the failure kind.
	Code diag.Code

	// Message is the human-readable failure description.
	Message string
}

// newWarning builds a Warning from a failed diag.Issue.
func newWarning(line int, original string, issue diag.Issue) Warning {
	return Warning{
		Line:     line,
		Original: original,
		Code:     issue.Code(),
		Message:  issue.Message(),
	}
}
