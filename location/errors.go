package location

import "errors"

// ErrEmptySourceID reports an empty synthetic source ID. No function in this
// package returns it: NewSourceID("") yields the zero SourceID instead.
var ErrEmptySourceID = errors.New("location: synthetic source ID cannot be empty")
