package report

import "errors"

// ErrNoMatch reports a filter that selected no records. Callers print a
// friendly message and exit cleanly; it is not a failure.
var ErrNoMatch = errors.New("no movies match")
