package dataset

import "errors"

// Sentinel kinds for dataset loading errors.
var (
	ErrNotFound = errors.New("dataset file not found")
	ErrFormat   = errors.New("malformed dataset")
)
