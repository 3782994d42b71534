package repository

import "errors"

// ErrNotFound is the sentinel wrapped by all lookup misses, so callers can
// test with errors.Is regardless of which repository produced the error.
var ErrNotFound = errors.New("not found")
