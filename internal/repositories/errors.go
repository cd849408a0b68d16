package repositories

import "errors"

// ErrNotFound is returned by Update and Delete when no document matched the
// given identifier. Reads report absence as a nil model instead, since a
// missing record is an ordinary outcome of a lookup.
var ErrNotFound = errors.New("record not found")
