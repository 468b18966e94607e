package domain

import "errors"

// ErrNotFound is returned by backends when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrBackendStatus is returned by backends on a non-success HTTP status.
var ErrBackendStatus = errors.New("backend returned non-success status")
