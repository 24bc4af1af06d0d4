package services

import "errors"

// ErrNotFound is returned when an update or a single-row read targets an id
// with no matching row.
var ErrNotFound = errors.New("record not found")
