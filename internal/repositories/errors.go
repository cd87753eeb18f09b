package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist. Callers
// detect it with errors.Is to map missing records to a 404 response.
var ErrNotFound = errors.New("not found")
