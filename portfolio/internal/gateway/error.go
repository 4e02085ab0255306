package gateway

import "errors"

// ErrNotFound is returned when the requested data is not found.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when the remote service rejects a request.
var ErrInvalidInput = errors.New("invalid input")
