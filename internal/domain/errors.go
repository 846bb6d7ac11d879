package domain

import "errors"

// ErrInvalidInput marks failures caused by the caller: malformed uploads,
// values outside the fixed enumerations, bad filter parameters or ids.
var ErrInvalidInput = errors.New("invalid input")

var ErrNotFound = errors.New("not found")
