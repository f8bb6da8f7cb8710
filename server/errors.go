package server

import "github.com/pkg/errors"

// ErrInvalidParam is returned when a query parameter cannot be parsed
var ErrInvalidParam = errors.New("invalid parameter")

// ErrMissingParam is returned when a required query parameter is absent
var ErrMissingParam = errors.New("missing parameter")

// ErrTooLarge is returned when a request exceeds the configured maximum
var ErrTooLarge = errors.New("request too large")
