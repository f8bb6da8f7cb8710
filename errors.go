package lehmer

import "github.com/pkg/errors"

// ErrAllocation is returned when the lane array cannot be allocated
var ErrAllocation = errors.New("lehmer: lane allocation failed")

// ErrUnknownKind is returned when a transition name is not known
var ErrUnknownKind = errors.New("lehmer: unknown transition kind")
