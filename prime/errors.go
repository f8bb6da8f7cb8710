package prime

import "github.com/pkg/errors"

// ErrSampleSize is returned when a sample limit is below 2
var ErrSampleSize = errors.New("prime: sample limit must be at least 2")
