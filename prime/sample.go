package prime

import (
	"github.com/pkg/errors"
)

// Sample lists every prime <= limit by trial division.
func Sample(limit uint32) ([]uint32, error) {
	if limit < 2 {
		return nil, errors.Wrapf(ErrSampleSize, "limit %d", limit)
	}
	primes := []uint32{2}
	for i := uint64(3); i <= uint64(limit); i += 2 {
		isPrime := true
		for div := uint64(3); div*div <= i; div += 2 {
			if i%div == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, uint32(i))
		}
	}
	return primes, nil
}
