package counter

// Counter is a cumulative count of generator draws
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(draws int64)
}
