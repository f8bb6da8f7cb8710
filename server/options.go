package server

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/tutils/lehmer"
)

type ServerOptions struct {
	addr      string
	size      int
	seed      int64
	kind      lehmer.Kind
	maxLength int
	period    time.Duration
	log       zerolog.Logger
}

type ServerOption func(opts *ServerOptions)

// default server options
var (
	DefaultListenAddress = "127.0.0.1:8080"
	DefaultMaxLength     = 1 << 16
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{
		seed:   lehmer.DefaultSeed,
		kind:   lehmer.Direct,
		period: time.Second,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.size <= 0 {
		opt.size = lehmer.DefaultSize
	}
	if opt.maxLength <= 0 {
		opt.maxLength = DefaultMaxLength
	}
	return opt
}

func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithState sets the size and seed of the shared state behind /api/next.
func WithState(size int, seed int64) ServerOption {
	return func(opts *ServerOptions) {
		opts.size = size
		opts.seed = seed
	}
}

// WithKind sets the transition used when a request names none.
func WithKind(k lehmer.Kind) ServerOption {
	return func(opts *ServerOptions) {
		opts.kind = k
	}
}

// WithMaxLength caps sequence lengths and trial counts per request.
func WithMaxLength(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.maxLength = n
	}
}

// WithRatePeriod sets how often stream throughput is recomputed.
func WithRatePeriod(d time.Duration) ServerOption {
	return func(opts *ServerOptions) {
		opts.period = d
	}
}

func WithLogger(l zerolog.Logger) ServerOption {
	return func(opts *ServerOptions) {
		opts.log = l
	}
}
