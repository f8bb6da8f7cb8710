package lehmer

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures a State.
type Options struct {
	seeder Kind
	log    zerolog.Logger
	clock  func() int64
}

// Option mutates Options.
type Option func(opts *Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{
		seeder: Direct,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(opt)
	}
	if opt.clock == nil {
		opt.clock = func() int64 { return time.Now().UnixNano() }
	}
	return opt
}

// WithSeeder sets the transition that derives lane i from lane i-1.
func WithSeeder(k Kind) Option {
	return func(opts *Options) {
		opts.seeder = k
	}
}

// WithLogger sets the sink for debug reports.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *Options) {
		opts.log = l
	}
}

// WithClock sets the wall clock read by GenerateFromTime.
func WithClock(f func() int64) Option {
	return func(opts *Options) {
		opts.clock = f
	}
}
