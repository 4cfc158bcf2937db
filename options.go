package bidimap

import "github.com/go-logr/logr"

// Option configures a Map at construction.
type Option func(*options)

type options struct {
	logger   logr.Logger
	capacity int
}

// WithLogger routes the map's diagnostics to l. Evictions and Clear are
// logged at V(1); failed Verify calls are logged as errors.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInitialCapacity pre-sizes the node arena for n mappings.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func makeOptions(opts []Option) options {
	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
