package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/exp/slog"
)

type options struct {
	backOff    backoff.BackOff
	maxRetries int
	logger     *slog.Logger
}

type Option func(*options)

// WithBackOff sets the delay policy between attempts. The default is
// backoff.NewExponentialBackOff().
func WithBackOff(b backoff.BackOff) Option {
	return func(o *options) {
		o.backOff = b
	}
}

// WithMaxRetries limits the number of retries after the first attempt.
// Zero or less means no limit other than the back-off policy itself.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		o.maxRetries = n
	}
}

// WithLogger logs each retry at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.backOff == nil {
		o.backOff = backoff.NewExponentialBackOff()
	}
	return o
}

func (o *options) policy(ctx context.Context) backoff.BackOff {
	b := o.backOff
	if o.maxRetries > 0 {
		b = backoff.WithMaxRetries(b, uint64(o.maxRetries))
	}
	return backoff.WithContext(b, ctx)
}
