package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ib-77/result/pkg/result"
)

// Permanent marks err so that Do stops retrying and returns it as the
// Failure.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do calls fn until it succeeds, fails permanently, the back-off policy
// gives up or ctx ends, and returns the last outcome. A panic in fn and a
// cancellation error are permanent.
func Do[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) result.Result[T] {
	o := newOptions(opts...)

	attempt := 0
	operation := func() (T, error) {
		attempt++

		// outer Failure: fn panicked; inner Failure: fn returned an error
		outcome := result.RunCatching(func() result.Result[T] {
			return result.Of[T](fn(ctx))
		})

		if outcome.IsFailure() {
			var zero T
			return zero, backoff.Permanent(outcome.ExceptionOrNil())
		}

		current := outcome.GetOrThrow()
		v, err := current.Get()
		var permanent *backoff.PermanentError
		if current.IsCancellation() && !errors.As(err, &permanent) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	notify := func(err error, next time.Duration) {
		if o.logger != nil {
			o.logger.Debug("retrying failed attempt",
				"attempt", attempt, "error", err, "next", next)
		}
	}

	return result.Of[T](backoff.RetryNotifyWithData[T](operation, o.policy(ctx), notify))
}
