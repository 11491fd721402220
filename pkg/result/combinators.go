package result

// Map transforms a successful value. A Failure passes through with its
// original error and transform is not called. A panic in transform
// propagates to the caller.
func Map[T any, R any](r Result[T], transform func(v T) R) Result[R] {
	if r.ok {
		return Success(transform(r.value))
	}
	return Failure[R](r.err)
}

// MapCatching is like Map but a panic in transform becomes a Failure.
func MapCatching[T any, R any](r Result[T], transform func(v T) R) Result[R] {
	if r.ok {
		v := r.value
		return RunCatching(func() R {
			return transform(v)
		})
	}
	return Failure[R](r.err)
}

// TryMap is MapCatching for transforms with a (R, error) signature. The
// returned error, or a recovered panic, becomes the Failure.
func TryMap[T any, R any](r Result[T], transform func(v T) (R, error)) Result[R] {
	if r.ok {
		v := r.value
		return Try(func() (R, error) {
			return transform(v)
		})
	}
	return Failure[R](r.err)
}

// Fold calls exactly one of the handlers and returns what it returns.
func Fold[T any, R any](r Result[T],
	onSuccess func(v T) R,
	onFailure func(err error) R) R {

	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
