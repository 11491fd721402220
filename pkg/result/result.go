package result

// Result holds either a successful value or the error that prevented it.
// The zero Result is a Failure with a nil error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value: v,
		ok:    true,
	}
}

// Failure wraps err as-is. A nil err still yields a Failure.
func Failure[T any](err error) Result[T] {
	return Result[T]{
		err: err,
		ok:  false,
	}
}

// Of converts a (value, error) pair into a Result.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// IsCancellation reports whether r is a Failure caused by context
// cancellation or an expired deadline.
func (r Result[T]) IsCancellation() bool {
	return !r.ok && IsCancellationError(r.err)
}

// GetOrNil returns a pointer to a copy of the value, or nil on Failure.
func (r Result[T]) GetOrNil() *T {
	if !r.ok {
		return nil
	}
	v := r.value
	return &v
}

// GetOrNone is an alias for GetOrNil.
func (r Result[T]) GetOrNone() *T {
	return r.GetOrNil()
}

func (r Result[T]) GetOrDefault(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// GetOrElse returns the value, or the result of onFailure applied to the
// stored error.
func (r Result[T]) GetOrElse(onFailure func(err error) T) T {
	if !r.ok {
		return onFailure(r.err)
	}
	return r.value
}

// GetOrThrow returns the value. On Failure it panics with the stored error,
// or with ErrNilFailure when the stored error is nil.
func (r Result[T]) GetOrThrow() T {
	r.ThrowOnFailure()
	return r.value
}

// GetOrRaise is an alias for GetOrThrow.
func (r Result[T]) GetOrRaise() T {
	return r.GetOrThrow()
}

// ThrowOnFailure panics with the stored error on Failure and does nothing on
// Success. A Failure holding a nil error panics with ErrNilFailure, since
// panic(nil) would surface as *runtime.PanicNilError instead.
func (r Result[T]) ThrowOnFailure() {
	if r.ok {
		return
	}
	if r.err == nil {
		panic(ErrNilFailure)
	}
	panic(r.err)
}

// RaiseOnFailure is an alias for ThrowOnFailure.
func (r Result[T]) RaiseOnFailure() {
	r.ThrowOnFailure()
}

func (r Result[T]) ExceptionOrNil() error {
	if r.ok {
		return nil
	}
	return r.err
}

// ExceptionOrNone is an alias for ExceptionOrNil.
func (r Result[T]) ExceptionOrNone() error {
	return r.ExceptionOrNil()
}

// Get returns the value and error in the usual Go form. The value is T's
// zero value on Failure.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// OnSuccess calls action with the value if r is a Success and returns r.
func (r Result[T]) OnSuccess(action func(v T)) Result[T] {
	if r.ok {
		action(r.value)
	}
	return r
}

// OnFailure calls action with the error if r is a Failure and returns r.
func (r Result[T]) OnFailure(action func(err error)) Result[T] {
	if !r.ok {
		action(r.err)
	}
	return r
}

// Recover maps a Failure to a Success using onFailure. A Success is
// returned unchanged. A panic in onFailure propagates.
func (r Result[T]) Recover(onFailure func(err error) T) Result[T] {
	if r.ok {
		return r
	}
	return Success(onFailure(r.err))
}

// RecoverCatching is like Recover but a panic in onFailure becomes a new
// Failure.
func (r Result[T]) RecoverCatching(onFailure func(err error) T) Result[T] {
	if r.ok {
		return r
	}
	err := r.err
	return RunCatching(func() T {
		return onFailure(err)
	})
}

// TryRecover is like RecoverCatching for handlers that can themselves fail.
func (r Result[T]) TryRecover(onFailure func(err error) (T, error)) Result[T] {
	if r.ok {
		return r
	}
	err := r.err
	return Try(func() (T, error) {
		return onFailure(err)
	})
}
