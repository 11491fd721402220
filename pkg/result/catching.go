package result

// RunCatching calls fn and wraps its return value in a Success. If fn
// panics, the panic is recovered and returned as a Failure.
func RunCatching[T any](fn func() T) Result[T] {
	var v T
	if err := capture(func() { v = fn() }); err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Try calls fn and converts its (value, error) return into a Result. A
// panic in fn is captured like in RunCatching.
func Try[T any](fn func() (T, error)) Result[T] {
	var (
		v    T
		fErr error
	)
	if err := capture(func() { v, fErr = fn() }); err != nil {
		return Failure[T](err)
	}
	return Of(v, fErr)
}

// RunCatchingWith calls fn with receiver as its argument, with the same
// capture rules as RunCatching.
func RunCatchingWith[R any, T any](receiver R, fn func(receiver R) T) Result[T] {
	return RunCatching(func() T {
		return fn(receiver)
	})
}

// TryWith calls fn with receiver as its argument, with the same capture
// rules as Try. It adapts functions such as strconv.Atoi or uuid.Parse.
func TryWith[R any, T any](receiver R, fn func(receiver R) (T, error)) Result[T] {
	return Try(func() (T, error) {
		return fn(receiver)
	})
}

// capture runs fn and returns the recovered panic, if any, as an error.
func capture(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicToError(p)
		}
	}()

	fn()
	return nil
}
