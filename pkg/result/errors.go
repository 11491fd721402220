package result

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilFailure is raised by GetOrThrow and ThrowOnFailure for a Failure
// that holds a nil error, such as the zero Result.
var ErrNilFailure = errors.New("result: failure with nil error")

// PanicError is stored in a Failure when a catching helper recovers a panic
// whose value is not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

func panicToError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &PanicError{Value: p}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
