package result

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func divide(a, b int) int {
	return a / b
}

func TestMap(t *testing.T) {
	t.Parallel()
	s := Success(10)
	f := Failure[int](valueError{msg: "test error"})

	mapped := Map(s, func(v int) int { return v * 2 })
	assert.True(t, mapped.IsSuccess())
	assert.Equal(t, 20, *mapped.GetOrNil())
	assert.Equal(t, 20, Map(s, func(v int) int { return v * 2 }).GetOrDefault(0))

	called := false
	mappedFailure := Map(f, func(v int) string {
		called = true
		return strconv.Itoa(v)
	})
	assert.False(t, called, "transform must not run for a failure")
	assert.True(t, mappedFailure.IsFailure())
	assert.Equal(t, f.ExceptionOrNil(), mappedFailure.ExceptionOrNil())

	assert.Panics(t, func() {
		Map(s, func(v int) int { return divide(1, 0) })
	})
}

func TestMapCatching(t *testing.T) {
	t.Parallel()
	s := Success(10)
	f := Failure[int](valueError{msg: "test error"})

	mapped := MapCatching(s, func(v int) int { return v * 2 })
	assert.True(t, mapped.Equal(Success(20)))

	caught := MapCatching(s, func(v int) int { return divide(1, 0) })
	require.True(t, caught.IsFailure())
	var rtErr runtime.Error
	require.ErrorAs(t, caught.ExceptionOrNil(), &rtErr)
	assert.EqualError(t, rtErr, "runtime error: integer divide by zero")

	transformErr := typeError{msg: "bad transform"}
	caught = MapCatching(s, func(v int) int { panic(transformErr) })
	assert.Equal(t, transformErr, caught.ExceptionOrNil())

	called := false
	passthrough := MapCatching(f, func(v int) int {
		called = true
		return v
	})
	assert.False(t, called)
	assert.True(t, passthrough.IsFailure())
	assert.Equal(t, f.ExceptionOrNil(), passthrough.ExceptionOrNil())
}

func TestTryMap(t *testing.T) {
	t.Parallel()

	parsed := TryMap(Success("42"), strconv.Atoi)
	assert.True(t, parsed.Equal(Success(42)))

	bad := TryMap(Success("abc"), strconv.Atoi)
	require.True(t, bad.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.ExceptionOrNil(), &numErr)

	panicked := TryMap(Success(1), func(int) (int, error) { panic("boom") })
	var pe *PanicError
	require.ErrorAs(t, panicked.ExceptionOrNil(), &pe)
	assert.Equal(t, "boom", pe.Value)

	original := errors.New("original")
	passthrough := TryMap(Failure[string](original), strconv.Atoi)
	assert.ErrorIs(t, passthrough.ExceptionOrNil(), original)
}

func TestFold(t *testing.T) {
	t.Parallel()
	s := Success(10)
	f := Failure[int](valueError{msg: "test error"})

	onSuccess := func(v int) string { return fmt.Sprintf("Success: %d", v) }
	onFailure := func(err error) string { return fmt.Sprintf("Failure: %v", err) }

	assert.Equal(t, "Success: 10", Fold(s, onSuccess, onFailure))
	assert.Equal(t, "Failure: test error", Fold(f, onSuccess, onFailure))

	assert.Panics(t, func() {
		Fold(s, func(v int) int { return divide(v, 0) }, func(error) int { return 0 })
	})
	assert.PanicsWithError(t, "fold error", func() {
		Fold(f, func(int) int { return 0 }, func(error) int { panic(errors.New("fold error")) })
	})
}

func TestFold_Exclusivity(t *testing.T) {
	t.Parallel()

	for _, r := range []Result[int]{Success(1), Failure[int](valueError{msg: "x"})} {
		calls := 0
		Fold(r,
			func(int) struct{} { calls++; return struct{}{} },
			func(error) struct{} { calls++; return struct{}{} })
		assert.Equal(t, 1, calls, "exactly one branch must run for %v", r)
	}
}
