// Package result provides Result[T], a value that is either a Success holding
// a T or a Failure holding an error, together with combinators to compose
// fallible steps without branching on err != nil at every call site.
//
// Highlights:
// - Success/Failure/Of: construct Result[T]
// - IsSuccess/IsFailure/IsCancellation: inspect the variant
// - GetOrNil/GetOrDefault/GetOrElse/GetOrThrow/Get: extract the value
// - OnSuccess/OnFailure: side-effect hooks that return the receiver
// - Map/MapCatching/TryMap: transform successful values
// - Recover/RecoverCatching/TryRecover: turn failures back into values
// - Fold: reduce to a concrete value via success/failure handlers
// - RunCatching/RunCatchingWith/Try/TryWith: call a function and capture
//   its panic or returned error as a Failure
//
// Non-catching combinators let a panic raised by the supplied function
// propagate to the caller. Catching ones recover it: a panic value that is an
// error is stored as-is, anything else is wrapped in *PanicError.
// runtime.Goexit is never intercepted.
package result
