// Package retry repeats a fallible call on the caller's goroutine and
// returns its final outcome as a result.Result.
//
// - Do: retry fn with a back-off policy until success or a permanent failure
// - Permanent: mark an error as not worth retrying
// - WithBackOff/WithMaxRetries/WithLogger: configure Do
package retry
